package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/aws-config-snapshot/internal/config"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	portsmocks "github.com/olusolaa/aws-config-snapshot/internal/core/ports/mocks"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

type fakeEngine struct {
	runs int
	err  error
}

func (f *fakeEngine) Run(context.Context) error {
	f.runs++
	return f.err
}

type fakeAccess struct {
	identity domain.Identity
	err      error
}

func (f fakeAccess) CheckAccess(context.Context) (domain.Identity, error) {
	return f.identity, f.err
}

func newTestApp(cfg *config.Config, engine *fakeEngine, access fakeAccess) (*Application, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &Application{
		Engine: engine,
		Access: access,
		Logger: portsmocks.NewLogger(),
		Config: cfg,
		Out:    out,
	}, out
}

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestRun_TestAccessGranted(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TestAccess = true
	engine := &fakeEngine{}
	app, out := newTestApp(cfg, engine, fakeAccess{identity: domain.Identity{Account: "123456789012", ARN: "arn:aws:iam::123456789012:user/ops", RegionCount: 17}})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), accessGranted)
	assert.Contains(t, out.String(), "123456789012")
	assert.Zero(t, engine.runs)
}

func TestRun_TestAccessDeniedStillSucceeds(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TestAccess = true
	app, out := newTestApp(cfg, &fakeEngine{}, fakeAccess{err: errors.New(errors.CodePlatformAuthError, "ExpiredToken")})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "You may not have access. Exception while accessing AWS:")
	assert.Contains(t, out.String(), "ExpiredToken")
}

func TestRun_ExistingOutputWithoutForce(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputFolder = t.TempDir()
	engine := &fakeEngine{}
	app, _ := newTestApp(cfg, engine, fakeAccess{})

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeOutputExists, errors.GetCode(err))
	assert.Zero(t, engine.runs)
}

func TestRun_ForceClearsOutputAndRunsEngine(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.json")
	require.NoError(t, os.WriteFile(stale, []byte("{}"), 0o644))

	cfg := config.DefaultConfig()
	cfg.OutputFolder = dir
	cfg.Force = true
	engine := &fakeEngine{}
	app, _ := newTestApp(cfg, engine, fakeAccess{})

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, engine.runs)
	assert.NoFileExists(t, stale)
}

func TestRun_EngineErrorIsReturned(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.OutputFolder = filepath.Join(t.TempDir(), "snap")
	engine := &fakeEngine{err: errors.New(errors.CodeRegistryBuildError, "boom")}
	app, _ := newTestApp(cfg, engine, fakeAccess{})

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeRegistryBuildError, errors.GetCode(err))
}
