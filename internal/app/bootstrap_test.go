package app

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/aws-config-snapshot/internal/adapters/platform/aws"
	"github.com/olusolaa/aws-config-snapshot/internal/config"
	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/core/ports"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
)

func offlineProvider(ctx context.Context, profile string, logger ports.Logger) (*aws.Provider, error) {
	return aws.NewProvider(ctx, profile, logger,
		aws.WithConfig(awssdk.Config{Region: domain.BootstrapRegion, Credentials: awssdk.AnonymousCredentials{}}))
}

func failingProvider(context.Context, string, ports.Logger) (*aws.Provider, error) {
	return nil, errors.NewUserFacing(errors.CodeSessionError, "profile not found", "")
}

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	config.SetDefaults(v)
	v.Set("output_folder", filepath.Join(t.TempDir(), "snap"))
	v.Set("settings.log_level", "error")
	return v
}

func TestBuildApplication_WiresEngine(t *testing.T) {
	v := newViper(t)
	v.Set(OverrideRegionsKey, "us-east-1, eu-west-1")
	v.Set(OverrideSkipKey, "Tags")

	app, err := buildApplication(context.Background(), v, &bytes.Buffer{}, offlineProvider)
	require.NoError(t, err)
	assert.NotNil(t, app.Engine)
	assert.NotNil(t, app.Access)
	assert.Equal(t, []string{"us-east-1", "eu-west-1"}, app.Config.Regions)
	assert.Equal(t, []string{"Tags"}, app.Config.SkipData)
}

func TestBuildApplication_InvalidConfig(t *testing.T) {
	v := newViper(t)
	v.Set(OverrideVPCsKey, "subnet-123")

	_, err := buildApplication(context.Background(), v, &bytes.Buffer{}, offlineProvider)
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
}

func TestBuildApplication_InvalidLogLevel(t *testing.T) {
	v := newViper(t)
	v.Set("settings.log_level", "loud")

	_, err := buildApplication(context.Background(), v, &bytes.Buffer{}, offlineProvider)
	require.Error(t, err)
}

func TestBuildApplication_SessionFailure(t *testing.T) {
	v := newViper(t)

	_, err := buildApplication(context.Background(), v, &bytes.Buffer{}, failingProvider)
	require.Error(t, err)
	assert.Equal(t, errors.CodeSessionError, errors.GetCode(err))
}

func TestBuildApplication_SessionFailureInTestAccessMode(t *testing.T) {
	v := newViper(t)
	v.Set("test_access", true)
	out := &bytes.Buffer{}

	app, err := buildApplication(context.Background(), v, out, failingProvider)
	require.NoError(t, err)
	assert.Nil(t, app.Engine)

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "profile not found")
}

func TestParseListOverride(t *testing.T) {
	list, ok := parseListOverride(" a, ,b ")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, list)

	_, ok = parseListOverride("")
	assert.False(t, ok)
	_, ok = parseListOverride(" , ")
	assert.False(t, ok)
}
