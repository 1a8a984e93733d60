package filesystem

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/aws-config-snapshot/internal/core/domain"
	"github.com/olusolaa/aws-config-snapshot/internal/errors"
	"github.com/olusolaa/aws-config-snapshot/internal/log"
)

func TestPersist_WritesSortedIndentedJSON(t *testing.T) {
	root := t.TempDir()
	p := NewPersister(root, log.NewNop())
	doc := domain.Document{
		"Vpcs": []any{map[string]any{"VpcId": "vpc-1", "CidrBlock": "10.0.0.0/16"}},
		"A":    true,
	}

	require.NoError(t, p.Persist(context.Background(), "us-east-1", domain.CategoryVpcs, doc))

	data, err := os.ReadFile(filepath.Join(root, "aws_configs", "us-east-1", "Vpcs.json"))
	require.NoError(t, err)
	want := "{\n \"A\": true,\n \"Vpcs\": [\n  {\n   \"CidrBlock\": \"10.0.0.0/16\",\n   \"VpcId\": \"vpc-1\"\n  }\n ]\n}"
	assert.Equal(t, want, string(data))
}

func TestPersist_OverwritesSameFile(t *testing.T) {
	root := t.TempDir()
	p := NewPersister(root, log.NewNop())
	ctx := context.Background()

	require.NoError(t, p.Persist(ctx, "eu-west-1", domain.CategoryTags, domain.Document{"Tags": []any{"old"}}))
	require.NoError(t, p.Persist(ctx, "eu-west-1", domain.CategoryTags, domain.Document{"Tags": []any{}}))

	data, err := os.ReadFile(filepath.Join(p.RegionDir("eu-west-1"), "Tags.json"))
	require.NoError(t, err)
	assert.Equal(t, "{\n \"Tags\": []\n}", string(data))
}

func TestEncode_FallsBackToStrings(t *testing.T) {
	data, err := Encode(domain.Document{"Ratio": math.NaN(), "Name": "x"})

	require.NoError(t, err)
	assert.Equal(t, "{\n \"Name\": \"x\",\n \"Ratio\": \"NaN\"\n}", string(data))
}

func TestPersist_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPersister(t.TempDir(), log.NewNop())

	assert.ErrorIs(t, p.Persist(ctx, "us-east-1", domain.CategoryVpcs, domain.Document{}), context.Canceled)
}

func TestPrepareOutputDir(t *testing.T) {
	t.Run("missing folder is fine", func(t *testing.T) {
		assert.NoError(t, PrepareOutputDir(filepath.Join(t.TempDir(), "new"), false))
	})

	t.Run("existing folder without force", func(t *testing.T) {
		dir := t.TempDir()
		err := PrepareOutputDir(dir, false)

		assert.Equal(t, errors.CodeOutputExists, errors.GetCode(err))
		msg, suggestion, ok := errors.GetUserFacingMessage(err)
		assert.True(t, ok)
		assert.Contains(t, msg, dir)
		assert.Contains(t, suggestion, "'-f'")
		assert.DirExists(t, dir)
	})

	t.Run("existing folder with force", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "aws_configs"), 0o755))

		require.NoError(t, PrepareOutputDir(dir, true))
		assert.NoDirExists(t, dir)
	})
}
