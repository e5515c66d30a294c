package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, defaultConfigFile)
	err := os.WriteFile(path, []byte(heredoc.Doc(`
		schema:
		  - schema/*.graphql
		output: dist
		apiId: abc123
		region: ap-northeast-1
		verbosity: 2
	`)), 0644)
	require.NoError(t, err)

	cfg, err := loadProjectConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"schema/*.graphql"}, cfg.Schema)
	assert.Equal(t, "dist", cfg.Output)
	assert.Equal(t, "abc123", cfg.APIID)
	assert.Equal(t, "ap-northeast-1", cfg.Region)
	assert.Equal(t, 2, cfg.Verbosity)
}

func TestLoadProjectConfig_Defaults(t *testing.T) {
	cfg, err := loadProjectConfig(filepath.Join(t.TempDir(), defaultConfigFile), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"schema.graphql"}, cfg.Schema)
	assert.Equal(t, "build", cfg.Output)
	assert.Empty(t, cfg.APIID)
}

func TestLoadProjectConfig_Missing(t *testing.T) {
	_, err := loadProjectConfig(filepath.Join(t.TempDir(), "nope.yaml"), false)
	assert.Error(t, err)
}

func TestLoadProjectConfig_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), defaultConfigFile)
	err := os.WriteFile(path, []byte("outputs: dist\n"), 0644)
	require.NoError(t, err)

	_, err = loadProjectConfig(path, false)
	assert.Error(t, err)
}
