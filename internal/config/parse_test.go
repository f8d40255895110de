package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zestagio/download-service/internal/config"
)

var configExamplePath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	configExamplePath = filepath.Join(filepath.Dir(currentFile), "..", "..", "configs", "config.example.toml")
}

func TestParseAndValidate(t *testing.T) {
	cfg, err := config.ParseAndValidate(configExamplePath)
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Log.Level)
	assert.NotEmpty(t, cfg.Servers.Download.Addr)
	assert.NotEmpty(t, cfg.Servers.Debug.Addr)
	assert.NotEmpty(t, cfg.Archives.Title)

	require.Len(t, cfg.Archives.Files, 2)
	for _, f := range cfg.Archives.Files {
		assert.NotEmpty(t, f.Name)
		assert.NotEmpty(t, f.Title)
	}
}
