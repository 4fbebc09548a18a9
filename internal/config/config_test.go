package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func validVars() map[string]string {
	return map[string]string{
		"GITHUB_TOKEN": "ghp_test",
		"REPO_OWNER":   "octo",
		"REPO_NAME":    "stocks",
	}
}

// unsetEnv clears keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse(validVars())
	require.NoError(t, err)

	assert.Equal(t, "ghp_test", cfg.Token)
	assert.Equal(t, "octo", cfg.Owner)
	assert.Equal(t, "stocks", cfg.Repo)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.IssuesFile)
	assert.Equal(t, "octo/stocks", cfg.Repository().FullName())
}

func TestParse_MissingRequired(t *testing.T) {
	for _, key := range []string{"GITHUB_TOKEN", "REPO_OWNER", "REPO_NAME"} {
		t.Run("unset "+key, func(t *testing.T) {
			vars := validVars()
			delete(vars, key)

			cfg, err := Parse(vars)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, key)
		})

		t.Run("empty "+key, func(t *testing.T) {
			vars := validVars()
			vars[key] = ""

			_, err := Parse(vars)
			require.Error(t, err)
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestParse_LogLevel(t *testing.T) {
	tests := []struct {
		value   string
		want    zapcore.Level
		wantErr bool
	}{
		{value: "debug", want: zapcore.DebugLevel},
		{value: "WARN", want: zapcore.WarnLevel},
		{value: "error", want: zapcore.ErrorLevel},
		{value: "", want: zapcore.InfoLevel},
		{value: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("LOG_LEVEL="+tt.value, func(t *testing.T) {
			vars := validVars()
			vars["LOG_LEVEL"] = tt.value

			cfg, err := Parse(vars)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, "unrecognized level")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.LogLevel)
		})
	}
}

func TestParse_APIURLTrailingSlash(t *testing.T) {
	vars := validVars()
	vars["GITHUB_API_URL"] = "https://ghe.example.com/api/v3"

	cfg, err := Parse(vars)
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/", cfg.APIURL)
}

func TestLoad_EnvFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "GITHUB_TOKEN=from_file\nREPO_OWNER=file-owner\nREPO_NAME=file-repo\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	unsetEnv(t, "GITHUB_TOKEN", "REPO_NAME", "GITHUB_API_URL")
	t.Setenv("REPO_OWNER", "env-owner")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from_file", cfg.Token)
	assert.Equal(t, "env-owner", cfg.Owner)
	assert.Equal(t, "file-repo", cfg.Repo)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_env")
	t.Setenv("REPO_OWNER", "octo")
	t.Setenv("REPO_NAME", "stocks")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	require.NoError(t, err)
	assert.Equal(t, "ghp_env", cfg.Token)
}
