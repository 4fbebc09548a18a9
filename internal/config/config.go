// Package config loads issueseed settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/clintrovert/issueseed/pkg/types"
)

const (
	// DefaultEnvFile is read before the process environment when present.
	DefaultEnvFile = ".env"
	// DefaultAPIURL is the public GitHub REST endpoint.
	DefaultAPIURL = "https://api.github.com/"
)

// Config holds the settings resolved once at startup
type Config struct {
	Token      string        `env:"GITHUB_TOKEN,required,notEmpty"`
	Owner      string        `env:"REPO_OWNER,required,notEmpty"`
	Repo       string        `env:"REPO_NAME,required,notEmpty"`
	APIURL     string        `env:"GITHUB_API_URL" envDefault:"https://api.github.com/"`
	IssuesFile string        `env:"ISSUES_FILE"`
	LogLevel   zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// Repository returns the target repository identity
func (c *Config) Repository() types.RepositoryInfo {
	return types.RepositoryInfo{Owner: c.Owner, Name: c.Repo}
}

// Load reads envFile (if it exists) and the process environment.
// Process variables take precedence over values from the file.
func Load(envFile string) (*Config, error) {
	vars := make(map[string]string)
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[key] = value
	}

	return Parse(vars)
}

// Parse builds a Config from an explicit variable map
func Parse(vars map[string]string) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: vars})
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if !strings.HasSuffix(cfg.APIURL, "/") {
		cfg.APIURL += "/"
	}

	return &cfg, nil
}
