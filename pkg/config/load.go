package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvFile is read when Load is called without file names.
const DefaultEnvFile = ".env"

// Load builds the configuration from the process environment, after reading the
// first of files found in the working directory or one of its parents.
// Variables already present in the environment take precedence over the file.
// A missing file is not an error; an unreadable one is.
func Load(files ...string) (*App, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, name := range files {
		path, err := FindEnvFile(name)
		if err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("read env file %s: %w", path, err)
		}
		slog.Debug("Environment file loaded", "path", path)
		break
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	slog.Info("Configuration loaded",
		"env", cfg.Env,
		"db_driver", cfg.DB.Driver,
		"db", maskValue(cfg.DB.Url),
		"db_isolation", cfg.DB.Isolation,
		"rate_limit", fmt.Sprintf("%d/%s", cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
		"seed", cfg.Seed.Enabled,
	)
	return &cfg, nil
}

// maskValue keeps the first two and last four characters of a secret.
func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
