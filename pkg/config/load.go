package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads the configuration from the environment. When envFile paths
// are given, the first one that loads wins; otherwise a .env in the
// working directory is tried and silently skipped when absent.
func Load(envFile ...string) (*App, error) {
	logger := slog.Default()

	if len(envFile) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found, using system environment")
		}
	} else {
		loaded := false
		for _, path := range envFile {
			if err := godotenv.Load(path); err != nil {
				logger.Debug("Environment file not loaded", "path", path, "error", err)
				continue
			}
			logger.Info("Environment loaded from file", "path", path)
			loaded = true
			break
		}
		if !loaded {
			logger.Warn("No usable environment file, using system environment")
		}
	}

	var cfg App
	if err := envconfig.Process("TELLER", &cfg); err != nil {
		return nil, err
	}

	logger.Info("App config loaded",
		"env", cfg.Env,
		"accounts_path", cfg.Ledger.AccountsPath,
		"transactions_path", cfg.Ledger.TransactionsPath,
		"faces_dir", cfg.Ledger.FacesDir,
		"smtp_host", cfg.SMTP.Host,
		"smtp_port", cfg.SMTP.Port,
		"smtp_username", maskValue(cfg.SMTP.Username),
	)
	return &cfg, nil
}

// maskValue hides most of a secret when config is logged.
func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
