package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally loading a
// .env file first. Missing .env files are not an error; system
// environment variables always win.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()

	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Warn("No .env file found in current directory")
		}
	} else {
		for _, path := range envFilePath {
			if err := godotenv.Load(path); err != nil {
				logger.Debug("Environment file not found", "path", path, "error", err)
				continue
			}
			logger.Info("Environment loaded from file", "path", path)
			break
		}
	}

	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"base_url", cfg.BaseURL,
		"db", maskValue(cfg.DB.Url),
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
		"stripe_api_url", cfg.PaymentProviders.Stripe.ApiUrl,
		"stripe_api_key", maskValue(cfg.PaymentProviders.Stripe.ApiKey),
	)
	return &cfg, nil
}

func maskValue(key string) string {
	if len(key) <= 6 {
		return "****"
	}
	return key[:2] + "****" + key[len(key)-4:]
}
