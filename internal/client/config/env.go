package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the environment. A .env file in the
// working directory is loaded first when present; a missing file is fine.
func parseEnv(cfg *Config) error {
	_ = godotenv.Load()
	return env.Parse(cfg)
}
