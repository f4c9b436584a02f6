package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	Addr        string `env:"MG_ADDR" envDefault:":3001"`
	Environment string `env:"MG_ENV" envDefault:"development"`
	// JWTSecret enables the bearer-token middleware and server-side token
	// minting when set. Empty leaves every route open, matching the
	// historical deployment.
	JWTSecret string `env:"MG_JWT_SECRET"`
}

// Load reads .env when present and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}
