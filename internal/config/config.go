package config

import (
	"github.com/caarlos0/env/v11"

	"crowdfund/internal/config/configs"
)

// Config aggregates all configuration sections for the escrow service.
// Fields are populated from environment variables using the caarlos0/env
// library; nested structs are parsed with their envPrefix. Use Load to
// construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Ledger configs.Ledger   `envPrefix:"LEDGER_"`
	Auth   configs.Auth     `envPrefix:"AUTH_"`
	AMQP   configs.AMQP     `envPrefix:"AMQP_"`
}

// Load reads configuration from environment variables into a Config and
// validates the ledger section.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Ledger.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
