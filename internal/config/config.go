package config

import (
	"github.com/caarlos0/env/v11"

	"ideaproof/internal/config/configs"
	"ideaproof/internal/core/domain"
)

// Config aggregates all configuration sections for the orchestrator. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (prod, dev). It is attached to
	// every log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Psql configures the snapshot history database.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis switches sessions and update fan-out to a shared instance when
	// an address is set.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Ads holds the live ad-platform credentials. They are required even
	// when only demo mode is used, so a misconfigured deployment fails at
	// startup instead of on the first live request.
	Ads configs.Ads `envPrefix:"ADS_"`

	Realtime configs.Realtime `envPrefix:"REALTIME_"`
	Auth     configs.Auth     `envPrefix:"AUTH_"`
}

// Load reads configuration from environment variables into a Config. A
// missing required value or an unparsable one is reported as a
// ConfigurationError naming the variable.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, &domain.Error{Kind: domain.KindConfiguration, Op: "config.load", Message: "invalid environment", Err: err}
	}
	return cfg, nil
}
