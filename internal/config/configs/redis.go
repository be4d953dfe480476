package configs

import "time"

// Redis configures the shared session store and update bus. An empty
// Address keeps both in process.
type Redis struct {
	Address    string        `env:"ADDRESS"`
	Password   string        `env:"PASSWORD"`
	DB         int           `env:"DB" envDefault:"0"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	Channel    string        `env:"CHANNEL" envDefault:"ideaproof:campaign-updates"`
}

// Enabled reports whether a redis address is configured.
func (r Redis) Enabled() bool { return r.Address != "" }
