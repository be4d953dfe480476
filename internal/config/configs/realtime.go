package configs

import "time"

// Realtime tunes the push channel.
type Realtime struct {
	// QueueSize bounds each subscriber's pending updates; the oldest is
	// dropped on overflow.
	QueueSize int `env:"QUEUE_SIZE" envDefault:"64"`
	// RelayInterval is how often open rooms are polled for new metrics.
	RelayInterval time.Duration `env:"RELAY_INTERVAL" envDefault:"15s"`
}

// Auth configures the consent flow.
type Auth struct {
	Timeout time.Duration `env:"TIMEOUT" envDefault:"5m"`
}
