package config

// StatsdConfig contains StatsD metrics emission configuration. Disabled by
// default; set STATSD_ENABLED=true and point STATSD_ADDR at a collector.
type StatsdConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Address string `env:"ADDR"    envDefault:"localhost:8125"`
	Prefix  string `env:"PREFIX"  envDefault:"inkwell"`
}
