package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBind         = "0.0.0.0"
	DefaultPort         = 50051
	DefaultTickInterval = 1 * time.Second
	DefaultLogLevel     = "info"
)

func (c *Config) applyDefaults() {
	if c.Server.Bind == "" {
		c.Server.Bind = DefaultBind
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Market.TickInterval == 0 {
		c.Market.TickInterval = Duration(DefaultTickInterval)
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
