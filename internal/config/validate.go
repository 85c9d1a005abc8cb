package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Validate checks that all values are usable after defaults are applied.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("server.port must be between 1 and 65535")
	}
	if c.Market.TickInterval <= 0 {
		return errors.New("market.tick_interval must be positive")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
