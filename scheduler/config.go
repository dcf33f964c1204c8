package scheduler

import (
	"fmt"
	"time"
)

// Config represents scheduler configuration.
type Config struct {
	// Period is the expected interval between Run calls; a Run taking longer
	// is reported as a loop overrun. Zero disables the check.
	Period time.Duration `json:"period" yaml:"period" toml:"period" env:"PERIOD"`

	// WarnOnOverrun enables loop overrun log messages.
	WarnOnOverrun bool `json:"warnOnOverrun" yaml:"warnOnOverrun" toml:"warnOnOverrun" env:"WARN_ON_OVERRUN"`

	// StartDisabled creates the scheduler in the disabled state.
	StartDisabled bool `json:"startDisabled" yaml:"startDisabled" toml:"startDisabled" env:"START_DISABLED"`
}

// DefaultConfig returns the default scheduler configuration.
func DefaultConfig() Config {
	return Config{
		Period:        20 * time.Millisecond,
		WarnOnOverrun: true,
	}
}

// Validate reports invalid settings.
func (c *Config) Validate() error {
	if c.Period < 0 {
		return fmt.Errorf("scheduler.period must be >= 0, got %s", c.Period)
	}
	return nil
}
