package dragdrop

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables of a Manager.
type Config struct {
	// AutoscrollInterval is the cadence of the autoscroll tick.
	AutoscrollInterval time.Duration `env:"DRAGDROP_AUTOSCROLL_INTERVAL" envDefault:"16ms"`
	// AutoscrollIncrement is the distance scrolled per tick when the
	// destination does not declare its own increment.
	AutoscrollIncrement float32 `env:"DRAGDROP_AUTOSCROLL_INCREMENT" envDefault:"10"`

	// LiftScale and LiftAlpha are applied to the snapshot by the default lift animation.
	LiftScale float32 `env:"DRAGDROP_LIFT_SCALE" envDefault:"1.1"`
	LiftAlpha float32 `env:"DRAGDROP_LIFT_ALPHA" envDefault:"0.85"`

	// DropDuration is the length of the default drop animation,
	// rendered in frames of FrameInterval.
	DropDuration  time.Duration `env:"DRAGDROP_DROP_DURATION" envDefault:"250ms"`
	FrameInterval time.Duration `env:"DRAGDROP_FRAME_INTERVAL" envDefault:"16ms"`

	// AckTimeout bounds how long a custom animation may take before the
	// session is forced to complete.
	AckTimeout time.Duration `env:"DRAGDROP_ACK_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns the configuration used when none is provided.
func DefaultConfig() Config {
	return Config{
		AutoscrollInterval:  16 * time.Millisecond,
		AutoscrollIncrement: 10,
		LiftScale:           1.1,
		LiftAlpha:           0.85,
		DropDuration:        250 * time.Millisecond,
		FrameInterval:       16 * time.Millisecond,
		AckTimeout:          5 * time.Second,
	}
}

// withDefaults replaces the unusable fields of c by their default value.
// A zero DropDuration is kept: it disables the default drop animation.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.AutoscrollInterval <= 0 {
		c.AutoscrollInterval = def.AutoscrollInterval
	}
	if c.AutoscrollIncrement <= 0 {
		c.AutoscrollIncrement = def.AutoscrollIncrement
	}
	if c.LiftScale <= 0 {
		c.LiftScale = def.LiftScale
	}
	if c.LiftAlpha <= 0 {
		c.LiftAlpha = def.LiftAlpha
	}
	if c.DropDuration < 0 {
		c.DropDuration = 0
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = def.FrameInterval
	}
	if c.AckTimeout <= 0 {
		c.AckTimeout = def.AckTimeout
	}
	return c
}

// ConfigFromEnv loads the configuration from DRAGDROP_* environment variables,
// falling back to the defaults for the unset ones.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the durations and increments are usable.
func (c Config) Validate() error {
	switch {
	case c.AutoscrollInterval <= 0:
		return fmt.Errorf("autoscroll interval must be positive, got %v", c.AutoscrollInterval)
	case c.FrameInterval <= 0:
		return fmt.Errorf("frame interval must be positive, got %v", c.FrameInterval)
	case c.DropDuration < 0:
		return fmt.Errorf("drop duration must not be negative, got %v", c.DropDuration)
	case c.AckTimeout <= 0:
		return fmt.Errorf("acknowledgment timeout must be positive, got %v", c.AckTimeout)
	case c.AutoscrollIncrement <= 0:
		return fmt.Errorf("autoscroll increment must be positive, got %v", c.AutoscrollIncrement)
	}
	return nil
}
