package gesture

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultDistanceThreshold = 8.0 // host units, usually pixels
	defaultHoldTime          = 1000 * time.Millisecond
	defaultTickPeriod        = 100 * time.Millisecond

	// RotateGain scales the per-sample rotation angle before it is reported.
	RotateGain = 25.0
)

// ErrInvalidConfig is returned when a Config has out-of-range values.
var ErrInvalidConfig = errors.New("gesture: invalid config")

// Config holds the tunables of a Recognizer. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// DistanceThreshold is the cumulative travel a single contact may cover
	// and still resolve to Tap or Hold. Past it, the contact drags.
	DistanceThreshold float64 `yaml:"distance_threshold" json:"distance_threshold"`

	// HoldTime is how long a stationary single contact must stay down to
	// produce Hold instead of Tap.
	HoldTime time.Duration `yaml:"hold_time" json:"hold_time"`

	// TickPeriod is the granularity at which elapsed press time is sampled.
	TickPeriod time.Duration `yaml:"tick_period" json:"tick_period"`
}

// DefaultConfig returns the stock tuning: 8 units of travel, 1s hold, sampled
// every 100ms.
func DefaultConfig() Config {
	return Config{
		DistanceThreshold: defaultDistanceThreshold,
		HoldTime:          defaultHoldTime,
		TickPeriod:        defaultTickPeriod,
	}
}

// Validate reports whether every field is in range.
func (c Config) Validate() error {
	switch {
	case !(c.DistanceThreshold > 0) || !isFinite(c.DistanceThreshold):
		return fmt.Errorf("%w: distance threshold %v must be positive", ErrInvalidConfig, c.DistanceThreshold)
	case c.HoldTime <= 0:
		return fmt.Errorf("%w: hold time %v must be positive", ErrInvalidConfig, c.HoldTime)
	case c.TickPeriod <= 0:
		return fmt.Errorf("%w: tick period %v must be positive", ErrInvalidConfig, c.TickPeriod)
	case c.TickPeriod > c.HoldTime:
		return fmt.Errorf("%w: tick period %v exceeds hold time %v", ErrInvalidConfig, c.TickPeriod, c.HoldTime)
	}
	return nil
}

// LoadConfig parses a YAML (or JSON) document on top of DefaultConfig, so
// fields left out keep their defaults. Durations use Go syntax ("750ms").
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse gesture config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
