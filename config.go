package trackview

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds every tuning constant of the engine. Zero-value fields in a
// loaded file keep their defaults, so a config file only needs to name the
// values it overrides.
type Config struct {
	// Viewport
	ZoomMin float64 `yaml:"zoomMin" validate:"gt=0"`
	ZoomMax float64 `yaml:"zoomMax" validate:"gtfield=ZoomMin"`
	// Single-shot zoom factors for wheel and double-click pseudo-gestures.
	WheelZoomIn     float64 `yaml:"wheelZoomIn" validate:"gt=1"`
	WheelZoomOut    float64 `yaml:"wheelZoomOut" validate:"gt=0,lt=1"`
	DoubleClickZoom float64 `yaml:"doubleClickZoom" validate:"gt=1"`

	// Inertia
	InertiaDecay    float64 `yaml:"inertiaDecay" validate:"gt=0,lt=1"`
	InertiaMinSpeed float64 `yaml:"inertiaMinSpeed" validate:"gt=0"` // px/ms, below this the animation stops
	FlickMinSpeed   float64 `yaml:"flickMinSpeed" validate:"gte=0"`  // px/ms release speed needed to start inertia

	// Gestures
	VelocityFloorMS float64 `yaml:"velocityFloorMS" validate:"gt=0"` // minimum Δt for velocity estimation
	HitRadius       float64 `yaml:"hitRadius" validate:"gt=0"`       // screen px around a marker that counts as a hit

	// Path following
	TickIntervalMS float64 `yaml:"tickIntervalMS" validate:"gt=0"`
	BaseRate       float64 `yaml:"baseRate" validate:"gt=0"` // progress per tick at reference speed
	ReferenceSpeed float64 `yaml:"referenceSpeed" validate:"gt=0"`
	DelayFactor    float64 `yaml:"delayFactor" validate:"gt=0,lte=1"` // progress multiplier for delayed trains
	LaneSpacing    float64 `yaml:"laneSpacing" validate:"gte=0"`      // world units between overlapping markers
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		ZoomMin:         0.3,
		ZoomMax:         3.0,
		WheelZoomIn:     1.1,
		WheelZoomOut:    0.9,
		DoubleClickZoom: 1.25,
		InertiaDecay:    0.95,
		InertiaMinSpeed: 0.01,
		FlickMinSpeed:   0.05,
		VelocityFloorMS: 16,
		HitRadius:       12,
		TickIntervalMS:  50,
		BaseRate:        0.004,
		ReferenceSpeed:  100,
		DelayFactor:     0.7,
		LaneSpacing:     3,
	}
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("trackview: invalid config: %w", err)
	}
	return nil
}

// LoadConfig reads a YAML config file over the defaults and validates the
// result. A missing file is an error; pass nothing and use DefaultConfig
// when no file is expected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("trackview: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig unmarshals YAML config data over the defaults and validates
// the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("trackview: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
