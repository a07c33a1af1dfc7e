package main

import (
	"errors"
	"fmt"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/swdee/go-posture/classify"
	"strings"
)

const (
	// envPrefix is the prefix of environment variables read into Config
	envPrefix = "POSEOVERLAY_"

	backendImage = "image"
	backendGoCV  = "gocv"
)

// ErrInvalidConfig is returned when a loaded Config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// Thresholds mirrors classify.Params for configuration files
type Thresholds struct {
	TrunkReferenceOffset    float64 `koanf:"trunk_reference_offset"`
	ShoulderReferenceOffset float64 `koanf:"shoulder_reference_offset"`
	TrunkCaution            float64 `koanf:"trunk_caution"`
	TrunkDanger             float64 `koanf:"trunk_danger"`
	ArmElevation            float64 `koanf:"arm_elevation"`
	ArmExtension            float64 `koanf:"arm_extension"`
}

// Config contains the program configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `koanf:"log_level"`
	// Backend selects the drawing surface: image (pure Go) or gocv (OpenCV)
	Backend string `koanf:"backend"`
	// ShowIdentifiers draws person ids and bounding boxes
	ShowIdentifiers bool `koanf:"show_identifiers"`
	// ShowReferencePoints marks the shoulder reference points
	ShowReferencePoints bool `koanf:"show_reference_points"`
	// Font is an optional TTF file used for ids with the image backend
	Font string `koanf:"font"`

	Thresholds Thresholds `koanf:"thresholds"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {

	p := classify.DefaultParams()

	return Config{
		LogLevel: "info",
		Backend:  backendImage,
		Thresholds: Thresholds{
			TrunkReferenceOffset:    p.TrunkReferenceOffset,
			ShoulderReferenceOffset: p.ShoulderReferenceOffset,
			TrunkCaution:            p.TrunkCaution,
			TrunkDanger:             p.TrunkDanger,
			ArmElevation:            p.ArmElevation,
			ArmExtension:            p.ArmExtension,
		},
	}
}

// Params converts the configured thresholds to classification parameters
func (c Config) Params() classify.Params {
	return classify.Params{
		TrunkReferenceOffset:    c.Thresholds.TrunkReferenceOffset,
		ShoulderReferenceOffset: c.Thresholds.ShoulderReferenceOffset,
		TrunkCaution:            c.Thresholds.TrunkCaution,
		TrunkDanger:             c.Thresholds.TrunkDanger,
		ArmElevation:            c.Thresholds.ArmElevation,
		ArmExtension:            c.Thresholds.ArmExtension,
	}
}

// Validate checks the configuration values are usable
func (c Config) Validate() error {

	if c.Backend != backendImage && c.Backend != backendGoCV {
		return fmt.Errorf("%w: backend %q must be %q or %q", ErrInvalidConfig,
			c.Backend, backendImage, backendGoCV)
	}

	if c.Thresholds.TrunkCaution >= c.Thresholds.TrunkDanger {
		return fmt.Errorf("%w: trunk_caution %.1f must be below trunk_danger %.1f",
			ErrInvalidConfig, c.Thresholds.TrunkCaution, c.Thresholds.TrunkDanger)
	}

	if c.Thresholds.TrunkReferenceOffset <= 0 || c.Thresholds.ShoulderReferenceOffset <= 0 {
		return fmt.Errorf("%w: reference offsets must be positive", ErrInvalidConfig)
	}

	return nil
}

// LoadConfig builds a Config by layering defaults, the optional YAML file at
// path and POSEOVERLAY_ environment variables, in increasing precedence.
// Nested keys are separated with a double underscore in variable names, eg:
// POSEOVERLAY_THRESHOLDS__TRUNK_DANGER.
func LoadConfig(path string) (Config, error) {

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	})

	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("error loading environment: %w", err)
	}

	cfg := DefaultConfig()

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}

	cfg.Backend = strings.ToLower(cfg.Backend)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
