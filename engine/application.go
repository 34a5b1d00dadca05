package engine

import (
	"fmt"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

type ApplicationConfig struct {
	// The application name used in logs and frame metadata.
	Name string `toml:"name" yaml:"name"`
	// Render target starting width.
	StartWidth uint32 `toml:"width" yaml:"width"`
	// Render target starting height.
	StartHeight uint32 `toml:"height" yaml:"height"`
	// One of debug, info, warn, error or fatal. Empty keeps the current level.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// World handedness, "y-up" or "z-up".
	Handedness string `toml:"handedness" yaml:"handedness"`
	// Directory of camera rig files, watched for changes. Empty disables rigs.
	RigDirectory string `toml:"rig_directory" yaml:"rig_directory"`
	// Directory rendered frames are written to as PNG. Empty keeps frames in memory.
	OutputDirectory string `toml:"output_directory" yaml:"output_directory"`
	// Number of frames to run before stopping. Zero runs until quit.
	Frames         uint64     `toml:"frames" yaml:"frames"`
	MaxCameraCount uint16     `toml:"max_camera_count" yaml:"max_camera_count"`
	Background     color.RGBA `toml:"-" yaml:"-"`
}

// DefaultApplicationConfig returns a 1280x720 y-up configuration.
func DefaultApplicationConfig(name string) *ApplicationConfig {
	return &ApplicationConfig{
		Name:           name,
		StartWidth:     1280,
		StartHeight:    720,
		LogLevel:       "info",
		Handedness:     "y-up",
		MaxCameraCount: 100,
		Background:     color.RGBA{R: 24, G: 24, B: 32, A: 255},
	}
}

/**
 * @brief Reads an application config from a TOML or YAML file. Values the
 * file leaves out keep their defaults.
 */
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultApplicationConfig("")
	switch metadata.DetermineRigFormat(path) {
	case metadata.RIG_FORMAT_TOML:
		err = toml.Unmarshal(buf, config)
	case metadata.RIG_FORMAT_YAML:
		err = yaml.Unmarshal(buf, config)
	default:
		return nil, fmt.Errorf("%w: '%s'", core.ErrRigFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config '%s': %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.StartWidth == 0 || c.StartHeight == 0 {
		return fmt.Errorf("invalid start size %dx%d", c.StartWidth, c.StartHeight)
	}
	if c.MaxCameraCount == 0 {
		return fmt.Errorf("max_camera_count must be > 0")
	}
	if _, err := math.ParseHandedness(c.Handedness); err != nil {
		return err
	}
	return nil
}
