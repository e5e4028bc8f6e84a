// Package config loads the flycam settings from an optional YAML file and
// resolves them into camera and render types.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/leterax/go-flycam/pkg/camera"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Window defaults
const (
	DefaultWidth  = 1000
	DefaultHeight = 800
	DefaultTitle  = "flycam"
)

// Projection defaults
const (
	DefaultFOV  = 45.0
	DefaultNear = 0.1
	DefaultFar  = 100.0
)

// DefaultBackground is the clear color, opaque white
var DefaultBackground = mgl32.Vec4{1, 1, 1, 1}

// Config is the resolved configuration
type Config struct {
	Window   WindowConfig
	Render   RenderConfig
	Camera   CameraConfig
	Bindings camera.Bindings
	Presets  map[camera.Key]camera.Preset
}

// WindowConfig describes the window to open
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// RenderConfig holds the per-frame render parameters
type RenderConfig struct {
	Background mgl32.Vec4
	FOV        float32 // degrees
	Near       float32
	Far        float32
}

// CameraConfig holds the startup pose and the tunable speeds
type CameraConfig struct {
	Pose        camera.Pose
	MoveSpeed   float32
	Sensitivity float32
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			VSync:  true,
		},
		Render: RenderConfig{
			Background: DefaultBackground,
			FOV:        DefaultFOV,
			Near:       DefaultNear,
			Far:        DefaultFar,
		},
		Camera: CameraConfig{
			Pose:        camera.DefaultPose(),
			MoveSpeed:   camera.DefaultMoveSpeed,
			Sensitivity: camera.DefaultSensitivity,
		},
		Bindings: camera.DefaultBindings(),
		Presets:  camera.DefaultPresets(),
	}
}

// Load reads and parses a YAML config file
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document on top of the defaults.
// Omitted fields keep their default; a bindings or presets section replaces
// the default table as a whole.
func Parse(data []byte) (Config, error) {
	doc := defaultDocument()
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return doc.resolve()
}
