package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidWindow    = errors.New("invalid window settings")
	ErrInvalidLogOutput = errors.New("invalid log output")
	ErrInvalidCamera    = errors.New("invalid camera settings")
)

// WorldUp is the up direction of every camera.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Config holds all sandbox settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Camera  CameraConfig  `yaml:"camera"`
	Light   LightConfig   `yaml:"light"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// WindowConfig configures the GLFW window and GL context.
type WindowConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Samples int    `yaml:"samples"` // MSAA samples, 0 disables
	GLMajor int    `yaml:"gl_major"`
	GLMinor int    `yaml:"gl_minor"`
	VSync   bool   `yaml:"vsync"`
	ShowFPS bool   `yaml:"show_fps"`
}

// LoggingConfig configures where log entries go.
type LoggingConfig struct {
	Output string `yaml:"output"` // console, file or both
	Path   string `yaml:"path"`   // base path, a timestamp is appended
	Level  string `yaml:"level"`
}

// CameraConfig configures both camera models.
type CameraConfig struct {
	FlyPosition   [3]float32 `yaml:"fly_position"`
	OrbitPosition [3]float32 `yaml:"orbit_position"`
	Target        [3]float32 `yaml:"target"`
	Speed         float32    `yaml:"speed"`
	Sensitivity   float32    `yaml:"sensitivity"`
	ArcballRadius float32    `yaml:"arcball_radius"`
	InvertY       bool       `yaml:"invert_y"`
	ScrollScale   float32    `yaml:"scroll_scale"` // degrees of zoom per scroll step
}

// LightConfig configures the point light of the shaded demos.
type LightConfig struct {
	Position   [3]float32 `yaml:"position"`
	Color      [3]float32 `yaml:"color"`
	Speed      float32    `yaml:"speed"`
	Scale      float32    `yaml:"scale"`
	BlinnPhong bool       `yaml:"blinn_phong"`
}

// AssetsConfig points at files loaded at runtime.
type AssetsConfig struct {
	Texture   string `yaml:"texture"`
	Model     string `yaml:"model"`
	ShaderDir string `yaml:"shader_dir"` // overrides the embedded shaders when set
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:   800,
			Height:  600,
			Title:   "OpenGL Sandbox",
			Samples: 4,
			GLMajor: 4,
			GLMinor: 1,
			VSync:   true,
			ShowFPS: true,
		},
		Logging: LoggingConfig{
			Output: "console",
			Path:   "logs/sandbox-",
			Level:  "info",
		},
		Camera: CameraConfig{
			FlyPosition:   [3]float32{0, 0, 3},
			OrbitPosition: [3]float32{0, 0, 7},
			Speed:         5,
			Sensitivity:   0.1,
			ArcballRadius: 1,
			ScrollScale:   2,
		},
		Light: LightConfig{
			Position:   [3]float32{2, 2, 2},
			Color:      [3]float32{1, 1, 1},
			Speed:      4,
			Scale:      0.25,
			BlinnPhong: true,
		},
		Assets: AssetsConfig{
			Texture: "assets/textures/checker.png",
			Model:   "assets/models/pyramid.holym",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidWindow, w.Width, w.Height)
	}
	if w.GLMajor < 3 || (w.GLMajor == 3 && w.GLMinor < 3) {
		return fmt.Errorf("%w: OpenGL %d.%d is older than 3.3", ErrInvalidWindow, w.GLMajor, w.GLMinor)
	}
	if w.Samples < 0 {
		return fmt.Errorf("%w: negative sample count", ErrInvalidWindow)
	}

	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogOutput, c.Logging.Output)
	}
	if c.Logging.Output != "console" && c.Logging.Path == "" {
		return fmt.Errorf("%w: file output needs a path", ErrInvalidLogOutput)
	}

	if c.Camera.Speed <= 0 || c.Camera.Sensitivity <= 0 || c.Camera.ArcballRadius <= 0 {
		return fmt.Errorf("%w: speed, sensitivity and arcball radius must be positive", ErrInvalidCamera)
	}
	if c.Camera.OrbitPosition == c.Camera.Target {
		return fmt.Errorf("%w: orbit position equals target", ErrInvalidCamera)
	}
	// The orbital camera has no horizon when it looks straight up or down.
	sight := mgl32.Vec3(c.Camera.OrbitPosition).Sub(mgl32.Vec3(c.Camera.Target))
	if sight.Normalize().Cross(WorldUp).Len() < 1e-3 {
		return fmt.Errorf("%w: orbit position is straight above or below the target", ErrInvalidCamera)
	}
	return nil
}
