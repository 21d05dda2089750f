// Package config loads the scene and view settings from flags, environment
// (AXISVIZ_*) and an optional config file, in that order of precedence.
package config

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"axisviz/internal/axisrot"
	"axisviz/internal/camera"
	"axisviz/internal/geom"
)

const EnvPrefix = "AXISVIZ"

type Viewport struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Config is everything a driver needs to draw one scene.
type Config struct {
	Camera   camera.State `mapstructure:"camera"`
	Viewport Viewport     `mapstructure:"viewport"`

	P1    []float64 `mapstructure:"p1"`
	P2    []float64 `mapstructure:"p2"`
	Point []float64 `mapstructure:"point"`

	// Theta is in degrees; Radians converts it.
	Theta    float64 `mapstructure:"theta"`
	Stage    string  `mapstructure:"stage"`
	LogLevel string  `mapstructure:"log-level"`
}

// Default is the scene the viewer opens with.
func Default() Config {
	return Config{
		Camera:   camera.DefaultState(),
		Viewport: Viewport{Width: 1200, Height: 800},
		P1:       []float64{1, -0.5, 1.5},
		P2:       []float64{3, -2, -2.5},
		Point:    []float64{-2.5, 1.5, 0.5},
		Theta:    90,
		Stage:    axisrot.InverseRestored.String(),
		LogLevel: "info",
	}
}

// flag name -> viper key
var scalarFlags = map[string]string{
	"pitch":     "camera.pitch",
	"yaw":       "camera.yaw",
	"zoom":      "camera.zoom",
	"distance":  "camera.distance",
	"width":     "viewport.width",
	"height":    "viewport.height",
	"theta":     "theta",
	"stage":     "stage",
	"log-level": "log-level",
}

var vectorFlags = []string{"p1", "p2", "point"}

// AddFlags registers the scene flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String("config", "", "Config file (yaml, json or toml)")
	fs.Float64("pitch", d.Camera.Pitch, "Camera pitch in degrees")
	fs.Float64("yaw", d.Camera.Yaw, "Camera yaw in degrees")
	fs.Float64("zoom", d.Camera.Zoom, "Camera zoom factor")
	fs.Float64("distance", d.Camera.Distance, "Camera distance added to depth")
	fs.Int("width", d.Viewport.Width, "Viewport width in pixels")
	fs.Int("height", d.Viewport.Height, "Viewport height in pixels")
	fs.Float64Slice("p1", d.P1, "First axis point x,y,z")
	fs.Float64Slice("p2", d.P2, "Second axis point x,y,z")
	fs.Float64Slice("point", d.Point, "Point to rotate x,y,z")
	fs.Float64("theta", d.Theta, "Rotation angle in degrees")
	fs.String("stage", d.Stage, "Stage to show, by name or index 0-5")
	fs.String("log-level", d.LogLevel, "Log level")
}

// Load resolves the configuration and validates it. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	d := Default()
	v.SetDefault("camera.pitch", d.Camera.Pitch)
	v.SetDefault("camera.yaw", d.Camera.Yaw)
	v.SetDefault("camera.zoom", d.Camera.Zoom)
	v.SetDefault("camera.distance", d.Camera.Distance)
	v.SetDefault("viewport.width", d.Viewport.Width)
	v.SetDefault("viewport.height", d.Viewport.Height)
	v.SetDefault("p1", d.P1)
	v.SetDefault("p2", d.P2)
	v.SetDefault("point", d.Point)
	v.SetDefault("theta", d.Theta)
	v.SetDefault("stage", d.Stage)
	v.SetDefault("log-level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range scalarFlags {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, errors.Wrapf(err, "binding flag %s", name)
				}
			}
		}
		if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrap(err, "reading config")
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}

	// Slice flags do not survive viper's string round trip, so explicitly
	// set ones are applied here.
	if fs != nil {
		for _, name := range vectorFlags {
			if !fs.Changed(name) {
				continue
			}
			vals, err := fs.GetFloat64Slice(name)
			if err != nil {
				return nil, errors.Wrapf(err, "flag %s", name)
			}
			*cfg.vector(name) = vals
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) vector(name string) *[]float64 {
	switch name {
	case "p1":
		return &c.P1
	case "p2":
		return &c.P2
	}
	return &c.Point
}

// Validate checks ranges and rejects a degenerate axis before any stage runs.
func (c *Config) Validate() error {
	for _, name := range vectorFlags {
		if n := len(*c.vector(name)); n != 3 {
			return errors.Errorf("%s needs 3 coordinates, got %d", name, n)
		}
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return errors.Errorf("viewport %dx%d is empty", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Camera.Zoom <= 0 {
		return errors.Errorf("zoom must be positive, got %v", c.Camera.Zoom)
	}
	if _, err := axisrot.ParseStage(c.Stage); err != nil {
		return err
	}
	if _, err := c.Axis(); err != nil {
		return err
	}
	return nil
}

// Axis returns the configured rotation axis, or ErrDegenerateAxis.
func (c *Config) Axis() (axisrot.Axis, error) {
	return axisrot.NewAxis(vec(c.P1), vec(c.P2))
}

func (c *Config) PointVec() geom.Vec3 {
	return vec(c.Point)
}

// Radians is Theta in radians.
func (c *Config) Radians() float64 {
	return mgl64.DegToRad(c.Theta)
}

// StageValue is the parsed Stage; it is InverseRestored if Stage is invalid.
func (c *Config) StageValue() axisrot.Stage {
	s, err := axisrot.ParseStage(c.Stage)
	if err != nil {
		return axisrot.InverseRestored
	}
	return s
}

func vec(v []float64) geom.Vec3 {
	var out geom.Vec3
	copy(out[:], v)
	return out
}
