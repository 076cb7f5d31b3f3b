package app

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/jdougu/canvas-gears/geargl"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoInstances is returned by Validate when the scene places no gear.
var ErrNoInstances = errors.New("scene has no gear instances")

// GearConfig names one gear shape. Color is RGB in [0, 1].
type GearConfig struct {
	Name        string    `toml:"name" yaml:"name"`
	InnerRadius float64   `toml:"inner_radius" yaml:"inner_radius"`
	OuterRadius float64   `toml:"outer_radius" yaml:"outer_radius"`
	Width       float64   `toml:"width" yaml:"width"`
	Teeth       int       `toml:"teeth" yaml:"teeth"`
	ToothDepth  float64   `toml:"tooth_depth" yaml:"tooth_depth"`
	Color       []float64 `toml:"color" yaml:"color"`
}

// Spec converts the config to a gear spec. Missing color channels read as 0.
func (g GearConfig) Spec() geargl.GearSpec {
	var c [3]float64
	copy(c[:], g.Color)
	return geargl.GearSpec{
		InnerRadius: g.InnerRadius,
		OuterRadius: g.OuterRadius,
		Width:       g.Width,
		Teeth:       g.Teeth,
		ToothDepth:  g.ToothDepth,
		Color:       geargl.ColorVec(c[0], c[1], c[2]),
	}
}

// InstanceConfig places a named gear. Offset is x, y and optionally z; the
// gear turns by Rate·θ+Phase radians.
type InstanceConfig struct {
	Gear   string    `toml:"gear" yaml:"gear"`
	Offset []float64 `toml:"offset" yaml:"offset"`
	Rate   float64   `toml:"rate" yaml:"rate"`
	Phase  float64   `toml:"phase" yaml:"phase"`
}

// CameraConfig positions the camera rig. Angles are in degrees.
type CameraConfig struct {
	Pitch    *float64 `toml:"pitch" yaml:"pitch"`
	Yaw      *float64 `toml:"yaw" yaml:"yaw"`
	Distance float64  `toml:"distance" yaml:"distance"`
	Near     float64  `toml:"near" yaml:"near"`
	Far      float64  `toml:"far" yaml:"far"`
}

// Config is the whole scene plus animation and input tuning.
type Config struct {
	Gears     []GearConfig     `toml:"gears" yaml:"gears"`
	Instances []InstanceConfig `toml:"instances" yaml:"instances"`
	Camera    CameraConfig     `toml:"camera" yaml:"camera"`

	// Light is the world light position (x, y, z, w).
	Light []float64 `toml:"light" yaml:"light"`
	// Speed advances θ in radians per second.
	Speed float64 `toml:"speed" yaml:"speed"`
	// KeyStep is the camera rotation per arrow key press, in degrees.
	KeyStep float64 `toml:"key_step" yaml:"key_step"`
	// DragPixels is the pointer travel that rotates the camera by one radian.
	DragPixels float64 `toml:"drag_pixels" yaml:"drag_pixels"`
	// Background is the clear color, RGB in [0, 1].
	Background []float64 `toml:"background" yaml:"background"`
	// LogEvery is the FPS log period in seconds. Negative disables it.
	LogEvery float64 `toml:"log_every" yaml:"log_every"`

	Wireframe bool `toml:"wireframe" yaml:"wireframe"`
	// HideHUD leaves the FPS and mode labels off the frame.
	HideHUD bool `toml:"hide_hud" yaml:"hide_hud"`
}

func float64Ptr(v float64) *float64 { return &v }

// DefaultConfig returns the classic three-gear scene.
func DefaultConfig() Config {
	return Config{
		Gears: []GearConfig{
			{Name: "red", InnerRadius: 1, OuterRadius: 4, Width: 1, Teeth: 20, ToothDepth: 0.7, Color: []float64{0.8, 0.1, 0}},
			{Name: "green", InnerRadius: 0.5, OuterRadius: 2, Width: 2, Teeth: 10, ToothDepth: 0.7, Color: []float64{0, 0.8, 0.2}},
			{Name: "blue", InnerRadius: 1.3, OuterRadius: 2, Width: 0.5, Teeth: 10, ToothDepth: 0.7, Color: []float64{0.2, 0.2, 1}},
		},
		Instances: []InstanceConfig{
			{Gear: "red", Offset: []float64{-3, -2, 0}, Rate: 1, Phase: 0},
			{Gear: "green", Offset: []float64{3.1, -2, 0}, Rate: -2, Phase: -9},
			{Gear: "blue", Offset: []float64{-3.1, 4.2, 0}, Rate: -2, Phase: -25},
		},
		Camera: CameraConfig{
			Pitch:    float64Ptr(20),
			Yaw:      float64Ptr(30),
			Distance: 40,
			Near:     5,
			Far:      60,
		},
		Light:      []float64{5, 5, 10, 0},
		Speed:      1.22,
		KeyStep:    5,
		DragPixels: 200,
		Background: []float64{0, 0, 0},
		LogEvery:   5,
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) scene file. A file that
// lists gears replaces the default scene; tuning fields it leaves out keep
// their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}

	var file Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		return Config{}, fmt.Errorf("config %q: unsupported format %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	cfg := file.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if len(c.Gears) == 0 && len(c.Instances) == 0 {
		c.Gears, c.Instances = d.Gears, d.Instances
	}
	if c.Camera.Pitch == nil {
		c.Camera.Pitch = d.Camera.Pitch
	}
	if c.Camera.Yaw == nil {
		c.Camera.Yaw = d.Camera.Yaw
	}
	if c.Camera.Distance == 0 {
		c.Camera.Distance = d.Camera.Distance
	}
	if c.Camera.Near == 0 {
		c.Camera.Near = d.Camera.Near
	}
	if c.Camera.Far == 0 {
		c.Camera.Far = d.Camera.Far
	}
	if c.Light == nil {
		c.Light = d.Light
	}
	if c.Speed == 0 {
		c.Speed = d.Speed
	}
	if c.KeyStep == 0 {
		c.KeyStep = d.KeyStep
	}
	if c.DragPixels == 0 {
		c.DragPixels = d.DragPixels
	}
	if c.Background == nil {
		c.Background = d.Background
	}
	if c.LogEvery == 0 {
		c.LogEvery = d.LogEvery
	}
	return c
}

// Validate checks every precondition the pipeline leaves to its caller.
func (c Config) Validate() error {
	var errs []error

	names := make(map[string]bool, len(c.Gears))
	for i, g := range c.Gears {
		label := g.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
			errs = append(errs, fmt.Errorf("gear %s: missing name", label))
		}
		if names[g.Name] {
			errs = append(errs, fmt.Errorf("gear %s: duplicate name", label))
		}
		names[g.Name] = true
		if len(g.Color) != 3 {
			errs = append(errs, fmt.Errorf("gear %s: color needs 3 components, got %d", label, len(g.Color)))
		}
		if err := g.Spec().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("gear %s: %w", label, err))
		}
	}

	if len(c.Instances) == 0 {
		errs = append(errs, ErrNoInstances)
	}
	for i, in := range c.Instances {
		if !names[in.Gear] {
			errs = append(errs, fmt.Errorf("instance #%d: unknown gear %q", i, in.Gear))
		}
		if n := len(in.Offset); n != 2 && n != 3 {
			errs = append(errs, fmt.Errorf("instance #%d: offset needs 2 or 3 components, got %d", i, n))
		}
	}

	cam := c.Camera
	if !(cam.Near > 0 && cam.Near < cam.Far) {
		errs = append(errs, fmt.Errorf("camera: need 0 < near < far, got near=%v far=%v", cam.Near, cam.Far))
	}
	if cam.Pitch == nil || cam.Yaw == nil {
		errs = append(errs, errors.New("camera: pitch and yaw are required"))
	}
	if len(c.Light) != 4 {
		errs = append(errs, fmt.Errorf("light needs 4 components, got %d", len(c.Light)))
	}
	if len(c.Background) != 3 {
		errs = append(errs, fmt.Errorf("background needs 3 components, got %d", len(c.Background)))
	}
	if c.DragPixels <= 0 {
		errs = append(errs, fmt.Errorf("drag_pixels must be positive, got %v", c.DragPixels))
	}
	return errors.Join(errs...)
}

// Scene builds each gear once and returns the instances in config order.
// c must be valid.
func (c Config) Scene() []geargl.Instance {
	gears := make(map[string]*geargl.Gear, len(c.Gears))
	for _, g := range c.Gears {
		gears[g.Name] = geargl.NewGear(g.Spec())
	}
	out := make([]geargl.Instance, 0, len(c.Instances))
	for _, in := range c.Instances {
		var off [3]float64
		copy(off[:], in.Offset)
		out = append(out, geargl.Instance{
			Gear:   gears[in.Gear],
			Offset: geargl.Dir(off[0], off[1], off[2]),
			Rate:   in.Rate,
			Phase:  in.Phase,
		})
	}
	return out
}

// LightPosition returns the configured world light. c must be valid.
func (c Config) LightPosition() geargl.Vec4 {
	return geargl.Vec4{X: c.Light[0], Y: c.Light[1], Z: c.Light[2], W: c.Light[3]}
}

// Controller returns the camera controller for the configured start pose.
// c must be valid.
func (c Config) Controller() *geargl.Controller {
	ctl := geargl.NewController(radians(*c.Camera.Pitch), radians(*c.Camera.Yaw))
	ctl.Step = radians(c.KeyStep)
	ctl.DragScale = 1 / c.DragPixels
	ctl.Wireframe = c.Wireframe
	return ctl
}

// BackgroundColor returns the clear color. c must be valid.
func (c Config) BackgroundColor() geargl.Color {
	return geargl.RGB(unit(c.Background[0]), unit(c.Background[1]), unit(c.Background[2]))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func unit(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(math.Round(v * 255))
	}
}
