// Package config provides configuration loading and access for the
// simulation. Raw YAML values are plain numbers with the unit fixed by
// the field; Derived re-expresses the ones the simulation consumes as
// typed quantities so unit mistakes stop at the config boundary.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/phys/quantity"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Craft     CraftConfig     `yaml:"craft"`
	Fleet     FleetConfig     `yaml:"fleet"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds simulation world dimensions in meters.
// Zero width/height means derive from the screen size and pixel scale.
type WorldConfig struct {
	Width       float64 `yaml:"width"`         // meters (0 = screen width × scale)
	Height      float64 `yaml:"height"`        // meters (0 = screen height × scale)
	MetersPerPx float64 `yaml:"meters_per_px"` // world-to-screen scale
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	DT       float64 `yaml:"dt"`        // tick duration in seconds
	Drag     float64 `yaml:"drag"`      // quadratic drag coefficient (1/m)
	MaxSpeed float64 `yaml:"max_speed"` // hard speed cap in m/s
}

// CraftConfig holds the physical properties of a craft.
type CraftConfig struct {
	DryMass            float64 `yaml:"dry_mass"`             // kg
	FuelMass           float64 `yaml:"fuel_mass"`            // kg
	FuelSpecificEnergy float64 `yaml:"fuel_specific_energy"` // J/kg
	EnginePower        float64 `yaml:"engine_power"`         // J/s while burning
	EngineThrust       float64 `yaml:"engine_thrust"`        // N at full throttle
	TurnRate           float64 `yaml:"turn_rate"`            // max rad/s
	Radius             float64 `yaml:"radius"`               // m, for rendering
}

// FleetConfig holds spawn parameters.
type FleetConfig struct {
	Count      int     `yaml:"count"`       // craft to spawn
	SpawnSpeed float64 `yaml:"spawn_speed"` // max initial speed in m/s
}

// TelemetryConfig holds stats aggregation parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // window length in seconds
}

// DerivedConfig holds quantity-typed values computed from the loaded
// config. Simulation code reads these, never the raw floats.
type DerivedConfig struct {
	DT           quantity.Time
	PixelScale   quantity.Scale
	WorldWidth   quantity.Length
	WorldHeight  quantity.Length
	MaxSpeed     quantity.Speed
	DryMass      quantity.Mass
	FuelMass     quantity.Mass
	FuelEnergy   quantity.EnergyDensity
	EnginePower  quantity.Power
	EngineThrust quantity.Force
	TurnRate     quantity.AngularSpeed
	CraftRadius  quantity.Length
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT)
	}
	if c.World.MetersPerPx <= 0 {
		return fmt.Errorf("world.meters_per_px must be positive, got %v", c.World.MetersPerPx)
	}
	if c.Craft.FuelSpecificEnergy <= 0 {
		return fmt.Errorf("craft.fuel_specific_energy must be positive, got %v", c.Craft.FuelSpecificEnergy)
	}
	if c.Fleet.Count < 0 {
		return fmt.Errorf("fleet.count must not be negative, got %d", c.Fleet.Count)
	}
	return nil
}

// computeDerived re-expresses loaded values as typed quantities.
func (c *Config) computeDerived() {
	c.Derived.DT = quantity.Seconds(c.Physics.DT)
	c.Derived.PixelScale = quantity.MetersPerPixel(c.World.MetersPerPx)

	// World dimensions default to the screen extent mapped through the
	// pixel scale.
	w := quantity.Meters(c.World.Width)
	if w.IsZero() {
		w = quantity.ScaleRel.Mul(c.Derived.PixelScale, quantity.Pixels(float64(c.Screen.Width)))
	}
	h := quantity.Meters(c.World.Height)
	if h.IsZero() {
		h = quantity.ScaleRel.Mul(c.Derived.PixelScale, quantity.Pixels(float64(c.Screen.Height)))
	}
	c.Derived.WorldWidth = w
	c.Derived.WorldHeight = h

	c.Derived.MaxSpeed = quantity.MetersPerSecond(c.Physics.MaxSpeed)
	c.Derived.DryMass = quantity.Kilograms(c.Craft.DryMass)
	c.Derived.FuelMass = quantity.Kilograms(c.Craft.FuelMass)
	c.Derived.FuelEnergy = quantity.JoulesPerKilogram(c.Craft.FuelSpecificEnergy)
	c.Derived.EnginePower = quantity.JoulesPerSecond(c.Craft.EnginePower)
	c.Derived.EngineThrust = quantity.Newtons(c.Craft.EngineThrust)
	c.Derived.TurnRate = quantity.RadiansPerSecond(c.Craft.TurnRate)
	c.Derived.CraftRadius = quantity.Meters(c.Craft.Radius)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
