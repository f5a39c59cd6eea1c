// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Assets    AssetsConfig    `yaml:"assets"`
	Headless  HeadlessConfig  `yaml:"headless"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The play field is the whole window.
type ScreenConfig struct {
	Width          int    `yaml:"width"`
	Height         int    `yaml:"height"`
	TargetTicksSec int    `yaml:"target_ticks_per_second"` // delta time is 1 at this rate
	Title          string `yaml:"title"`
}

// PlayerConfig holds the player ship parameters.
type PlayerConfig struct {
	Speed          float64 `yaml:"speed"`            // px per tick at delta 1
	Size           float64 `yaml:"size"`             // used for spawn placement
	ShotCooldownMS uint64  `yaml:"shot_cooldown_ms"` // ms between volleys
	TurretOffsetX  float64 `yaml:"turret_offset_x"`  // guns at ±X from center
	TurretOffsetY  float64 `yaml:"turret_offset_y"`
}

// BulletConfig holds projectile parameters.
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	PoolSize int     `yaml:"pool_size"`
}

// EnemyConfig holds the enemy grid parameters.
type EnemyConfig struct {
	Size        float64 `yaml:"size"`
	Radius      float64 `yaml:"radius"`
	Columns     int     `yaml:"columns"`
	Rows        int     `yaml:"rows"`
	IdleFPS     int     `yaml:"idle_fps"`
	DestroyFPS  int     `yaml:"destroy_fps"`
	RotationDeg float64 `yaml:"rotation_deg"`
}

// AssetsConfig holds sprite locations relative to Root.
type AssetsConfig struct {
	Root         string `yaml:"root"`
	Player       string `yaml:"player"`
	Bullet       string `yaml:"bullet"`
	EnemyIdle    string `yaml:"enemy_idle"`
	EnemyDestroy string `yaml:"enemy_destroy"`
}

// HeadlessConfig holds the windowless autopilot parameters.
type HeadlessConfig struct {
	SweepTicks int    `yaml:"sweep_ticks"` // ticks spent moving each way
	FrameMS    uint64 `yaml:"frame_ms"`    // simulated time per presented frame (0 = 1000/target)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // seconds of ticks at the target rate
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW         float64 // Screen.Width as float64
	ScreenH         float64 // Screen.Height as float64
	TargetFrameMS   float64 // 1000 / target ticks per second
	StatsWindowTick int     // Telemetry.StatsWindow in ticks
	HeadlessFrameMS uint64  // effective Headless.FrameMS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
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
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetTicksSec <= 0 {
		errs = append(errs, fmt.Errorf("target_ticks_per_second must be positive, got %d", c.Screen.TargetTicksSec))
	}
	if c.Screen.TargetTicksSec > 1000 && c.Headless.FrameMS == 0 {
		errs = append(errs, fmt.Errorf("target_ticks_per_second %d leaves no whole millisecond per headless frame; set headless.frame_ms", c.Screen.TargetTicksSec))
	}
	if c.Enemy.Columns < 0 || c.Enemy.Rows < 0 {
		errs = append(errs, fmt.Errorf("enemy grid %dx%d must not be negative", c.Enemy.Columns, c.Enemy.Rows))
	}
	if c.Bullet.PoolSize < 0 {
		errs = append(errs, fmt.Errorf("bullet pool_size must not be negative, got %d", c.Bullet.PoolSize))
	}
	if c.Bullet.Radius < 0 || c.Enemy.Radius < 0 {
		errs = append(errs, errors.New("collision radii must not be negative"))
	}
	if c.Enemy.IdleFPS <= 0 || c.Enemy.DestroyFPS <= 0 {
		errs = append(errs, errors.New("enemy animation rates must be positive"))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)
	c.Derived.TargetFrameMS = 1000.0 / float64(c.Screen.TargetTicksSec)

	c.Derived.StatsWindowTick = int(c.Telemetry.StatsWindow * float64(c.Screen.TargetTicksSec))
	if c.Derived.StatsWindowTick < 1 {
		c.Derived.StatsWindowTick = 1
	}

	c.Derived.HeadlessFrameMS = c.Headless.FrameMS
	if c.Derived.HeadlessFrameMS == 0 {
		c.Derived.HeadlessFrameMS = uint64(1000 / c.Screen.TargetTicksSec)
	}
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
