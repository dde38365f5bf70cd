// Package config loads vec2d settings from defaults, an optional YAML file,
// .env files, VEC2D_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. VEC2D_WORLD_BODIES.
const EnvPrefix = "VEC2D"

// Config is the complete program configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	World  WorldConfig  `mapstructure:"world" yaml:"world"`
	Runner RunnerConfig `mapstructure:"runner" yaml:"runner"`
}

// LoggerConfig holds all logging-related configuration.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// WorldConfig describes the simulated box and its bodies.
// Speeds are in units per tick, angles in degrees.
type WorldConfig struct {
	Width       float64 `mapstructure:"width" yaml:"width"`
	Height      float64 `mapstructure:"height" yaml:"height"`
	Bodies      int     `mapstructure:"bodies" yaml:"bodies"`
	Radius      float64 `mapstructure:"radius" yaml:"radius"`
	MaxSpeed    float64 `mapstructure:"max_speed" yaml:"max_speed"`
	Restitution float64 `mapstructure:"restitution" yaml:"restitution"`
	MaxTurnDeg  float64 `mapstructure:"max_turn_deg" yaml:"max_turn_deg"`
	GravityX    float64 `mapstructure:"gravity_x" yaml:"gravity_x"`
	GravityY    float64 `mapstructure:"gravity_y" yaml:"gravity_y"`
	Attract     bool    `mapstructure:"attract" yaml:"attract"`
	Seed        int64   `mapstructure:"seed" yaml:"seed"`
}

// RunnerConfig controls how the world is driven.
type RunnerConfig struct {
	Headless bool `mapstructure:"headless" yaml:"headless"`
	Hz       int  `mapstructure:"hz" yaml:"hz"`
	Ticks    int  `mapstructure:"ticks" yaml:"ticks"`
	Scale    int  `mapstructure:"scale" yaml:"scale"`
	Worlds   int  `mapstructure:"worlds" yaml:"worlds"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "vec2d")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	v.SetDefault("world.width", 320.0)
	v.SetDefault("world.height", 320.0)
	v.SetDefault("world.bodies", 24)
	v.SetDefault("world.radius", 3.0)
	v.SetDefault("world.max_speed", 4.0)
	v.SetDefault("world.restitution", 0.9)
	v.SetDefault("world.max_turn_deg", 3.0)
	v.SetDefault("world.gravity_x", 0.0)
	v.SetDefault("world.gravity_y", 0.05)
	v.SetDefault("world.attract", true)
	v.SetDefault("world.seed", 1)

	v.SetDefault("runner.headless", false)
	v.SetDefault("runner.hz", 60)
	v.SetDefault("runner.ticks", 0)
	v.SetDefault("runner.scale", 2)
	v.SetDefault("runner.worlds", 4)
}

// NewDefaultConfig returns the configuration made of defaults only.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads configuration into v and returns the validated result.
// An empty configFile searches ./vec2d.yaml; a missing search result is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("vec2d")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv loads KEY=value files into the process environment.
// Existing variables win; missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if err := c.World.Validate(); err != nil {
		return fmt.Errorf("world configuration invalid: %w", err)
	}
	if c.Runner.Hz <= 0 {
		return fmt.Errorf("runner.hz must be a positive integer")
	}
	if c.Runner.Ticks < 0 {
		return fmt.Errorf("runner.ticks must not be negative")
	}
	if c.Runner.Worlds <= 0 {
		return fmt.Errorf("runner.worlds must be a positive integer")
	}
	return nil
}

// Validate checks the world configuration.
func (w *WorldConfig) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("width and height must be positive (got %gx%g)", w.Width, w.Height)
	}
	if w.Bodies < 0 {
		return fmt.Errorf("bodies must not be negative")
	}
	if w.Radius < 0 || 2*w.Radius >= w.Width || 2*w.Radius >= w.Height {
		return fmt.Errorf("radius %g does not fit a %gx%g world", w.Radius, w.Width, w.Height)
	}
	if w.MaxSpeed <= 0 {
		return fmt.Errorf("max_speed must be positive")
	}
	if w.Restitution < 0 || w.Restitution > 1 {
		return fmt.Errorf("restitution must be within [0, 1]")
	}
	if w.MaxTurnDeg < 0 {
		return fmt.Errorf("max_turn_deg must not be negative")
	}
	return nil
}
