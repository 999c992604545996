package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Tactics   TacticsConfig   `mapstructure:"tactics"`
	Map       MapConfig       `mapstructure:"map"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Demo      DemoConfig      `mapstructure:"demo"`
}

// TacticsConfig holds unit defaults and reachability query settings
type TacticsConfig struct {
	DefaultMovement    int  `mapstructure:"default_movement"`
	DefaultWeaponRange int  `mapstructure:"default_weapon_range"`
	IncludeOrigin      bool `mapstructure:"include_origin"`
}

// MapConfig holds map generation settings
type MapConfig struct {
	Width           int    `mapstructure:"width"`
	Height          int    `mapstructure:"height"`
	WallRatio       int    `mapstructure:"wall_ratio"`
	MinSpawnSpacing int    `mapstructure:"min_spawn_spacing"`
	File            string `mapstructure:"file"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TelemetryConfig holds tracing settings
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
}

// DemoConfig holds demo mode configuration
type DemoConfig struct {
	UnitsPerTeam int `mapstructure:"units_per_team"`
	MaxActions   int `mapstructure:"max_actions"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("tactics.default_movement", 5)
	v.SetDefault("tactics.default_weapon_range", 1)
	v.SetDefault("tactics.include_origin", true)

	v.SetDefault("map.width", 10)
	v.SetDefault("map.height", 8)
	v.SetDefault("map.wall_ratio", 8)
	v.SetDefault("map.min_spawn_spacing", 3)
	v.SetDefault("map.file", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "gridtactics")

	v.SetDefault("demo.units_per_team", 3)
	v.SetDefault("demo.max_actions", 12)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/gridtactics")
	}

	v.SetEnvPrefix("GTX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A specific file that is missing falls back to defaults
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig loads environment-specific config overlay
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Set allows runtime config updates
func Set(key string, value interface{}) error {
	v.Set(key, value)
	return v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file.
// A reload that fails validation keeps the previous config.
func WatchConfig(onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		if err := v.Unmarshal(next); err != nil {
			return
		}
		if err := Validate(next); err != nil {
			return
		}
		cfg = next
		if onChange != nil {
			onChange(cfg)
		}
	})
	v.WatchConfig()
}

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	validLogFormats = []string{"console", "json"}
)

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Tactics.DefaultMovement < 0 {
		return fmt.Errorf("tactics.default_movement must be non-negative")
	}
	if c.Tactics.DefaultWeaponRange < 0 {
		return fmt.Errorf("tactics.default_weapon_range must be non-negative")
	}

	if c.Map.File == "" {
		if c.Map.Width <= 0 || c.Map.Height <= 0 {
			return fmt.Errorf("map dimensions must be positive")
		}
	}
	if c.Map.WallRatio < 0 {
		return fmt.Errorf("map.wall_ratio must be non-negative")
	}
	if c.Map.MinSpawnSpacing < 0 {
		return fmt.Errorf("map.min_spawn_spacing must be non-negative")
	}

	if !contains(validLogLevels, strings.ToLower(c.Logging.Level)) {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	if !contains(validLogFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.Telemetry.Enabled && c.Telemetry.ServiceName == "" {
		return fmt.Errorf("telemetry.service_name is required when telemetry is enabled")
	}

	if c.Demo.UnitsPerTeam < 0 {
		return fmt.Errorf("demo.units_per_team must be non-negative")
	}
	if c.Demo.MaxActions <= 0 {
		return fmt.Errorf("demo.max_actions must be positive")
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
