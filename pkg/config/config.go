package config

import (
	"errors"
	"fmt"
	"lintang/windcanvas/pkg/datastructure"
	"lintang/windcanvas/pkg/projection"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Workers     WorkersConfig     `mapstructure:"workers"`
	GeoBound    GeoBoundConfig    `mapstructure:"geo_bound"`
	CanvasBound CanvasBoundConfig `mapstructure:"canvas_bound"`
}

type ServerConfig struct {
	ListenAddr   string `mapstructure:"listen_addr"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// WorkersConfig batch distort di atas BatchThreshold titik dikerjakan oleh Count worker.
type WorkersConfig struct {
	Count          int `mapstructure:"count"`
	BatchThreshold int `mapstructure:"batch_threshold"`
}

type GeoBoundConfig struct {
	North float64 `mapstructure:"north"`
	West  float64 `mapstructure:"west"`
	South float64 `mapstructure:"south"`
	East  float64 `mapstructure:"east"`
}

func (g GeoBoundConfig) Bound() datastructure.GeoBound {
	return datastructure.NewGeoBound(g.North, g.West, g.South, g.East)
}

type CanvasBoundConfig struct {
	XMin float64 `mapstructure:"x_min"`
	YMin float64 `mapstructure:"y_min"`
	XMax float64 `mapstructure:"x_max"`
	YMax float64 `mapstructure:"y_max"`
}

func (c CanvasBoundConfig) Bound() datastructure.CanvasBound {
	return datastructure.NewCanvasBound(c.XMin, c.YMin, c.XMax, c.YMax)
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	return LoadFrom(".", "./configs")
}

// LoadFrom sama dengan Load tapi config.yaml dicari di paths. File yang tidak ada dilewati,
// file yang rusak dikembalikan sebagai error.
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.listen_addr", ":5000")
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("workers.count", 4)
	v.SetDefault("workers.batch_threshold", 256)
	v.SetDefault("geo_bound.north", 85)
	v.SetDefault("geo_bound.west", -180)
	v.SetDefault("geo_bound.south", -85)
	v.SetDefault("geo_bound.east", 180)
	v.SetDefault("canvas_bound.x_min", 0)
	v.SetDefault("canvas_bound.y_min", 0)
	v.SetDefault("canvas_bound.x_max", 360)
	v.SetDefault("canvas_bound.y_max", 180)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// WINDCANVAS_GEO_BOUND_NORTH → geo_bound.north
	v.SetEnvPrefix("WINDCANVAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.ListenAddr == "" {
		errs = append(errs, "server.listen_addr is required")
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Workers.Count <= 0 {
		errs = append(errs, fmt.Sprintf("workers.count must be positive, got %d", c.Workers.Count))
	}
	if c.Workers.BatchThreshold < 0 {
		errs = append(errs, fmt.Sprintf("workers.batch_threshold must not be negative, got %d", c.Workers.BatchThreshold))
	}
	if err := projection.ValidateGeoBound(c.GeoBound.Bound()); err != nil {
		errs = append(errs, "geo_bound: "+err.Error())
	}
	if err := projection.ValidateCanvasBound(c.CanvasBound.Bound()); err != nil {
		errs = append(errs, "canvas_bound: "+err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
