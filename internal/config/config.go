// Package config loads the site configuration from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/infraguide/internal/core"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
	Cache   CacheConfig   `yaml:"cache"`
	Metrics MetricsConfig `yaml:"metrics"`
	Site    SiteConfig    `yaml:"site"`
	Dev     bool          `yaml:"dev"`
}

type ServerConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	PidFile         string        `yaml:"pid_file"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// CacheConfig configures the in-memory render cache.
type CacheConfig struct {
	Enabled     bool          `yaml:"enabled"`
	NumCounters int64         `yaml:"num_counters"`
	MaxCost     int64         `yaml:"max_cost"`
	BufferItems int64         `yaml:"buffer_items"`
	TTL         time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type SiteConfig struct {
	Title          string `yaml:"title"`
	GuidePath      string `yaml:"guide_path"`
	HighlightStyle string `yaml:"highlight_style"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Address:         ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			PidFile:         "infraguide.pid",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Cache: CacheConfig{
			Enabled:     true,
			NumCounters: 1000,
			MaxCost:     8 << 20,
			BufferItems: 64,
			TTL:         10 * time.Minute,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Site: SiteConfig{
			Title:          "Multi-Region Infrastructure",
			GuidePath:      "/deployment-guide",
			HighlightStyle: "github",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty or missing path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv("INFRAGUIDE_ADDR"); v != "" {
		cfg.Server.Address = v
	}
	if v := getenv("INFRAGUIDE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := getenv("INFRAGUIDE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if getenv("INFRAGUIDE_DEV") == "1" {
		cfg.Dev = true
	}
}

// HealthPath and AssetPrefix are served by the server itself.
const (
	HealthPath  = "/healthz"
	AssetPrefix = "/dist"
)

func isReserved(p string) bool {
	p = core.NormalizePath(p)
	return p == HealthPath || p == AssetPrefix || strings.HasPrefix(p, AssetPrefix+"/")
}

func (c Config) Validate() error {
	if _, _, err := net.SplitHostPort(c.Server.Address); err != nil {
		return fmt.Errorf("%w: server.address %q: %v", ErrInvalid, c.Server.Address, err)
	}

	if err := core.ValidateRoutePath(c.Site.GuidePath); err != nil {
		return fmt.Errorf("%w: site.guide_path: %v", ErrInvalid, err)
	}
	if core.NormalizePath(c.Site.GuidePath) == "/" {
		return fmt.Errorf("%w: site.guide_path cannot be the home route", ErrInvalid)
	}

	if isReserved(c.Site.GuidePath) {
		return fmt.Errorf("%w: site.guide_path %q is reserved", ErrInvalid, c.Site.GuidePath)
	}

	if c.Metrics.Enabled {
		if err := core.ValidateRoutePath(c.Metrics.Path); err != nil {
			return fmt.Errorf("%w: metrics.path: %v", ErrInvalid, err)
		}
		if isReserved(c.Metrics.Path) || core.NormalizePath(c.Metrics.Path) == "/" || core.SameRoute(c.Metrics.Path, c.Site.GuidePath) {
			return fmt.Errorf("%w: metrics.path %q collides with another route", ErrInvalid, c.Metrics.Path)
		}
	}

	if c.Cache.BufferItems < 0 {
		return fmt.Errorf("%w: cache.buffer_items must not be negative", ErrInvalid)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q must be text or json", ErrInvalid, c.Log.Format)
	}

	return nil
}
