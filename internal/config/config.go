package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/newthinker/hypergluex/internal/core"
	"github.com/newthinker/hypergluex/internal/layout"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. HYPERGLUE_SERVER_PORT.
const EnvPrefix = "HYPERGLUE"

type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Site    SiteConfig    `mapstructure:"site" yaml:"site"`
	UI      UIConfig      `mapstructure:"ui" yaml:"ui"`
	Metrics MetricsConfig `mapstructure:"metrics" yaml:"metrics"`
}

type ServerConfig struct {
	Host         string        `mapstructure:"host" yaml:"host"`
	Port         int           `mapstructure:"port" yaml:"port"`
	TemplatesDir string        `mapstructure:"templates_dir" yaml:"templates_dir"` // empty = embedded templates
	Watch        bool          `mapstructure:"watch" yaml:"watch"`                 // reload templates_dir on change
	ReadTimeout  time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
}

// SiteConfig is the static document metadata and branding.
type SiteConfig struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Subtitle    string `mapstructure:"subtitle" yaml:"subtitle"`
	Title       string `mapstructure:"title" yaml:"title"`
	Description string `mapstructure:"description" yaml:"description"`
}

type UIConfig struct {
	Breakpoint string `mapstructure:"breakpoint" yaml:"breakpoint"` // sm, md, lg, xl, 2xl
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// Load reads configuration from file, layered over Defaults. An empty path
// skips the file; HYPERGLUE_* environment overrides apply either way. A .env
// file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, Defaults())

	// Support environment variable overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.templates_dir", d.Server.TemplatesDir)
	v.SetDefault("server.watch", d.Server.Watch)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("site.name", d.Site.Name)
	v.SetDefault("site.subtitle", d.Site.Subtitle)
	v.SetDefault("site.title", d.Site.Title)
	v.SetDefault("site.description", d.Site.Description)
	v.SetDefault("ui.breakpoint", d.UI.Breakpoint)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.path", d.Metrics.Path)
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         3000,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Site: SiteConfig{
			Name:        "HyperGlueX",
			Subtitle:    "HyperLiquid Dashboard",
			Title:       "HyperGlueX - HyperLiquid Dashboard",
			Description: "Analytics and monitoring dashboard for HyperLiquid",
		},
		UI: UIConfig{
			Breakpoint: string(layout.DefaultBreakpoint),
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return core.Wrapf(core.ErrConfigInvalid, "port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Watch && c.Server.TemplatesDir == "" {
		return core.Wrapf(core.ErrConfigMissing, "templates_dir required when watch is enabled")
	}

	if c.Site.Title == "" {
		return core.Wrapf(core.ErrConfigMissing, "site title required")
	}

	if _, err := layout.ParseBreakpoint(c.UI.Breakpoint); err != nil {
		return core.WrapError(core.ErrConfigInvalid, err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return core.Wrapf(core.ErrConfigInvalid, "metrics path must start with /, got %q", c.Metrics.Path)
	}

	return nil
}
