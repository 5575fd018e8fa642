// Package config loads service configuration from an optional YAML file with
// environment-variable overrides, through koanf.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "COMPLISCAN_"

// Config is the full service configuration.
type Config struct {
	Server   Server   `koanf:"server"`
	Database Database `koanf:"database"`
	Admin    Admin    `koanf:"admin"`
	CORS     CORS     `koanf:"cors"`
	Log      Log      `koanf:"log"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `koanf:"addr"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Database selects the store backend. An empty URL runs the service on
// in-memory stores, which suits development and tests.
type Database struct {
	URL string `koanf:"url"`
}

// Admin guards the administrative surface. An empty token leaves the seed
// endpoint open, matching the original development setup.
type Admin struct {
	Token string `koanf:"token"`
}

// CORS configures allowed browser origins for the intake frontend.
type CORS struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// Log configures structured logging.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load reads configPath (when non-empty and present) and applies environment
// overrides of the form COMPLISCAN_SECTION_KEY, e.g. COMPLISCAN_DATABASE_URL
// or COMPLISCAN_SERVER_ADDR.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("read config %s: %w", configPath, err)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// COMPLISCAN_SERVER_SHUTDOWN_TIMEOUT -> server.shutdown_timeout
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			section, rest, found := strings.Cut(key, "_")
			if found {
				key = section + "." + rest
			}
			if key == "cors.allowed_origins" {
				return key, strings.Split(value, ",")
			}
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}
}
