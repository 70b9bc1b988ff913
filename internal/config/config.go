package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr"`
	LogMode  string `yaml:"log_mode"` // dev|prod
	SiteID   string `yaml:"site_id"`

	DBDriver string `yaml:"db_driver"` // sqlite|postgres
	DBDSN    string `yaml:"db_dsn"`

	BlobBasePath string `yaml:"blob_base_path"`

	AuthHMACSecret string `yaml:"auth_hmac_secret"`
	AuthorUser     string `yaml:"author_user"`
	AuthorPassHash string `yaml:"author_pass_hash"` // bcrypt; empty disables login

	CORSOrigins    []string      `yaml:"cors_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

func Defaults() Config {
	return Config{
		HTTPAddr:       ":8080",
		LogMode:        "dev",
		SiteID:         "local",
		DBDriver:       "sqlite",
		BlobBasePath:   "./data",
		AuthHMACSecret: "supersecret-dev-key",
		AuthorUser:     "author",
		CORSOrigins:    []string{"http://localhost:3000"},
		RequestTimeout: 30 * time.Second,
	}
}

// FromEnv returns the defaults overridden by environment variables.
func FromEnv() Config {
	cfg := Defaults()
	applyEnv(&cfg)
	return cfg
}

// Load reads an optional YAML file over the defaults, then applies the
// environment on top. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported db_driver %q", c.DBDriver)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("config: request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if strings.TrimSpace(c.AuthHMACSecret) == "" {
		return fmt.Errorf("config: auth_hmac_secret is required")
	}
	return nil
}

func applyEnv(c *Config) {
	c.HTTPAddr = envOr("HTTP_ADDR", c.HTTPAddr)
	c.LogMode = envOr("LOG_MODE", c.LogMode)
	c.SiteID = envOr("SITE_ID", c.SiteID)
	c.DBDriver = envOr("DB_DRIVER", c.DBDriver)
	c.DBDSN = envOr("DB_DSN", c.DBDSN)
	c.BlobBasePath = envOr("BLOB_BASE_PATH", c.BlobBasePath)
	c.AuthHMACSecret = envOr("AUTH_HMAC_SECRET", c.AuthHMACSecret)
	c.AuthorUser = envOr("AUTHOR_USER", c.AuthorUser)
	c.AuthorPassHash = envOr("AUTHOR_PASS_HASH", c.AuthorPassHash)
	c.CORSOrigins = csvOr("CORS_ORIGINS", c.CORSOrigins)
	c.RequestTimeout = durationOr("REQUEST_TIMEOUT", c.RequestTimeout)
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func durationOr(k string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(k))
	if err != nil {
		return def
	}
	return d
}

func csvOr(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
