// Package config loads runtime configuration from BLOG_* environment
// variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the blog binary needs at startup.
type Config struct {
	HTTPAddr    string `env:"BLOG_HTTP_ADDR"    envDefault:":8080"`
	DatabaseDSN string `env:"BLOG_DATABASE_DSN" envDefault:"file:blog.db?_fk=1"`

	AdminEmail        string `env:"BLOG_ADMIN_EMAIL"`
	AdminPasswordHash string `env:"BLOG_ADMIN_PASSWORD_HASH"`

	SessionSecret string        `env:"BLOG_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"BLOG_SESSION_TTL" envDefault:"24h"`
	SecureCookies bool          `env:"BLOG_SECURE_COOKIES" envDefault:"false"`

	LogLevel  string `env:"BLOG_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"BLOG_LOG_FORMAT" envDefault:"console"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ValidateServe checks the fields the HTTP server cannot run without. The
// import subcommand only needs the datastore, so this is not part of Load.
func (c Config) ValidateServe() error {
	if strings.TrimSpace(c.SessionSecret) == "" {
		return fmt.Errorf("config: BLOG_SESSION_SECRET is required")
	}
	if strings.TrimSpace(c.AdminEmail) == "" {
		return fmt.Errorf("config: BLOG_ADMIN_EMAIL is required")
	}
	if strings.TrimSpace(c.AdminPasswordHash) == "" {
		return fmt.Errorf("config: BLOG_ADMIN_PASSWORD_HASH is required")
	}
	return nil
}
