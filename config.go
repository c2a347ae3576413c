package directory

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goliatone/go-errors"
)

// AppConfig is the environment-backed configuration consumed at bootstrap.
// Business logic never reads these values ambiently; they are handed to the
// components that need them at construction time.
type AppConfig struct {
	SigningKey string        `env:"JWT_SECRET,required"`
	TokenTTL   time.Duration `env:"JWT_DURATION" envDefault:"720h"`
	Issuer     string        `env:"JWT_ISSUER" envDefault:"go-directory"`
	Audience   []string      `env:"JWT_AUDIENCE" envSeparator:","`
	ListenAddr string        `env:"LISTEN_ADDR" envDefault:":3333"`
	DSN        string        `env:"DATABASE_DSN" envDefault:"file:directory.db?cache=shared"`
	Debug      bool          `env:"DEBUG"`
}

var _ Config = (*AppConfig)(nil)

// LoadConfig parses configuration from the process environment
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "failed to parse environment configuration")
	}
	return cfg, nil
}

func (c *AppConfig) GetSigningKey() string {
	return c.SigningKey
}

func (c *AppConfig) GetTokenTTL() time.Duration {
	return c.TokenTTL
}

func (c *AppConfig) GetIssuer() string {
	return c.Issuer
}

func (c *AppConfig) GetAudience() []string {
	return c.Audience
}

func (c *AppConfig) GetListenAddr() string {
	return c.ListenAddr
}

func (c *AppConfig) GetDSN() string {
	return c.DSN
}

func (c *AppConfig) GetDebug() bool {
	return c.Debug
}
