package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/skillsenselab/authkit/logger"
	"github.com/skillsenselab/authkit/observability"
	"github.com/skillsenselab/authkit/password"
	"github.com/skillsenselab/authkit/server"
	"github.com/skillsenselab/authkit/store"
	"github.com/skillsenselab/authkit/token"
)

// Config is the full service configuration, assembled from config.yml,
// the process environment, and an optional .env file.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment"`
	Version     string `yaml:"version" mapstructure:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`

	Logging  logger.Config        `yaml:"logging" mapstructure:"logging"`
	Server   server.Config        `yaml:"server" mapstructure:"server"`
	Auth     AuthConfig           `yaml:"auth" mapstructure:"auth"`
	Password password.Config      `yaml:"password" mapstructure:"password"`
	Database store.Config         `yaml:"database" mapstructure:"database"`
	Tracing  observability.Config `yaml:"tracing" mapstructure:"tracing"`
}

// AuthConfig configures token signing. TTLs are strings so config files
// can say "15m" or "7d"; see ParseTTL.
type AuthConfig struct {
	// Secret is the HMAC signing key. There is no default: a service
	// without an explicit secret refuses to start.
	Secret string `yaml:"secret" mapstructure:"secret"`

	// Issuer is the iss claim stamped on every token (optional).
	Issuer string `yaml:"issuer" mapstructure:"issuer"`

	// Method is the signing algorithm: HS256 (default), HS384, HS512.
	Method string `yaml:"method" mapstructure:"method"`

	// AccessTokenTTL is the access-token lifetime (default "15m").
	AccessTokenTTL string `yaml:"access_token_ttl" mapstructure:"access_token_ttl"`

	// RefreshTokenTTL is the refresh-token lifetime (default "7d").
	RefreshTokenTTL string `yaml:"refresh_token_ttl" mapstructure:"refresh_token_ttl"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *AuthConfig) ApplyDefaults() {
	if c.Method == "" {
		c.Method = string(token.HS256)
	}
	if c.AccessTokenTTL == "" {
		c.AccessTokenTTL = "15m"
	}
	if c.RefreshTokenTTL == "" {
		c.RefreshTokenTTL = "7d"
	}
}

// Validate checks required fields. The secret check is deliberate: a
// missing AUTH_SECRET is a startup failure, never a fallback key.
func (c *AuthConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("auth.secret is required (set AUTH_SECRET)")
	}
	if _, err := ParseTTL(c.AccessTokenTTL); err != nil {
		return fmt.Errorf("invalid auth.access_token_ttl %q: %w", c.AccessTokenTTL, err)
	}
	if _, err := ParseTTL(c.RefreshTokenTTL); err != nil {
		return fmt.Errorf("invalid auth.refresh_token_ttl %q: %w", c.RefreshTokenTTL, err)
	}
	return nil
}

// TokenConfig converts the loaded section into the token service config.
// Call only after Validate.
func (c *AuthConfig) TokenConfig() (*token.Config, error) {
	access, err := ParseTTL(c.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth.access_token_ttl: %w", err)
	}
	refresh, err := ParseTTL(c.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth.refresh_token_ttl: %w", err)
	}
	return &token.Config{
		Secret:     c.Secret,
		Method:     token.SigningMethod(c.Method),
		Issuer:     c.Issuer,
		AccessTTL:  access,
		RefreshTTL: refresh,
	}, nil
}

// ApplyDefaults applies defaults to every section and propagates the
// service identity where sub-configs need it.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "authkit"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Password.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Tracing.ApplyDefaults(c.Name, c.Version, c.Environment)
}

// Validate validates every section, failing fast on the first problem.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Password.Validate(); err != nil {
		return fmt.Errorf("password: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// ParseTTL parses a duration string, additionally accepting a "d" (day)
// suffix that time.ParseDuration lacks: "7d" is 168h.
func ParseTTL(s string) (time.Duration, error) {
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q", s)
		}
		if days <= 0 {
			return 0, fmt.Errorf("ttl must be positive (got: %s)", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("ttl must be positive (got: %s)", s)
	}
	return d, nil
}
