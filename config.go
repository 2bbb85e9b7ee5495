package slackmoji

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Expected credential prefixes. Tokens with other prefixes are accepted but
// logged, since they usually mean the wrong credential was extracted.
const (
	tokenPrefix  = "xoxc-"
	cookiePrefix = "xoxd-"
)

// Config holds the immutable credentials and workspace identity used to
// build the base URL and authenticate every request.
type Config struct {
	// Workspace is the tenant subdomain, e.g. "acme" for acme.slack.com.
	Workspace string `envconfig:"WORKSPACE"`
	// Token is the session-bound API token ("xoxc-..."), sent as a form field.
	Token string `envconfig:"TOKEN"`
	// Cookie is the browser session cookie value ("xoxd-..."), sent as the
	// "d" cookie on every request.
	Cookie string `envconfig:"COOKIE"`
}

// ConfigFromEnv loads a Config from SLACKMOJI_WORKSPACE, SLACKMOJI_TOKEN and
// SLACKMOJI_COOKIE.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("slackmoji", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that all credentials are present and warns when a token
// does not carry its expected prefix.
func (c Config) Validate() error {
	if c.Workspace == "" {
		return fmt.Errorf("workspace cannot be empty")
	}
	if c.Token == "" {
		return fmt.Errorf("api token cannot be empty")
	}
	if c.Cookie == "" {
		return fmt.Errorf("cookie token cannot be empty")
	}
	if !strings.HasPrefix(c.Token, tokenPrefix) {
		log.Warn().Str("workspace", c.Workspace).Msgf("api token does not start with %q", tokenPrefix)
	}
	if !strings.HasPrefix(c.Cookie, cookiePrefix) {
		log.Warn().Str("workspace", c.Workspace).Msgf("cookie token does not start with %q", cookiePrefix)
	}
	return nil
}
