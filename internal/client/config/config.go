package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/dmitrijs2005/studykeeper/internal/logging"
)

// DefaultEndpointURL is the production Apps Script deployment.
const DefaultEndpointURL = "https://script.google.com/macros/s/AKfycbyg9Pkepfm8zd4daGH_v7bjxI5ZJgS4but7PLO1llg_jHggRlH2j6DqFr3pyi7PRSVR/exec"

// Config holds runtime settings for the StudyKeeper CLI.
//
// Fields:
//   - EndpointURL: absolute http(s) URL every request is POSTed to.
//   - LogLevel: minimum level written to the log (debug, info, warn, error).
type Config struct {
	EndpointURL string
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.EndpointURL = DefaultEndpointURL
	c.LogLevel = "info"
}

// Validate checks that the endpoint is an absolute http(s) URL and that the
// log level is known.
func (c *Config) Validate() error {
	u, err := url.Parse(c.EndpointURL)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint URL %q has no host", c.EndpointURL)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. The result is validated.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
