package config

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// legacyEnv maps the unprefixed variables a bare deployment already sets.
var legacyEnv = map[string]string{ //nolint:gochecknoglobals // fixed lookup table
	"SMTP_HOST":      "smtp_host",
	"SMTP_PORT":      "smtp_port",
	"SMTP_USER":      "smtp_user",
	"SMTP_PASS":      "smtp_pass",
	"TO_EMAIL":       "contact_to",
	"ADMIN_USERNAME": "admin_username",
	"ADMIN_PASSWORD": "admin_password",
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if FOLIO_CONFIG is set
//  3. legacy env (SMTP_HOST, ADMIN_PASSWORD, ...)
//  4. env (prefix FOLIO_)
//
// PORT sets the listen port when addr was not configured.
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv("FOLIO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(ErrLoadConfig, "file %s: %v", path, err)
		}
	}

	legacy := env.Provider("", ".", func(s string) string {
		return legacyEnv[s]
	})
	if err := k.Load(legacy, nil); err != nil {
		return nil, errors.Wrapf(ErrLoadConfig, "legacy env: %v", err)
	}

	// FOLIO_SEND_DELAY -> send_delay; underscores match the koanf tags.
	prefixed := env.Provider("FOLIO_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
		if s == "config" {
			return ""
		}
		return s
	})
	if err := k.Load(prefixed, nil); err != nil {
		return nil, errors.Wrapf(ErrLoadConfig, "env: %v", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrapf(ErrLoadConfig, "decode: %v", err)
	}

	if !k.Exists("addr") {
		if port := os.Getenv("PORT"); port != "" {
			cfg.Addr = ":" + port
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.Wrap(ErrInvalidConfig, "addr must not be empty")
	}
	if c.TypingInterval < 60*time.Millisecond || c.TypingInterval > 80*time.Millisecond {
		return errors.Wrapf(ErrInvalidConfig, "typing_interval %s outside 60ms-80ms", c.TypingInterval)
	}
	for name, d := range map[string]time.Duration{
		"cursor_interval":   c.CursorInterval,
		"count_interval":    c.CountInterval,
		"send_delay":        c.SendDelay,
		"reset_delay":       c.ResetDelay,
		"view_ttl":          c.ViewTTL,
		"sweep_interval":    c.SweepInterval,
		"visitor_retention": c.VisitorRetention,
	} {
		if d <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s must be positive", name)
		}
	}
	if c.RevealThreshold <= 0 || c.RevealThreshold > 1 {
		return errors.Wrapf(ErrInvalidConfig, "reveal_threshold %v outside (0,1]", c.RevealThreshold)
	}
	if c.ContactRate <= 0 || c.ContactBurst <= 0 {
		return errors.Wrap(ErrInvalidConfig, "contact_rate and contact_burst must be positive")
	}

	switch c.ContactDelivery {
	case DeliverySimulate, DeliveryStore:
	case DeliverySMTP:
		if c.SMTPUser == "" || c.SMTPPass == "" || c.ContactTo == "" {
			return errors.Wrap(ErrInvalidConfig, "smtp delivery needs smtp_user, smtp_pass and contact_to")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown contact_delivery %q", c.ContactDelivery)
	}
	return nil
}
