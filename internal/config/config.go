// Package config defines the process configuration and how it is loaded.
//
// Values are layered: compiled-in defaults, then an optional YAML file named
// by FOLIO_CONFIG, then the legacy unprefixed variables (PORT, SMTP_*,
// TO_EMAIL, ADMIN_*), then FOLIO_* variables.
package config

import (
	"context"
	"time"
)

// Delivery modes for contact submissions.
const (
	DeliverySimulate = "simulate"
	DeliveryStore    = "store"
	DeliverySMTP     = "smtp"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFile is the rotated JSON log. Empty disables the file sink.
	LogFile string `koanf:"log_file"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Mode is the gin mode: debug, release or test.
	Mode string `koanf:"mode"`

	// DBPath is the sqlite file for visitors and the contact inbox.
	DBPath string `koanf:"db_path"`

	// ContentFile optionally replaces the compiled-in content.
	ContentFile string `koanf:"content_file"`

	// ImagesDir is served under /images.
	ImagesDir string `koanf:"images_dir"`

	// StaticDir is served under /static behind the embedded assets.
	StaticDir string `koanf:"static_dir"`

	// Effect timings.
	TypingInterval  time.Duration `koanf:"typing_interval"`
	CursorInterval  time.Duration `koanf:"cursor_interval"`
	CountInterval   time.Duration `koanf:"count_interval"`
	SendDelay       time.Duration `koanf:"send_delay"`
	ResetDelay      time.Duration `koanf:"reset_delay"`
	RevealThreshold float64       `koanf:"reveal_threshold"`

	// ViewTTL bounds how long a view may go without an attached stream.
	ViewTTL       time.Duration `koanf:"view_ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`

	// ContactDelivery is one of simulate, store or smtp.
	ContactDelivery string `koanf:"contact_delivery"`
	SMTPHost        string `koanf:"smtp_host"`
	SMTPPort        string `koanf:"smtp_port"`
	SMTPUser        string `koanf:"smtp_user"`
	SMTPPass        string `koanf:"smtp_pass"`
	ContactTo       string `koanf:"contact_to"`

	// ContactRate is submissions per minute allowed per client IP.
	ContactRate  float64 `koanf:"contact_rate"`
	ContactBurst int     `koanf:"contact_burst"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	// VisitorRetention is how long visitor rows are kept.
	VisitorRetention time.Duration `koanf:"visitor_retention"`
}

// New returns a Config holding the defaults.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		LogFile:          "logs/folio.log",
		Addr:             ":8080",
		Mode:             "release",
		DBPath:           "folio.db",
		ImagesDir:        "./images",
		StaticDir:        "./static",
		TypingInterval:   60 * time.Millisecond,
		CursorInterval:   500 * time.Millisecond,
		CountInterval:    50 * time.Millisecond,
		SendDelay:        time.Second,
		ResetDelay:       3 * time.Second,
		RevealThreshold:  0.1,
		ViewTTL:          2 * time.Minute,
		SweepInterval:    30 * time.Second,
		ContactDelivery:  DeliverySimulate,
		SMTPHost:         "smtp.gmail.com",
		SMTPPort:         "587",
		ContactRate:      5,
		ContactBurst:     3,
		AdminUsername:    "admin",
		VisitorRetention: 365 * 24 * time.Hour,
	}
}

// AdminEnabled reports whether admin login can succeed.
func (c *Config) AdminEnabled() bool {
	return c.AdminUsername != "" && c.AdminPassword != ""
}
