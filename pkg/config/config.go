package config

import (
	"errors"
	"fmt"
	"net/mail"
	"time"
)

var (
	// ErrMissingCredentials indicates GMAIL_ADDRESS or GMAIL_PASSWORD is not set
	ErrMissingCredentials = errors.New("config: GMAIL_ADDRESS and GMAIL_PASSWORD must be set")

	// ErrInvalidAddress indicates a configured address does not parse as an email address
	ErrInvalidAddress = errors.New("config: invalid email address")
)

// Config holds the SMTP settings loaded from the environment.
// Construct it with Load and pass it by pointer; it is not mutated after load.
type Config struct {
	Host     string        `env:"SMTP_SERVER" envDefault:"smtp.gmail.com"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	Address  string        `env:"GMAIL_ADDRESS"`
	Password string        `env:"GMAIL_PASSWORD"`
	Sender   string        `env:"DEFAULT_SENDER"`
	UseTLS   bool          `env:"USE_TLS" envDefault:"true"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
	Driver   string        `env:"MAIL_DRIVER" envDefault:"smtp"`
}

// IsConfigured reports whether the account credentials are present.
func (c *Config) IsConfigured() bool {
	return c.Address != "" && c.Password != ""
}

// Validate checks that the credentials are present and that the account and
// sender addresses parse. It performs no network access.
func (c *Config) Validate() error {
	if !c.IsConfigured() {
		return ErrMissingCredentials
	}

	if _, err := mail.ParseAddress(c.Address); err != nil {
		return fmt.Errorf("%w: GMAIL_ADDRESS %q", ErrInvalidAddress, c.Address)
	}
	if c.Sender != "" {
		if _, err := mail.ParseAddress(c.Sender); err != nil {
			return fmt.Errorf("%w: DEFAULT_SENDER %q", ErrInvalidAddress, c.Sender)
		}
	}

	return nil
}
