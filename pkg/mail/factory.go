package mail

import (
	"fmt"

	"github.com/pixelvide/pmail/pkg/config"
)

// NewMailer creates a new Mailer based on the configuration
func NewMailer(cfg *config.Config) (Mailer, error) {
	switch cfg.Driver {
	case "smtp":
		return NewSMTPMailer(cfg)
	case "log":
		return NewLogMailer(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported mailer: %s", cfg.Driver)
	}
}
