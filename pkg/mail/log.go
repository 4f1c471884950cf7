package mail

import (
	"context"

	"github.com/pixelvide/pmail/pkg/config"
	"github.com/rs/zerolog/log"
)

// LogMailer implements Mailer by logging messages
type LogMailer struct {
	cfg *config.Config
}

// NewLogMailer creates a new LogMailer
func NewLogMailer(cfg *config.Config) *LogMailer {
	return &LogMailer{cfg: cfg}
}

// Send logs the message details
func (m *LogMailer) Send(ctx context.Context, msg *Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}

	from := msg.From
	if from == "" {
		from = m.cfg.Sender
	}

	logger := log.Ctx(ctx).With().
		Str("mailer", "log").
		Str("from", from).
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Logger()

	if len(msg.Cc) > 0 {
		logger = logger.With().Strs("cc", msg.Cc).Logger()
	}
	if len(msg.Bcc) > 0 {
		logger = logger.With().Strs("bcc", msg.Bcc).Logger()
	}
	if len(msg.Attachments) > 0 {
		logger = logger.With().Strs("attachments", msg.Attachments).Logger()
	}

	logger.Info().Msg("Sending email")

	// The point of the log driver is to see what would go out
	if msg.Text != "" {
		logger.Info().Msgf("Text body:\n%s", msg.Text)
	}
	if msg.HTML != "" {
		logger.Info().Msgf("HTML body:\n%s", msg.HTML)
	}

	return nil
}
