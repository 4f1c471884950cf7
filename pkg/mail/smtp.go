package mail

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"net/textproto"
	"os"

	"github.com/pixelvide/pmail/pkg/config"
	"github.com/rs/zerolog/log"
	gomail "gopkg.in/mail.v2"
)

// SMTPMailer implements Mailer over authenticated SMTP
type SMTPMailer struct {
	cfg    *config.Config
	dialer *gomail.Dialer
}

// NewSMTPMailer creates a new SMTPMailer. The configuration is validated up
// front so that missing credentials fail before any network attempt.
func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Address, cfg.Password)
	d.Timeout = cfg.Timeout
	if cfg.UseTLS {
		d.StartTLSPolicy = gomail.MandatoryStartTLS
	} else {
		d.StartTLSPolicy = gomail.NoStartTLS
	}

	return &SMTPMailer{cfg: cfg, dialer: d}, nil
}

// Send builds the MIME message and transmits it over a fresh SMTP session.
// Every call dials, authenticates, sends and closes; sessions are never reused
// and failures are never retried.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	em, err := m.build(msg)
	if err != nil {
		return err
	}

	sc, err := m.dialer.Dial()
	if err != nil {
		return classifyDialError(err)
	}
	defer func() {
		_ = sc.Close()
	}()

	if err := gomail.Send(sc, em); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	log.Ctx(ctx).Info().
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("Email sent")

	return nil
}

// build assembles the MIME message: a plain part always, an HTML alternative
// when given, and one part per attachment.
func (m *SMTPMailer) build(msg *Message) (*gomail.Message, error) {
	if err := validateMessage(msg); err != nil {
		return nil, err
	}

	from := msg.From
	if from == "" {
		from = m.cfg.Sender
	}
	fromAddr, err := netmail.ParseAddress(from)
	if err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", from, err)
	}

	em := gomail.NewMessage()
	em.SetAddressHeader("From", fromAddr.Address, fromAddr.Name)
	em.SetHeader("To", msg.To...)
	if len(msg.Cc) > 0 {
		em.SetHeader("Cc", msg.Cc...)
	}
	if len(msg.Bcc) > 0 {
		em.SetHeader("Bcc", msg.Bcc...)
	}
	em.SetHeader("Subject", msg.Subject)

	text := msg.Text
	if text == "" {
		// HTML-only message: derive the plain part so every client renders something
		text = PlainText(msg.HTML)
	}
	em.SetBody("text/plain", text)
	if msg.HTML != "" {
		em.AddAlternative("text/html", msg.HTML)
	}

	for _, path := range msg.Attachments {
		em.Attach(path)
	}

	return em, nil
}

// validateMessage enforces the message invariants before anything is dialed.
func validateMessage(msg *Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipient
	}
	if msg.Text == "" && msg.HTML == "" {
		return ErrNoBody
	}

	// The underlying library opens attachments only while writing the message,
	// mid-session. Check the paths here so a bad one fails the whole send
	// before anything is transmitted.
	for _, path := range msg.Attachments {
		info, err := os.Stat(path)
		if err != nil {
			return errors.Join(ErrAttachmentNotFound, err)
		}
		if info.IsDir() {
			return errors.Join(ErrAttachmentNotFound, fmt.Errorf("%s is a directory", path))
		}
	}

	return nil
}

// classifyDialError separates credential rejections from transport failures.
// Gmail answers a bad app password with 534 or 535; 530 is the auth-required reply.
func classifyDialError(err error) error {
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return errors.Join(ErrAuthFailed, err)
		}
	}
	return errors.Join(ErrConnectFailed, err)
}
