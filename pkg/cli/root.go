package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pixelvide/pmail/pkg/config"
	"github.com/pixelvide/pmail/pkg/mail"
	"github.com/pixelvide/pmail/pkg/telemetry"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

// Version is the release version reported by --version.
const Version = "0.1.0"

var (
	to          []string
	cc          []string
	bcc         []string
	subject     string
	body        string
	html        string
	attachments []string
	from        string
	ymail       bool
)

// yahooSender is satisfied by mailers with a Yahoo Mail delivery path.
type yahooSender interface {
	SendToYahoo(ctx context.Context, msg *mail.Message) error
}

var rootCmd = &cobra.Command{
	Use:   "pmail",
	Short: "Send email via Gmail SMTP",
	Long: `pmail sends personal email through a Gmail account over an authenticated
SMTP session, with plain-text and HTML bodies and file attachments.

Configuration comes from the environment (or a .env file): GMAIL_ADDRESS,
GMAIL_PASSWORD, and optionally SMTP_SERVER, SMTP_PORT, DEFAULT_SENDER,
USE_TLS, SMTP_TIMEOUT and MAIL_DRIVER.`,
	Example: `  # Send a plain text email
  pmail -t recipient@example.com -s "Hello" -b "Test message"

  # Send an HTML email with an attachment
  pmail -t recipient@example.com -s "Hello" -b "Plain text" --html "<h1>HTML</h1>" -a report.pdf

  # Send to a Yahoo Mail recipient
  pmail -t friend@yahoo.com -s "Hello" -b "Test" --ymail`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	shutdown, err := telemetry.Setup("pmail")
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer shutdown()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.IsConfigured() {
		return fmt.Errorf("Gmail credentials not configured: set GMAIL_ADDRESS and GMAIL_PASSWORD")
	}

	mailer, err := mail.NewMailer(cfg)
	if err != nil {
		return err
	}

	msg := buildMessage()

	ctx, span := otel.Tracer("pmail/cli").Start(cmd.Context(), "send")
	defer span.End()
	ctx = log.Logger.WithContext(ctx)

	log.Info().
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Int("attachments", len(msg.Attachments)).
		Msg("Sending email")

	// The Yahoo path handles a single recipient; anything else goes the normal way
	if ym, ok := mailer.(yahooSender); ok && ymail && len(msg.To) == 1 {
		err = ym.SendToYahoo(ctx, msg)
	} else {
		err = mailer.Send(ctx, msg)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}

	log.Info().Msg("Email sent successfully")
	return nil
}

func buildMessage() *mail.Message {
	return &mail.Message{
		From:        from,
		To:          to,
		Cc:          cc,
		Bcc:         bcc,
		Subject:     subject,
		Text:        body,
		HTML:        html,
		Attachments: attachments,
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringSliceVarP(&to, "to", "t", nil, "Recipient email address(es)")
	flags.StringVarP(&subject, "subject", "s", "", "Email subject")
	flags.StringVarP(&body, "body", "b", "", "Email body (plain text, optional if --html is provided)")
	flags.StringVar(&html, "html", "", "HTML email body")
	flags.StringSliceVarP(&attachments, "attach", "a", nil, "Attachment file path(s)")
	flags.StringSliceVarP(&cc, "cc", "c", nil, "CC recipient(s)")
	flags.StringSliceVar(&bcc, "bcc", nil, "BCC recipient(s)")
	flags.StringVarP(&from, "from", "f", "", "Sender email address (defaults to DEFAULT_SENDER)")
	flags.BoolVar(&ymail, "ymail", false, "Deliver to a single Yahoo Mail recipient")

	_ = rootCmd.MarkFlagRequired("to")
	_ = rootCmd.MarkFlagRequired("subject")
}

// Execute runs the root command, exiting non-zero on any failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
