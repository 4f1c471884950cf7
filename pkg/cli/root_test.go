package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMessage(t *testing.T) {
	// Save original values
	origTo, origCc, origBcc := to, cc, bcc
	origSubject, origBody, origHTML := subject, body, html
	origAttachments, origFrom := attachments, from
	defer func() {
		// Restore original values
		to, cc, bcc = origTo, origCc, origBcc
		subject, body, html = origSubject, origBody, origHTML
		attachments, from = origAttachments, origFrom
	}()

	to = []string{"a@example.com", "b@example.com"}
	cc = []string{"c@example.com"}
	bcc = []string{"d@example.com"}
	subject = "Quarterly report"
	body = "Numbers attached"
	html = "<p>Numbers attached</p>"
	attachments = []string{"report.pdf"}
	from = "robot@gmail.com"

	msg := buildMessage()

	assert.Equal(t, []string{"a@example.com", "b@example.com"}, msg.To)
	assert.Equal(t, []string{"c@example.com"}, msg.Cc)
	assert.Equal(t, []string{"d@example.com"}, msg.Bcc)
	assert.Equal(t, "Quarterly report", msg.Subject)
	assert.Equal(t, "Numbers attached", msg.Text)
	assert.Equal(t, "<p>Numbers attached</p>", msg.HTML)
	assert.Equal(t, []string{"report.pdf"}, msg.Attachments)
	assert.Equal(t, "robot@gmail.com", msg.From)
}

func TestFlagSurface(t *testing.T) {
	for _, name := range []string{"to", "subject", "body", "html", "attach", "cc", "bcc", "from", "ymail"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "missing flag %s", name)
	}

	// The whole surface hangs off the root command
	assert.Empty(t, rootCmd.Commands())
	assert.Equal(t, Version, rootCmd.Version)
}
