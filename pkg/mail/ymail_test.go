package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "already normalized",
			input:    "user@yahoo.com",
			expected: "user@yahoo.com",
		},
		{
			name:     "domain lowercased",
			input:    "User@YAHOO.COM",
			expected: "User@yahoo.com",
		},
		{
			name:     "whitespace trimmed",
			input:    "  user@ymail.com  ",
			expected: "user@ymail.com",
		},
		{
			name:    "malformed",
			input:   "not-an-address",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeAddress(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRecipient)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestNormalizeYahooRecipients(t *testing.T) {
	got, err := normalizeYahooRecipients([]string{"a@yahoo.com", "B@Ymail.com", " c@rocketmail.com "})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@yahoo.com", "B@ymail.com", "c@rocketmail.com"}, got)

	_, err = normalizeYahooRecipients([]string{"a@yahoo.com", "b@gmail.com"})
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestSendToYahoo_RejectsNonYahooRecipient(t *testing.T) {
	m, err := NewSMTPMailer(testConfig())
	require.NoError(t, err)

	err = m.SendToYahoo(context.Background(), &Message{
		To:      []string{"user@gmail.com"},
		Subject: "Wrong domain",
		Text:    "hi",
	})
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestSendToYahoo_RejectsMalformedRecipient(t *testing.T) {
	m, err := NewSMTPMailer(testConfig())
	require.NoError(t, err)

	err = m.SendToYahoo(context.Background(), &Message{
		To:      []string{"oops <"},
		Subject: "Broken",
		Text:    "hi",
	})
	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestSendToYahoo_NormalizesCcWithoutDomainCheck(t *testing.T) {
	// Cc may be any domain; only To must be Yahoo Mail
	got, err := normalizeRecipients([]string{"Friend@GMAIL.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Friend@gmail.com"}, got)
}
