package mail

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"strings"

	"github.com/rs/zerolog/log"
)

// Yahoo Mail consumer domains
var yahooDomains = map[string]bool{
	"yahoo.com":      true,
	"ymail.com":      true,
	"rocketmail.com": true,
}

// SendToYahoo sends the message to Yahoo Mail recipients. Every To address is
// normalized (trimmed, domain lowercased) and must belong to a Yahoo Mail
// domain; Cc and Bcc addresses are normalized only. The message itself is
// delivered over the same session path as Send.
func (m *SMTPMailer) SendToYahoo(ctx context.Context, msg *Message) error {
	to, err := normalizeYahooRecipients(msg.To)
	if err != nil {
		return err
	}
	cc, err := normalizeRecipients(msg.Cc)
	if err != nil {
		return err
	}
	bcc, err := normalizeRecipients(msg.Bcc)
	if err != nil {
		return err
	}

	log.Ctx(ctx).Debug().Strs("to", to).Msg("Routing message to Yahoo Mail recipients")

	normalized := *msg
	normalized.To = to
	normalized.Cc = cc
	normalized.Bcc = bcc
	return m.Send(ctx, &normalized)
}

// normalizeAddress trims the raw address, checks it parses, and lowercases the
// domain part. The local part is left untouched.
func normalizeAddress(raw string) (string, error) {
	addr, err := netmail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", errors.Join(ErrInvalidRecipient, fmt.Errorf("recipient %q: %w", raw, err))
	}

	at := strings.LastIndex(addr.Address, "@")
	local, domain := addr.Address[:at], addr.Address[at+1:]
	return local + "@" + strings.ToLower(domain), nil
}

func normalizeRecipients(addrs []string) ([]string, error) {
	if len(addrs) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		normalized, err := normalizeAddress(a)
		if err != nil {
			return nil, err
		}
		out = append(out, normalized)
	}
	return out, nil
}

func normalizeYahooRecipients(addrs []string) ([]string, error) {
	normalized, err := normalizeRecipients(addrs)
	if err != nil {
		return nil, err
	}
	for _, a := range normalized {
		domain := a[strings.LastIndex(a, "@")+1:]
		if !yahooDomains[domain] {
			return nil, errors.Join(ErrInvalidRecipient, fmt.Errorf("%s is not a Yahoo Mail address", a))
		}
	}
	return normalized, nil
}
