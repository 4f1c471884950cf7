// Package pmail provides a small personal email utility for Gmail: a mail
// client that builds MIME messages (plain text, HTML, attachments) and sends
// them over an authenticated SMTP session, and a scheduler that fires such
// sends on daily, weekly or fixed-interval triggers from a single polling loop.
//
// Key subpackages:
//
//	github.com/pixelvide/pmail/pkg/mail      - Message model, Mailer interface, SMTP and log drivers
//	github.com/pixelvide/pmail/pkg/schedule  - Job registration and the blocking poll loop
//	github.com/pixelvide/pmail/pkg/config    - Environment configuration
//	github.com/pixelvide/pmail/pkg/cli       - The pmail command
//
// Example Usage:
//
//	package main
//
//	import (
//		"context"
//
//		"github.com/pixelvide/pmail/pkg/config"
//		"github.com/pixelvide/pmail/pkg/mail"
//		"github.com/pixelvide/pmail/pkg/schedule"
//	)
//
//	func main() {
//		cfg, _ := config.Load()
//		mailer, _ := mail.NewMailer(cfg)
//
//		s := schedule.NewScheduler(mailer)
//		s.Daily("09:30", &mail.Message{
//			To:      []string{"me@example.com"},
//			Subject: "Daily digest",
//			Text:    "Good morning.",
//		})
//		s.Run(context.Background())
//	}
package pmail
