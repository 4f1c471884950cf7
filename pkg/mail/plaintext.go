package mail

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// htmlFallback is the plain part used when stripping the markup leaves nothing.
const htmlFallback = "This email contains HTML content. Please view in an HTML-compatible email client."

var (
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

// PlainText derives a plain-text rendering of an HTML body by stripping all
// markup and decoding entities. The result is never empty: markup-only input
// yields a fixed notice instead.
func PlainText(htmlBody string) string {
	policyOnce.Do(func() {
		// StrictPolicy strips all HTML, keeping text content only
		strictPolicy = bluemonday.StrictPolicy()
	})

	text := strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(htmlBody)))
	if text == "" {
		return htmlFallback
	}
	return text
}
