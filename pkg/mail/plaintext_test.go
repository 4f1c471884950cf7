package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "tags stripped",
			html:     "<p>Hello <b>there</b></p>",
			expected: "Hello there",
		},
		{
			name:     "entities decoded",
			html:     "<p>Q3 &amp; Q4 results &gt; expectations</p>",
			expected: "Q3 & Q4 results > expectations",
		},
		{
			name:     "surrounding whitespace trimmed",
			html:     "  <div>\n<span>body</span>\n</div>  ",
			expected: "body",
		},
		{
			name:     "markup only falls back to notice",
			html:     "<div><img src=\"cid:logo\"/></div>",
			expected: htmlFallback,
		},
		{
			name:     "empty input falls back to notice",
			html:     "",
			expected: htmlFallback,
		},
		{
			name:     "script content dropped",
			html:     "<script>alert(1)</script><p>safe</p>",
			expected: "safe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PlainText(tt.html))
		})
	}
}
