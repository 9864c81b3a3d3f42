package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "HeadingsStripped",
			input: "# Title\n## Subtitle\nbody",
			want:  "Title\nSubtitle\nbody",
		},
		{
			name:  "ListMarkersStrippedIndentKept",
			input: "- first\n  - nested\n1. numbered\n2) also numbered",
			want:  "first\n  nested\nnumbered\nalso numbered",
		},
		{
			name:  "EmphasisStripped",
			input: "this is **bold** and *italic* and `code` and ~~gone~~",
			want:  "this is bold and italic and code and gone",
		},
		{
			name:  "QuoteMarkersStripped",
			input: "> quoted line\n> another",
			want:  "quoted line\nanother",
		},
		{
			name:  "BlankRunsCollapsed",
			input: "first\n\n\n\nsecond",
			want:  "first\n\nsecond",
		},
		{
			name:  "SurroundingQuotesTrimmed",
			input: `"the whole reply is quoted"`,
			want:  "the whole reply is quoted",
		},
		{
			name:  "CurlyQuotesTrimmed",
			input: "“quoted reply”",
			want:  "quoted reply",
		},
		{
			name:  "InteriorQuotesKept",
			input: `she said "hello" to me`,
			want:  `she said "hello" to me`,
		},
		{
			name:  "AlreadyPlain",
			input: "Plan\n  step one\n  step two",
			want:  "Plan\n  step one\n  step two",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, sanitizePlainText(test.input))
		})
	}
}
