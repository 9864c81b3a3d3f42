package ai

import (
	"regexp"
	"strings"
)

var (
	headingMarker    = regexp.MustCompile(`(?m)^[ \t]*#{1,6}[ \t]*`)
	listMarker       = regexp.MustCompile(`(?m)^([ \t]*)(?:[-*+]|\d+[.)])[ \t]+`)
	quoteMarker      = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	emphasisMarker   = regexp.MustCompile("[*_`~]+")
	repeatedBlankRun = regexp.MustCompile(`\n{3,}`)
)

// sanitizePlainText strips residual Markdown the provider may still emit
// despite being asked for plain hierarchical text: heading, list, quote,
// and emphasis markers. List indentation is preserved so the hierarchy
// survives. Repeated blank lines collapse to one and surrounding quotes
// are trimmed.
func sanitizePlainText(s string) string {
	s = headingMarker.ReplaceAllString(s, "")
	s = quoteMarker.ReplaceAllString(s, "")
	s = listMarker.ReplaceAllString(s, "$1")
	s = emphasisMarker.ReplaceAllString(s, "")
	s = repeatedBlankRun.ReplaceAllString(s, "\n\n")
	s = strings.TrimSpace(s)
	s = trimSurroundingQuotes(s)

	return s
}

func trimSurroundingQuotes(s string) string {
	for _, pair := range [][2]string{{`"`, `"`}, {`'`, `'`}, {"“", "”"}, {"‘", "’"}} {
		if len(s) >= len(pair[0])+len(pair[1]) &&
			strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) {
			return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, pair[0]), pair[1]))
		}
	}

	return s
}
