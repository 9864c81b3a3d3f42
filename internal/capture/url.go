package capture

import (
	"regexp"
	"strings"
)

// Known browser application names emitted by the desktop environments this
// tool targets. Matching is case-insensitive substring membership.
var browserNames = []string{
	"chrome", "chromium", "firefox", "safari", "edge",
	"brave", "arc", "opera", "vivaldi",
}

// Known code editors and IDEs, used by callers that tag development-context
// notes.
var codeEditorNames = []string{
	"code", "vscode", "cursor", "zed", "sublime",
	"intellij", "goland", "webstorm", "pycharm", "rider",
	"vim", "nvim", "neovim", "emacs", "kate",
}

var (
	httpURLPattern = regexp.MustCompile(`https?://[^\s]+`)

	// well-known developer platform domains that commonly show up in
	// browser window titles without a scheme
	devPlatformPattern = regexp.MustCompile(`(?i)\b(?:[\w-]+\.)?(?:github\.com|gitlab\.com|stackoverflow\.com|bitbucket\.org|npmjs\.com|pkg\.go\.dev|go\.dev|developer\.mozilla\.org)(?:/[^\s]*)?`)

	domainPattern = regexp.MustCompile(`(?i)\b[a-z0-9][a-z0-9-]*(?:\.[a-z0-9-]+)+(?::\d+)?(?:/[^\s]*)?`)

	localPortPattern = regexp.MustCompile(`:\d{4,5}(?:/|$)`)
)

// title separators tried when looking for a trailing domain segment
var titleSeparators = []string{" - ", " | ", " • ", " · ", " — "}

// IsBrowser reports whether appName names a known web browser.
func IsBrowser(appName string) bool {
	return matchesAny(appName, browserNames)
}

// IsCodeEditor reports whether appName names a known code editor or IDE.
func IsCodeEditor(appName string) bool {
	return matchesAny(appName, codeEditorNames)
}

func matchesAny(appName string, names []string) bool {
	lowered := strings.ToLower(appName)
	for _, name := range names {
		if strings.Contains(lowered, name) {
			return true
		}
	}
	return false
}

// ExtractURL attempts to recover the page address from a browser window
// title. Strategies are tried in order: a direct HTTP(S) URL, well-known
// developer-platform domains, the trailing separator segment when it looks
// like a domain, and finally a generic domain pattern. The first plausible
// match wins; when nothing matches the URL is omitted, never guessed.
func ExtractURL(title string) string {
	if match := plausible(httpURLPattern.FindString(title)); match != "" {
		return match
	}

	if match := plausible(devPlatformPattern.FindString(title)); match != "" {
		return match
	}

	for _, sep := range titleSeparators {
		if !strings.Contains(title, sep) {
			continue
		}
		parts := strings.Split(title, sep)
		trailing := strings.TrimSpace(parts[len(parts)-1])
		if domainPattern.MatchString(trailing) {
			if match := plausible(domainPattern.FindString(trailing)); match != "" {
				return match
			}
		}
	}

	return plausible(domainPattern.FindString(title))
}

// plausible trims trailing punctuation and rejects matches too short to be
// a real address.
func plausible(match string) string {
	match = strings.TrimRight(match, ".,;:!?)]}'\"")
	if len(match) <= 3 {
		return ""
	}
	return match
}

// IsDevURL reports whether url points at a local or staging environment:
// localhost, the loopback address, .local and .dev hosts, a 4-5 digit
// port, or a dev./staging. subdomain.
func IsDevURL(url string) bool {
	lowered := strings.ToLower(url)

	for _, marker := range []string{"localhost", "127.0.0.1", ".local"} {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	if localPortPattern.MatchString(lowered) {
		return true
	}
	for _, marker := range []string{".dev", "dev.", "staging."} {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	return false
}
