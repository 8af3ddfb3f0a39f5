// Package textfilter prepares oracle and player text for the terminal.
package textfilter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// CSI and OSC escape sequences
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// PromptSuffix follows the country name in the terminal prompt.
const PromptSuffix = "@hq:~$"

// PromptPrefix renders the terminal prompt for a country: the name
// lower-cased with Turkish rules and whitespace runs replaced by "_".
func PromptPrefix(country string) string {
	// Casers are stateful; one per call.
	lower := cases.Lower(language.Turkish).String(strings.TrimSpace(country))
	return spaceRun.ReplaceAllString(lower, "_") + PromptSuffix
}

// Heading upper-cases a label with Turkish rules, so "Kabine" becomes
// "KABİNE".
func Heading(s string) string {
	return cases.Upper(language.Turkish).String(s)
}

// Sanitize strips escape sequences and control characters from text the
// oracle produced. Newlines and tabs survive; CRLF becomes LF.
func Sanitize(text string) string {
	text = ansiPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return r
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, text)
}
