package security

import (
	"regexp"
	"strings"
)

var (
	dangerousChars  = regexp.MustCompile(`[<>"']`)
	jsScheme        = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerSet = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// Sanitize strips characters and patterns usable for script injection from
// free-text input. It is lossy: offending substrings are deleted, not
// escaped. Applied to every free-text field before persistence.
func Sanitize(text string) string {
	if text == "" {
		return text
	}

	text = dangerousChars.ReplaceAllString(text, "")
	text = jsScheme.ReplaceAllString(text, "")
	text = eventHandlerSet.ReplaceAllString(text, "")

	return strings.TrimSpace(text)
}

// SanitizePtr applies Sanitize through an optional field.
func SanitizePtr(text *string) *string {
	if text == nil {
		return nil
	}
	clean := Sanitize(*text)
	return &clean
}
