package format

import (
	"strings"
	"unicode"
)

// Initials extracts an avatar monogram from a full name: the first rune of
// up to the first two whitespace-separated tokens, uppercased. An empty name
// yields "".
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}

	var b strings.Builder
	for _, w := range words {
		for _, r := range w {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// Truncate shortens a string to maxLen runes with a trailing ellipsis.
// Labels often start with emoji icons, so the cut must not split a rune.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
