package core

import (
	"strings"
	"unicode"
)

// CleanText normalizes extracted content before persistence.
// It removes control characters, replaces exotic Unicode whitespace and line
// terminators with their plain equivalents, and escapes a leading colon so
// titles never collide with the store's key syntax.
func CleanText(text string) string {
	text = removeNonPrintable(text)

	// Escape the first colon if it appears before the first space.
	firstSpace := strings.IndexByte(text, ' ')
	colon := strings.IndexByte(text, ':')
	if colon != -1 && (firstSpace == -1 || colon < firstSpace) {
		text = strings.Replace(text, ":", `\:`, 1)
	}

	return text
}

func removeNonPrintable(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 0x2000 && r <= 0x200B, r == 0x202F, r == 0x205F, r == 0x3000, r == 0x00A0:
			// Unicode whitespace variants become a regular space.
			b.WriteRune(' ')
		case r == 0x2028, r == 0x2029, r == '\r':
			// Unusual line terminators become a single newline.
			b.WriteRune('\n')
		case unicode.IsControl(r) && r != '\n' && r != '\t':
			// Drop control characters except newlines and tabs.
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
