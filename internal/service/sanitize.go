package service

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// sanitizeText cleans extracted text: invalid UTF-8 and control characters
// other than tab and newline are dropped, line endings become "\n", and the
// result is NFC-normalized. Filter matches in NFC as well.
func sanitizeText(text string) string {
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n':
			b.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			// C0 controls and DEL
		case r >= 0x80 && r <= 0x9F:
			// C1 controls
		default:
			b.WriteRune(r)
		}
	}
	return norm.NFC.String(b.String())
}
