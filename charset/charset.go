package charset

import (
	"strings"
	"unicode/utf8"
)

var nbspReplacer = strings.NewReplacer("&nbsp;", " ", "\u00a0", " ")

// IsUTF8 reports whether s consists entirely of well-formed UTF-8.
func IsUTF8(s string) bool {
	return utf8.ValidString(s)
}

// IsUTF8Bytes reports whether b consists entirely of well-formed UTF-8.
func IsUTF8Bytes(b []byte) bool {
	return utf8.Valid(b)
}

// DecodeNonBreakingSpaces replaces every "&nbsp;" entity and every U+00A0
// character with an ASCII space.
func DecodeNonBreakingSpaces(s string) string {
	return nbspReplacer.Replace(s)
}
