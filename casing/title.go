package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// trimSet is the set of characters trimmed from both ends of titles and
// file names: space, tab, LF, CR, NUL and vertical tab.
const trimSet = " \t\n\r\x00\x0B"

var titleSeparators = strings.NewReplacer("_", " ", "-", " ")

// ToTitle converts s to a display title.
//
// Underscores and hyphens become spaces and surrounding whitespace is
// trimmed. The first letter of the text and the first letter after ". " are
// uppercased when lowercase. With forceAllWords, a lowercase letter after any
// space is uppercased as well. No other character changes.
//
// Example: "snake_case_notation" -> "Snake case notation"
// Example: "HTTP_Request" -> "HTTP Request"
// Example: "foo v. bar" -> "Foo v. Bar"
func ToTitle(s string, forceAllWords bool) string {
	s = strings.Trim(titleSeparators.Replace(s), trimSet)
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case i == 0 && unicode.IsLower(r):
			b.WriteString(upper.String(s[:size]))
			i += size
			continue
		case r == '.' && strings.HasPrefix(s[i+1:], " "):
			if next, nsize := utf8.DecodeRuneInString(s[i+2:]); unicode.IsLower(next) {
				b.WriteString(". ")
				b.WriteString(upper.String(s[i+2 : i+2+nsize]))
				i += 2 + nsize
				continue
			}
		case r == ' ':
			if next, nsize := utf8.DecodeRuneInString(s[i+1:]); unicode.IsLower(next) {
				b.WriteByte(' ')
				if forceAllWords {
					b.WriteString(upper.String(s[i+1 : i+1+nsize]))
				} else {
					b.WriteString(s[i+1 : i+1+nsize])
				}
				i += 1 + nsize
				continue
			}
		}

		b.WriteString(s[i : i+size])
		i += size
	}

	return b.String()
}
