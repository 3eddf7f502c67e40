package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToCamel converts s to camelCase.
// Example: "name-with-dashes" -> "nameWithDashes"
// Example: "Foo_BAr_Baz" -> "fooBArBaz"
func ToCamel(s string) string {
	return camel(s, false)
}

// ToPascal converts s to PascalCase.
// Example: "świeża Śliwka" -> "ŚwieżaŚliwka"
func ToPascal(s string) string {
	return camel(s, true)
}

// ToSnake converts s to snake_case. Every uppercase letter that does not
// start the text or follow a separator starts a new word.
// Example: "camel4Case" -> "camel4_case"
// Example: "Lorem IPSUM" -> "lorem_i_p_s_u_m"
func ToSnake(s string) string {
	s = insertBoundaries(s)

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	prev := utf8.RuneError
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if i > 0 && prev != '_' && unicode.IsUpper(r) {
			b.WriteByte('_')
		}
		b.WriteString(s[i : i+size])
		prev = r
		i += size
	}

	return cases.Lower(language.Und).String(b.String())
}

// ToKebab converts s to kebab-case.
// Like ToSnake but with hyphens instead of underscores.
func ToKebab(s string) string {
	return strings.ReplaceAll(ToSnake(s), "_", "-")
}

// camel implements ToCamel and ToPascal. After the boundary pass, a '_'
// followed by a letter or digit is replaced by that character in upper case,
// and a leading letter is forced to upper or lower case.
func camel(s string, upperFirst bool) string {
	s = insertBoundaries(s)
	upper := cases.Upper(language.Und)

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r == '_' {
			next, nsize := utf8.DecodeRuneInString(s[i+1:])
			if nsize > 0 && isWordRune(next) {
				b.WriteString(upper.String(s[i+1 : i+1+nsize]))
				i += 1 + nsize
				continue
			}
		}

		if i == 0 && unicode.IsLetter(r) {
			if upperFirst {
				b.WriteString(upper.String(s[:size]))
			} else {
				b.WriteString(cases.Lower(language.Und).String(s[:size]))
			}
			i += size
			continue
		}

		b.WriteString(s[i : i+size])
		i += size
	}

	return b.String()
}

// insertBoundaries replaces each run of non-letter, non-digit characters
// that is directly followed by a letter with a single '_'. Runs followed by
// a digit, or ending the text, are kept as they are.
func insertBoundaries(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isWordRune(r) {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}

		j := i + size
		for j < len(s) {
			r, size := utf8.DecodeRuneInString(s[j:])
			if isWordRune(r) {
				break
			}
			j += size
		}

		if next, _ := utf8.DecodeRuneInString(s[j:]); j < len(s) && unicode.IsLetter(next) {
			b.WriteByte('_')
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}

// isWordRune reports whether r is a letter or a decimal digit.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
