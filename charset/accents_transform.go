package charset

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// RemoveAccents replaces the accented letters of s with their ASCII
// counterparts in a single left-to-right pass. Replacements may be two
// letters long ("ß" → "ss", "Œ" → "OE"). Characters without an entry, and
// bytes that are not valid UTF-8, are copied unchanged.
func RemoveAccents(s string) string {
	if !hasAccent(s) {
		return s
	}
	result, _, _ := transform.String(accentRemover{}, s)
	return result
}

// AccentRemover returns a transformer that applies the RemoveAccents
// substitution to a byte stream:
//
//	r := transform.NewReader(file, charset.AccentRemover())
//
// The transformer is stateless and may be shared.
func AccentRemover() transform.Transformer {
	return accentRemover{}
}

type accentRemover struct {
	transform.NopResetter
}

// Transform implements transform.Transformer.
func (accentRemover) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}

		out := src[nSrc : nSrc+size]
		if repl, ok := lookupAccent(r); ok {
			out = []byte(repl)
		}
		if nDst+len(out) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], out)
		nSrc += size
	}
	return nDst, nSrc, nil
}

func lookupAccent(r rune) (string, bool) {
	if r < minAccent || r > maxAccent {
		return "", false
	}
	repl, ok := accents[r]
	return repl, ok
}

func hasAccent(s string) bool {
	for _, r := range s {
		if _, ok := lookupAccent(r); ok {
			return true
		}
	}
	return false
}
