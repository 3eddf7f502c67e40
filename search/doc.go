// Package search provides literal and pattern substring helpers.
//
// [Contains], [StartsWith] and [EndsWith] are case-sensitive literal tests.
// [ContainsPattern], [Find] and [FindAll] take a compiled *regexp.Regexp and
// report the first capture group of each match:
//
//	re := regexp.MustCompile(`many ([a-z]+)`)
//	word, ok := search.Find(re, "There are many variations") // "variations", true
//
// Patterns use Go's RE2 syntax, so lookahead and lookbehind are not
// available. [FindAll] never returns nil; a pattern without a capture group
// simply yields no values.
//
// [RemoveEmptyLines] collapses blank lines and trailing line whitespace in
// formatted text.
package search
