package search

import (
	"regexp"
	"strings"
)

// lineBreaks matches a run of line breaks, each optionally preceded by
// spaces or tabs.
var lineBreaks = regexp.MustCompile(`([\t ]*(\r?\n|\r))+`)

// trimSet holds the characters RemoveEmptyLines trims from both ends.
const trimSet = " \t\n\r\x00\x0B"

// Contains reports whether needle occurs in haystack.
func Contains(needle, haystack string) bool {
	return strings.Contains(haystack, needle)
}

// StartsWith reports whether s begins with prefix.
func StartsWith(prefix, s string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix.
func EndsWith(suffix, s string) bool {
	return strings.HasSuffix(s, suffix)
}

// ContainsPattern reports whether re matches anywhere in s.
func ContainsPattern(re *regexp.Regexp, s string) bool {
	return re.MatchString(s)
}

// Find returns the text captured by the first group of the leftmost match
// of re in s. It returns false when re does not match, has no capture group,
// or matched without the group participating.
func Find(re *regexp.Regexp, s string) (string, bool) {
	if re.NumSubexp() == 0 {
		return "", false
	}
	loc := re.FindStringSubmatchIndex(s)
	if loc == nil || loc[2] < 0 {
		return "", false
	}
	return s[loc[2]:loc[3]], true
}

// FindAll returns the first-group capture of every successive match of re
// in s. A match in which the group did not participate contributes "".
// The result is empty, never nil, when re has no capture group or no match.
func FindAll(re *regexp.Regexp, s string) []string {
	values := []string{}
	if re.NumSubexp() == 0 {
		return values
	}
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		values = append(values, m[1])
	}
	return values
}

// RemoveEmptyLines replaces every run of line breaks, together with the
// spaces and tabs in front of each break, by a single "\n", then trims
// whitespace and NUL bytes from both ends.
//
// Example: "a  \n\t\r\n\nb \n" -> "a\nb"
func RemoveEmptyLines(text string) string {
	return strings.Trim(lineBreaks.ReplaceAllString(text, "\n"), trimSet)
}
