package search

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

const text = "            There are many variations\n" +
	"            \n" +
	"of passages     \n" +
	"available. \n"

func TestContains(t *testing.T) {
	assert.True(t, Contains("passages", text))
	assert.True(t, Contains("", text))
	assert.False(t, Contains("foo", text))
	assert.False(t, Contains("Passages", text), "comparison is case-sensitive")
}

func TestStartsWith(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		s      string
		want   bool
	}{
		{name: "prefix", prefix: "There", s: "There are", want: true},
		{name: "empty text", prefix: "There", s: "", want: false},
		{name: "absent", prefix: "foo", s: "There are", want: false},
		{name: "case-sensitive", prefix: "there", s: "There are", want: false},
		{name: "empty prefix", prefix: "", s: "There are", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StartsWith(tt.prefix, tt.s))
		})
	}
}

func TestEndsWith(t *testing.T) {
	tests := []struct {
		name   string
		suffix string
		s      string
		want   bool
	}{
		{name: "suffix", suffix: "are", s: "There are", want: true},
		{name: "empty text", suffix: "are", s: "", want: false},
		{name: "absent", suffix: "foo", s: "There are", want: false},
		{name: "inner occurrence only", suffix: "The", s: "There are", want: false},
		{name: "repeated suffix", suffix: "ab", s: "abab", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EndsWith(tt.suffix, tt.s))
		})
	}
}

func TestContainsPattern(t *testing.T) {
	assert.True(t, ContainsPattern(regexp.MustCompile(`pass\w+`), text))
	assert.True(t, ContainsPattern(regexp.MustCompile(`(?m)^of`), text))
	assert.False(t, ContainsPattern(regexp.MustCompile(`^of`), text))
}

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
		wantOK  bool
	}{
		{name: "first group", pattern: `many ([a-z]+)`, want: "variations", wantOK: true},
		{name: "no group", pattern: `many [a-z]+`, wantOK: false},
		{name: "no match", pattern: `(foo)`, wantOK: false},
		{name: "group did not participate", pattern: `(foo)?passages`, wantOK: false},
		{name: "empty capture", pattern: `of( ?)passages`, want: " ", wantOK: true},
		{name: "first of two groups", pattern: `(There) (are)`, want: "There", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Find(regexp.MustCompile(tt.pattern), text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{name: "words ending in re", pattern: `(\w*re)\b`, want: []string{"There", "are"}},
		{name: "case-insensitive", pattern: `(?i)(the\w*)`, want: []string{"There"}},
		{name: "no match", pattern: `(foo)`, want: []string{}},
		{name: "no group", pattern: `foo`, want: []string{}},
		{name: "no group but matches", pattern: `are`, want: []string{}},
		{name: "non-participating group", pattern: `(x)?a[nv]`, want: []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindAll(regexp.MustCompile(tt.pattern), text)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemoveEmptyLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "formatted text", input: text, want: "There are many variations\nof passages\navailable."},
		{name: "windows line breaks", input: "a\r\n\r\nb", want: "a\nb"},
		{name: "old mac line breaks", input: "a\r\rb", want: "a\nb"},
		{name: "tabs before break", input: "a\t \n\tb", want: "a\n\tb"},
		{name: "single line", input: "  a b  ", want: "a b"},
		{name: "only breaks", input: "\n\n \n", want: ""},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveEmptyLines(tt.input))
		})
	}
}
