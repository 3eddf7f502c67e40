// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"os"
	"testing"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/encoding"
)

// Case is one row of a YAML case table.
//
// Only Name, Input and Want are required. OS, MaxLength and Force are read by
// the tables of functions that take those arguments.
type Case struct {
	Name      string `yaml:"name"`
	Input     string `yaml:"input"`
	Want      string `yaml:"want"`
	OS        string `yaml:"os,omitempty"`
	MaxLength int    `yaml:"maxLength,omitempty"`
	Force     bool   `yaml:"force,omitempty"`
}

// LoadCases reads a YAML file mapping table names to case lists, e.g.
//
//	snake:
//	  - {name: acronym, input: "Lorem IPSUM", want: "lorem_i_p_s_u_m"}
//
// The test fails immediately if the file cannot be read or decoded, or if a
// table is empty.
func LoadCases(t *testing.T, path string) map[string][]Case {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read case file %s: %v", path, err)
	}

	var tables map[string][]Case
	if err := yaml.Unmarshal(data, &tables); err != nil {
		t.Fatalf("Failed to decode case file %s: %v", path, err)
	}
	for name, cases := range tables {
		if len(cases) == 0 {
			t.Fatalf("Case table %q in %s is empty", name, path)
		}
	}

	return tables
}

// Encode encodes text with enc, producing fixture bytes in a legacy or
// non-UTF-8 charset. The test fails if text is not representable in enc.
func Encode(t *testing.T, enc encoding.Encoding, text string) []byte {
	t.Helper()

	data, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		t.Fatalf("Failed to encode fixture %q: %v", text, err)
	}
	return data
}
