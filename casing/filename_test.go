package casing

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arturdoruch/stringutil"
	"github.com/arturdoruch/stringutil/internal/testutil"
	"github.com/arturdoruch/stringutil/strerrors"
)

func TestToFilename(t *testing.T) {
	for _, tt := range testutil.LoadCases(t, casesFile)["filename"] {
		t.Run(tt.Name, func(t *testing.T) {
			var opts []FilenameOption
			if tt.MaxLength > 0 {
				opts = append(opts, WithMaxLength(tt.MaxLength))
			}

			got, err := ToFilename(tt.Input, OS(tt.OS), opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.Want, got)
		})
	}
}

func TestToFilename_ControlBytes(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target OS
		want   string
	}{
		{name: "windows control bytes", input: "\x07\x1F", target: Windows, want: ""},
		{name: "windows tab removed", input: "a\tb", target: Windows, want: "ab"},
		{name: "windows dots before final newline", input: "dot.\n", target: Windows, want: "dot"},
		{name: "windows dots before other control byte kept", input: "a.\x01", target: Windows, want: "a."},
		{name: "windows delete byte kept", input: "a\x7Fb", target: Windows, want: "a\x7Fb"},
		{name: "unix slash and nul", input: "/\x00", target: Unix, want: ""},
		{name: "unix control bytes kept inside", input: "a\x01b", target: Unix, want: "a\x01b"},
		{name: "mac trims whitespace", input: " \x00name\x0B ", target: Mac, want: "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToFilename(tt.input, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToFilename_InvalidOS(t *testing.T) {
	_, err := ToFilename("name", OS("beos"))
	require.Error(t, err)
	assert.ErrorIs(t, err, strerrors.ErrInvalidArgument)

	var argErr *strerrors.InvalidArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "os", argErr.Argument)
	assert.Equal(t, []string{"windows", "unix", "mac"}, argErr.Allowed)
	assert.Contains(t, err.Error(), `"beos"`)
}

func TestToFilename_InvalidMaxLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := ToFilename("name", Unix, WithMaxLength(n))
		require.Error(t, err, "WithMaxLength(%d)", n)
		assert.ErrorIs(t, err, strerrors.ErrInvalidArgument)

		var argErr *strerrors.InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		assert.Equal(t, "maxLength", argErr.Argument)
	}
}

func TestToFilename_MaxLengthLongerThanName(t *testing.T) {
	got, err := ToFilename("short", Windows, WithMaxLength(100))
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestToFilename_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := stringutil.NewSlogAdapter(slog.New(handler))

	got, err := ToFilename("prn", Windows, WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "cleared reserved device name")

	buf.Reset()
	got, err = ToFilename("abcdef", Unix, WithLogger(logger), WithMaxLength(3))
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Contains(t, buf.String(), "truncated file name")
}

func TestToFilename_NilLogger(t *testing.T) {
	got, err := ToFilename("aux", Windows, WithLogger(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseOS(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    OS
		wantErr bool
	}{
		{name: "windows", input: "windows", want: Windows},
		{name: "unix", input: "unix", want: Unix},
		{name: "mac", input: "mac", want: Mac},
		{name: "case sensitive", input: "Windows", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOS(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, strerrors.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{name: "ascii", input: "abcdef", n: 3, want: "abc"},
		{name: "multibyte", input: "żółw", n: 2, want: "żó"},
		{name: "invalid byte counts once", input: "\xFFab", n: 2, want: "\xFFa"},
		{name: "shorter than limit", input: "ab", n: 5, want: "ab"},
		{name: "exact", input: "ab", n: 2, want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.input, tt.n))
		})
	}
}
