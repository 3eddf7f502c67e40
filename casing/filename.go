package casing

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arturdoruch/stringutil"
	"github.com/arturdoruch/stringutil/internal/options"
)

// OS identifies the platform whose file name rules ToFilename applies.
type OS string

// Supported platforms.
const (
	Windows OS = "windows"
	Unix    OS = "unix"
	Mac     OS = "mac"
)

var (
	// reservedName matches Windows device names, which are invalid file
	// names irrespective of case.
	reservedName = regexp.MustCompile(`(?i)^(AUX|CON|COM[1-9]|LPT[1-9]|NUL|PRN)$`)

	multiSpace = regexp.MustCompile(` {2,}`)
)

// windowsForbidden lists the printable characters Windows rejects in file names.
const windowsForbidden = `/\*:?"<>|`

// ParseOS returns the OS named by name ("windows", "unix" or "mac").
// Any other name yields a *strerrors.InvalidArgumentError.
func ParseOS(name string) (OS, error) {
	if err := options.ValidateOneOf("os", name, string(Windows), string(Unix), string(Mac)); err != nil {
		return "", err
	}
	return OS(name), nil
}

// FilenameOption configures ToFilename.
type FilenameOption func(*filenameConfig) error

type filenameConfig struct {
	maxLength int
	logger    stringutil.Logger
}

// WithMaxLength truncates the file name to at most n characters (not bytes).
// n must be positive.
func WithMaxLength(n int) FilenameOption {
	return func(cfg *filenameConfig) error {
		if err := options.ValidatePositive("maxLength", n); err != nil {
			return err
		}
		cfg.maxLength = n
		return nil
	}
}

// WithLogger sets a logger that receives debug entries when a reserved
// device name is cleared or the name is truncated.
func WithLogger(l stringutil.Logger) FilenameOption {
	return func(cfg *filenameConfig) error {
		cfg.logger = stringutil.OrNop(l)
		return nil
	}
}

// ToFilename removes from s the characters that target does not permit in a
// file or directory name.
//
//   - Windows: / \ * : ? " < > |, bytes 0x00-0x1F and the trailing run of
//     dots are removed. A name that then equals a reserved device name (AUX,
//     CON, COM1-COM9, LPT1-LPT9, NUL, PRN), in any case, becomes empty.
//   - Unix: / and NUL are removed.
//   - Mac: : is removed.
//
// The reserved name check sees the stripped name before trimming, so " aux"
// yields "aux". Runs of spaces are then collapsed, the name is truncated according to
// WithMaxLength and surrounding whitespace is trimmed. An unsupported target
// or an invalid option yields a *strerrors.InvalidArgumentError.
func ToFilename(s string, target OS, opts ...FilenameOption) (string, error) {
	if _, err := ParseOS(string(target)); err != nil {
		return "", err
	}

	cfg := &filenameConfig{logger: stringutil.NopLogger{}}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return "", err
		}
	}

	switch target {
	case Windows:
		s = stripWindows(s)
		if reservedName.MatchString(s) {
			cfg.logger.Debug("casing: cleared reserved device name", "name", s)
			s = ""
		}
	case Unix:
		s = removeBytes(s, func(c byte) bool { return c == '/' || c == 0 })
	case Mac:
		s = removeBytes(s, func(c byte) bool { return c == ':' })
	}

	s = multiSpace.ReplaceAllString(s, " ")
	if cfg.maxLength > 0 {
		if truncated := truncate(s, cfg.maxLength); len(truncated) < len(s) {
			cfg.logger.Debug("casing: truncated file name", "name", s, "maxLength", cfg.maxLength)
			s = truncated
		}
	}

	return strings.Trim(s, trimSet), nil
}

// stripWindows removes characters forbidden by Windows. The trailing dots
// are those ending s, or preceding a final newline.
func stripWindows(s string) string {
	dotsEnd := len(s)
	if dotsEnd > 0 && s[dotsEnd-1] == '\n' {
		dotsEnd--
	}
	dotsStart := dotsEnd
	for dotsStart > 0 && s[dotsStart-1] == '.' {
		dotsStart--
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i >= dotsStart && i < dotsEnd {
			continue
		}
		if c < 0x20 || strings.IndexByte(windowsForbidden, c) >= 0 {
			continue
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// removeBytes returns s without the bytes for which drop reports true.
// drop must only match ASCII bytes so multi-byte characters stay intact.
func removeBytes(s string, drop func(byte) bool) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if !drop(s[i]) {
			buf = append(buf, s[i])
		}
	}
	return string(buf)
}

// truncate returns the first n characters of s. Bytes that are not valid
// UTF-8 count as one character each.
func truncate(s string, n int) string {
	for i := 0; i < len(s); n-- {
		if n == 0 {
			return s[:i]
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s
}
