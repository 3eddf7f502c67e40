package charset

import (
	"bytes"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/arturdoruch/stringutil"
	"github.com/arturdoruch/stringutil/strerrors"
)

// hexEscape matches a literal \u followed by four to six hex digits.
var hexEscape = regexp.MustCompile(`\\u([0-9a-fA-F]{4,6})`)

// DefaultSourceEncoding is the code unit encoding DecodeHexCodePoints assumes
// when no WithSourceEncoding option is given.
var DefaultSourceEncoding encoding.Encoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// DecodeOption configures DecodeHexCodePoints.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	source encoding.Encoding
	logger stringutil.Logger
}

// WithSourceEncoding sets the encoding the escaped code units are decoded
// from. A nil encoding leaves the default in place.
func WithSourceEncoding(enc encoding.Encoding) DecodeOption {
	return func(cfg *decodeConfig) {
		if enc != nil {
			cfg.source = enc
		}
	}
}

// WithLogger sets a logger that receives a debug entry for every dropped escape.
func WithLogger(l stringutil.Logger) DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.logger = stringutil.OrNop(l)
	}
}

// DecodeHexCodePoints replaces \uXXXX escapes in s with the UTF-8 encoding of
// the character they denote.
//
// The four hex digits are packed into two bytes and decoded from the source
// encoding (UTF-16BE by default). An escape carrying five or six hex digits
// is deleted, as is one that the source encoding cannot decode, such as a
// UTF-16 surrogate. Each escape is decoded on its own, so both halves of a
// surrogate pair are deleted as well.
//
//	DecodeHexCodePoints(`\u20AC`)  // "€"
//	DecodeHexCodePoints(`\u100A0`) // ""
func DecodeHexCodePoints(s string, opts ...DecodeOption) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	cfg := decodeConfig{
		source: DefaultSourceEncoding,
		logger: stringutil.NopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dec := cfg.source.NewDecoder()
	return hexEscape.ReplaceAllStringFunc(s, func(escape string) string {
		digits := escape[2:]
		if len(digits) > 4 {
			cfg.logger.Debug("charset: dropped escape wider than 16 bits", "escape", escape)
			return ""
		}

		unit, err := hex.DecodeString(digits)
		if err != nil {
			return ""
		}
		decoded, err := dec.Bytes(unit)
		if err != nil {
			cfg.logger.Debug("charset: dropped undecodable escape", "escape", escape, "error", err)
			return ""
		}
		if bytes.ContainsRune(decoded, utf8.RuneError) && !strings.EqualFold(digits, "fffd") {
			cfg.logger.Debug("charset: dropped undecodable escape", "escape", escape)
			return ""
		}
		return string(decoded)
	})
}

// LookupEncoding returns the encoding registered under an IANA name or alias,
// such as "UTF-16BE", "ISO-8859-2" or "windows-1250". The UCS-2 names used by
// PHP and iconv ("UCS-2", "UCS-2BE", "UCS-2LE") map to the UTF-16 encoding of
// the same byte order.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "UCS-2", "UCS-2BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "UCS-2LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &strerrors.InvalidArgumentError{
			Argument: "encoding",
			Value:    name,
			Message:  "unsupported encoding",
			Cause:    err,
		}
	}
	return enc, nil
}
