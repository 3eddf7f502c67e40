// Package charset validates, repairs and decodes text that is expected to be
// UTF-8.
//
// # Validation and Cleanup
//
// [IsUTF8] reports whether a string is well-formed UTF-8. [CleanupUTF8]
// removes every byte sequence that is malformed, overlong, a surrogate, a
// forbidden control byte, or outside the Basic Multilingual Plane. Nothing is
// replaced with U+FFFD; offending bytes are deleted, so the result is always
// valid UTF-8 and CleanupUTF8 is idempotent:
//
//	charset.CleanupUTF8("💳bank") // "bank"
//	charset.CleanupUTF8("漢字")   // "漢字"
//
// # Decoding
//
// [DecodeHexCodePoints] replaces \uXXXX escapes with the character they
// encode. The four hex digits are read as one code unit of a source
// encoding, UTF-16BE unless [WithSourceEncoding] says otherwise. Escapes with
// five or six digits are removed; [WithLogger] reports each one at debug
// level. [LookupEncoding] resolves IANA names such as "UTF-16LE".
//
// [DecodeNonBreakingSpaces] turns "&nbsp;" entities and U+00A0 into plain
// spaces.
//
// # Accents
//
// [RemoveAccents] replaces accented Latin letters and the ligatures æ, œ and ĳ
// using a fixed substitution table ("Straße" → "Strasse"). It does not perform
// Unicode normalization. [AccentRemover] returns the same substitution as a
// golang.org/x/text/transform.Transformer for use on streams.
//
// None of the functions in this package fail on malformed input.
package charset
