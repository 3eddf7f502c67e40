package charset

// CleanupUTF8 deletes the byte sequences of s that are not legally encoded
// UTF-8 in the range U+0000 to U+FFFF.
//
// Removed are: control bytes 0x00-0x08, 0x0B, 0x0C, 0x0E-0x19 and 0x7F; an
// ASCII byte directly followed by continuation bytes, together with them;
// leads 0xC0, 0xC1 and 0xF0-0xFF with their continuation bytes; two- and
// three-byte leads that are not followed by exactly one or two continuation
// bytes, together with whatever continuation bytes follow; overlong and
// surrogate three-byte forms; and continuation bytes without a lead.
// Everything else is copied unchanged.
func CleanupUTF8(s string) string {
	i := 0
	for i < len(s) {
		n, keep := scanUnit(s, i)
		if !keep {
			break
		}
		i += n
	}
	if i == len(s) {
		return s
	}

	buf := make([]byte, 0, len(s))
	buf = append(buf, s[:i]...)
	for i < len(s) {
		n, keep := scanUnit(s, i)
		if keep {
			buf = append(buf, s[i:i+n]...)
		}
		i += n
	}
	return string(buf)
}

// CleanupUTF8Bytes is like CleanupUTF8 but operates on a byte slice.
// The input is not modified.
func CleanupUTF8Bytes(b []byte) []byte {
	return []byte(CleanupUTF8(string(b)))
}

// scanUnit classifies the byte sequence starting at s[i]. It returns the
// length of the sequence and whether it is kept. n is always at least 1.
func scanUnit(s string, i int) (n int, keep bool) {
	b := s[i]
	switch {
	case isForbiddenControl(b):
		return 1, false
	case b < 0x80:
		if c := continuations(s, i+1); c > 0 {
			return 1 + c, false
		}
		return 1, true
	case b < 0xC0:
		// continuation byte without a lead
		return 1, false
	case b == 0xC0 || b == 0xC1 || b >= 0xF0:
		return 1 + continuations(s, i+1), false
	case b < 0xE0:
		c := continuations(s, i+1)
		if c == 1 {
			return 2, true
		}
		if c == 0 {
			return 1, false
		}
		return 1 + c, false
	default:
		c := continuations(s, i+1)
		if c != 2 {
			return 1 + c, false
		}
		second := s[i+1]
		if (b == 0xE0 && second < 0xA0) || (b == 0xED && second >= 0xA0) {
			return 3, false
		}
		return 3, true
	}
}

// continuations counts the continuation bytes (0x80-0xBF) starting at s[j].
func continuations(s string, j int) int {
	n := 0
	for j+n < len(s) && s[j+n]&0xC0 == 0x80 {
		n++
	}
	return n
}

func isForbiddenControl(b byte) bool {
	return b <= 0x08 || b == 0x0B || b == 0x0C || (b >= 0x0E && b <= 0x19) || b == 0x7F
}
