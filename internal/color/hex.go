package color

const upperDigits = "0123456789ABCDEF"

// Nibble returns the value of one hex digit.
func Nibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// DecodePair reads two hex digits starting at s[i].
// It reports false if either byte is not a hex digit.
func DecodePair(s string, i int) (uint8, bool) {
	hi, ok := Nibble(s[i])
	if !ok {
		return 0, false
	}
	lo, ok := Nibble(s[i+1])
	if !ok {
		return 0, false
	}
	return hi<<4 | lo, true
}

// AppendPair appends v as two uppercase hex digits.
func AppendPair(dst []byte, v uint8) []byte {
	return append(dst, upperDigits[v>>4], upperDigits[v&0x0F])
}
