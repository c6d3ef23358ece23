package quote

import "strings"

const upperHex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// every UTF-8 byte outside A-Z a-z 0-9 and - _ . ! ~ * ' ( ) becomes %XX, so a
// space is %20 rather than +.
func EncodeComponent(s string) string {
	return encode(s, keepUnreserved)
}

func keepUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func encode(s string, keep func(byte) bool) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !keep(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}
	return b.String()
}
