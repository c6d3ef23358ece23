package format

import (
	"strings"
)

// Digits strips everything but ASCII digits.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Phone formats a phone number for display. Chilean mobile numbers
// (56 9 XXXX XXXX) are grouped as "+56 9 3105 2727"; anything else is
// returned as +digits.
// Example: Phone("56931052727") => "+56 9 3105 2727"
func Phone(raw string) string {
	d := Digits(raw)
	if d == "" {
		return ""
	}
	if len(d) == 11 && strings.HasPrefix(d, "569") {
		return "+56 9 " + d[3:7] + " " + d[7:]
	}
	return "+" + d
}

// TelHref builds a tel: URI.
func TelHref(raw string) string {
	d := Digits(raw)
	if d == "" {
		return ""
	}
	return "tel:+" + d
}
