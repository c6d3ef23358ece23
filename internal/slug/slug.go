// Package slug derives the URL path segments used to address catalog machines.
//
// Make is the single slug implementation shared by routing, the sitemap and
// catalog lookups. Its output must stay byte-compatible with links already
// published on julmar.cl, so the rules follow the browser regexps those
// links were generated with: whitespace is the ECMAScript \s class and word
// characters are ASCII only, which means accented letters are dropped rather
// than transliterated ("Camión" becomes "camin").
package slug

import (
	"regexp"
	"strings"
)

var (
	spaceRuns  = regexp.MustCompile(`[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]+`)
	nonWord    = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	hyphenRuns = regexp.MustCompile(`-{2,}`)
)

// Make converts text into its canonical slug. It never fails; empty or
// symbol-only input yields an empty slug.
func Make(text string) string {
	s := strings.ToLower(text)
	s = strings.TrimFunc(s, isSpace)
	s = spaceRuns.ReplaceAllString(s, "-")
	s = nonWord.ReplaceAllString(s, "")
	return hyphenRuns.ReplaceAllString(s, "-")
}

// Valid reports whether s is already in canonical form.
func Valid(s string) bool {
	return s != "" && Make(s) == s
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ',
		'\u00a0', '\u1680', '\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}
