package numerology

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented letters and removes the combining marks,
// so "José" and "JOSE" normalize to the same letter sequence.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName uppercases a name and keeps only the letters A-Z.
func normalizeName(name string) string {
	stripped, _, err := transform.String(stripMarks, name)
	if err != nil {
		// NFD decomposition cannot fail on valid UTF-8; fall back to the raw
		// input so non-accented letters still count.
		stripped = name
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(stripped) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isVowel reports whether an already-normalized letter counts as a vowel.
// Y is treated as a vowel throughout.
func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		return true
	}
	return false
}

// letterValue maps A-Z onto the Pythagorean 1-9 cycle.
func letterValue(c byte) int {
	return int(c-'A')%9 + 1
}
