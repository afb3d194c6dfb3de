package keys

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// combiningMarkLo and combiningMarkHi bound the "Combining Diacritical
// Marks" block stripped after NFD decomposition, per spec.md section 4.1
// step 2.
const (
	combiningMarkLo = 0x0300
	combiningMarkHi = 0x036F
)

// Normalize runs the fixed, ordered normalization pipeline of spec.md
// section 4.1 over a raw line and returns the normalized item: a string
// drawn only from ASCII letters, digits, and the CJKA class-marker digits
// '1'..'4'.
//
// The steps, in order, are:
//  1. interpret line as UTF-8, replacing invalid sequences lossily with
//     U+FFFD;
//  2. Unicode NFD-decompose and drop combining marks in U+0300..U+036F;
//  3. lowercase ASCII letters;
//  4. leet-map per the fixed table;
//  5. classify each surviving rune and either keep it, substitute its class
//     marker, or drop it.
func Normalize(line []byte) string {
	lossy := strings.ToValidUTF8(string(line), string(utf8.RuneError))
	decomposed := norm.NFD.String(lossy)

	var b strings.Builder
	b.Grow(len(decomposed))

	for _, r := range decomposed {
		if r >= combiningMarkLo && r <= combiningMarkHi {
			continue
		}
		r = lowerASCII(r)
		r = FuzzyMap(r)
		if kept, ok := Substitute(r); ok {
			b.WriteRune(kept)
		}
	}

	return b.String()
}

func lowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
