package keys

// Class classifies a Unicode scalar value for the purposes of key
// derivation. Every rune in a normalized line collapses to exactly one of
// these classes before it either survives into the normalized item (as
// itself, for Alphanumeric, or as a class marker digit, for the CJKA
// scripts) or is dropped.
type Class int

const (
	// ClassAlphanumeric holds an ASCII letter or digit; the rune itself is
	// kept.
	ClassAlphanumeric Class = iota
	// ClassPunctuation covers whitespace, control characters, ASCII
	// punctuation, and the extra separators '-', '_', '(', ')'. Dropped.
	ClassPunctuation
	// ClassArabic, ClassChinese, ClassJapanese and ClassKorean each
	// substitute to a single class-marker digit (4, 1, 2, 3 respectively).
	ClassArabic
	ClassChinese
	ClassJapanese
	ClassKorean
	// ClassUnclassified is any scalar not covered above. Dropped.
	ClassUnclassified
)

// classMarker maps a CJKA class to its path-safe substitution digit, per
// the filename grammar in spec.md section 6.
var classMarker = map[Class]rune{
	ClassChinese:  '1',
	ClassJapanese: '2',
	ClassKorean:   '3',
	ClassArabic:   '4',
}

// Classify returns the Class of r.
//
// Order matters: ASCII alphanumerics are checked first, then the
// punctuation/whitespace/control set (including the extra separators), and
// only then the CJKA Unicode ranges. Anything left over is unclassified.
func Classify(r rune) Class {
	switch {
	case isASCIIAlphanumeric(r):
		return ClassAlphanumeric
	case isDroppedPunctuation(r):
		return ClassPunctuation
	default:
		return classifyScript(r)
	}
}

func isASCIIAlphanumeric(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDroppedPunctuation(r rune) bool {
	if isWhitespace(r) || isControl(r) || isASCIIPunctuation(r) {
		return true
	}
	switch r {
	case '-', '_', '(', ')':
		return true
	}
	return false
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xA0:
		return true
	}
	return false
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}

func isASCIIPunctuation(r rune) bool {
	switch {
	case r >= '!' && r <= '/':
		return true
	case r >= ':' && r <= '@':
		return true
	case r >= '[' && r <= '`':
		return true
	case r >= '{' && r <= '~':
		return true
	}
	return false
}

// classifyScript recognises the CJKA Unicode ranges in spec.md section 6.
// Ranges are listed in priority order: Chinese, Japanese, Korean, Arabic.
// Shared Chinese/Japanese ranges (CJK Unified
// Ideographs, CJK Compatibility Ideographs) are attributed to Chinese, as
// in the original classifier.
func classifyScript(r rune) Class {
	switch {
	case inAnyRange(r, chineseRanges):
		return ClassChinese
	case inAnyRange(r, japaneseRanges):
		return ClassJapanese
	case inAnyRange(r, koreanRanges):
		return ClassKorean
	case inAnyRange(r, arabicRanges):
		return ClassArabic
	default:
		return ClassUnclassified
	}
}

type runeRange struct {
	lo, hi rune
}

func inAnyRange(r rune, ranges []runeRange) bool {
	for _, rr := range ranges {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

var chineseRanges = []runeRange{
	{0x4E00, 0x9FFF},
	{0x3400, 0x4DBF},
	{0x20000, 0x2A6DF},
	{0x2A700, 0x2B73F},
	{0x2B740, 0x2B81F},
	{0x2B820, 0x2CEAF},
	{0x2CEB0, 0x2EBEF},
	{0x30000, 0x3134F},
	{0xF900, 0xFAFF},
	{0x2F800, 0x2FA1F},
}

var japaneseRanges = []runeRange{
	{0x3040, 0x309F}, // Hiragana
	{0x30A0, 0x30FF}, // Katakana
	{0x31F0, 0x31FF}, // Katakana Phonetic Extensions
	{0xFF00, 0xFFEF}, // Halfwidth and Fullwidth Forms
}

var koreanRanges = []runeRange{
	{0xAC00, 0xD7AF}, // Hangul Syllables
	{0x1100, 0x11FF}, // Hangul Jamo
	{0x3130, 0x318F}, // Hangul Compatibility Jamo
	{0xA960, 0xA97F}, // Hangul Jamo Extended-A
	{0xD7B0, 0xD7FF}, // Hangul Jamo Extended-B
}

var arabicRanges = []runeRange{
	{0x0600, 0x06FF},
	{0x0750, 0x077F},
	{0x08A0, 0x08FF},
	{0xFB50, 0xFDFF},
	{0xFE70, 0xFEFF},
	{0x1EE00, 0x1EEFF},
}

// Substitute returns the rune that survives normalization for r, and
// whether r survives at all. Alphanumeric runes survive as themselves; the
// four script classes survive as their marker digit; everything else is
// dropped.
func Substitute(r rune) (rune, bool) {
	class := Classify(r)
	switch class {
	case ClassAlphanumeric:
		return r, true
	case ClassChinese, ClassJapanese, ClassKorean, ClassArabic:
		return classMarker[class], true
	default:
		return 0, false
	}
}
