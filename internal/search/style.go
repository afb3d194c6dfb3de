// Package search implements the three search styles and the line-recovery
// scanner of spec.md section 5.
package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/pwdx/pwdx/internal/keys"
)

// Style selects how queries and the underlying byte stream are transformed
// before matching, per spec.md section 5.1.
type Style int

const (
	// Strict matches queries byte-for-byte against the raw index contents.
	Strict Style = iota
	// CaseInsensitive lowercases both the queries and the stream before
	// matching.
	CaseInsensitive
	// Fuzzy applies the leet-speak character map to both the queries and
	// the stream before matching. Its stream transform preserves byte
	// length only for ASCII input; on non-ASCII shards match offsets can
	// shift, so LinesScanner may reconstruct the wrong line.
	Fuzzy
)

// String renders the style the way it would appear in a flag value or log
// line.
func (s Style) String() string {
	switch s {
	case Strict:
		return "strict"
	case CaseInsensitive:
		return "case-insensitive"
	case Fuzzy:
		return "fuzzy"
	default:
		return fmt.Sprintf("search.Style(%d)", int(s))
	}
}

// ParseStyle parses the --style flag value used by cmd/pwdx-search.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "strict":
		return Strict, nil
	case "case-insensitive", "insensitive", "ci":
		return CaseInsensitive, nil
	case "fuzzy":
		return Fuzzy, nil
	default:
		return 0, fmt.Errorf("search: unknown style %q", s)
	}
}

// TransformQueries rewrites query strings into the form that will actually
// be matched against the (possibly transformed) stream.
func (s Style) TransformQueries(queries []string) []string {
	out := make([]string, len(queries))
	for i, q := range queries {
		switch s {
		case Strict:
			out[i] = q
		case CaseInsensitive:
			out[i] = string(asciiLower([]byte(q)))
		case Fuzzy:
			out[i] = fuzzyString(q)
		default:
			out[i] = q
		}
	}
	return out
}

// TransformReader wraps r so that bytes read from it have already undergone
// the same transform applied to the queries by TransformQueries.
func (s Style) TransformReader(r io.Reader) io.Reader {
	switch s {
	case Strict:
		return r
	case CaseInsensitive:
		return NewManipulatedReader(r, asciiLower)
	case Fuzzy:
		return NewManipulatedReader(r, func(buf []byte) []byte {
			return []byte(fuzzyString(string(buf)))
		})
	default:
		return r
	}
}

// asciiLower lowercases the ASCII letters in buf in place and returns it,
// leaving every other byte untouched. CaseInsensitive relies on this being a
// fixed-length, byte-for-byte transform so that match offsets recovered from
// the transformed stream still point at the same bytes in the raw index
// file; strings.ToLower's Unicode case folding can change a rune's encoded
// length and would break that assumption.
func asciiLower(buf []byte) []byte {
	for i, b := range buf {
		if b >= 'A' && b <= 'Z' {
			buf[i] = b + ('a' - 'A')
		}
	}
	return buf
}

// fuzzyString lowercases ASCII letters and leet-maps s one rune at a time,
// mirroring keys.Normalize's lowercase and leet stages without its NFD
// decomposition, class-marker substitution or punctuation removal: search
// operates over the raw lines stored in the shard files, which may contain
// mixed-case, leet-spelled text the index key derivation folded together,
// and every other rune is kept as it is.
func fuzzyString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(keys.FuzzyMap(r))
	}
	return b.String()
}
