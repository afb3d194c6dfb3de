package keys

import (
	"sync"

	"github.com/coregx/ahocorasick"

	"github.com/pwdx/pwdx/internal/keys/wordlist"
	"github.com/pwdx/pwdx/internal/pwdxcfg"
)

// commonWordAutomaton is built once, from the packaged word list, and
// reused for every normalized item: compile the Aho-Corasick automaton
// once and reuse it across concurrent searches.
var commonWordAutomaton = sync.OnceValue(buildCommonWordAutomaton)

func buildCommonWordAutomaton() *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	for _, word := range wordlist.Words {
		pattern := commonWordPattern(word, pwdxcfg.CommonWordPrefixLength)
		if pattern == "" {
			continue
		}
		builder.AddPattern([]byte(pattern))
	}

	automaton, err := builder.Build()
	if err != nil {
		// The packaged word list is a build-time artifact; a failure here
		// means the artifact itself is broken, which is a programmer error,
		// not a runtime condition callers can recover from.
		panic("pwdx: failed to build common-word automaton: " + err.Error())
	}
	return automaton
}

// commonWordPattern truncates word to its first length bytes, or drops it
// if it is shorter than length, per spec.md section 4.1's common-word key
// rule ("every word whose length >= L").
func commonWordPattern(word string, length int) string {
	if len(word) < length {
		return ""
	}
	return word[:length]
}

// commonWordMatch is one match of the common-word automaton against the
// normalized item, in the same shape as ahocorasick.Automaton's own Match.
type commonWordMatch struct {
	Start, End int
}

// findCommonWordMatches runs the shared common-word automaton over item
// and returns every non-overlapping, leftmost-first match in order. The
// automaton only exposes a single-match Find(haystack, at); this loop
// advances past each match to recover the full ordered sequence, the same
// technique internal/search uses for LinesScanner.
func findCommonWordMatches(item string) []commonWordMatch {
	automaton := commonWordAutomaton()
	haystack := []byte(item)

	var matches []commonWordMatch
	at := 0
	for at <= len(haystack) {
		match := automaton.Find(haystack, at)
		if match == nil {
			break
		}
		matches = append(matches, commonWordMatch{Start: match.Start, End: match.End})
		if match.End > at {
			at = match.End
		} else {
			at++
		}
	}
	return matches
}
