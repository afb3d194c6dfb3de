// Package keys implements the key-derivation pipeline of spec.md section
// 4.1: Unicode normalization, the leet-map and character-class
// substitution, and the positional plus common-word key emission that
// shards a line.
package keys

import "github.com/pwdx/pwdx/internal/pwdxcfg"

// KeyIterator produces the finite, deduplicated, ordered sequence of keys
// for a single normalized item: positional keys first (offsets 0..Depth-1),
// then common-word keys in automaton match order. It is a single-pass,
// not-restartable iterator, per spec.md section 3.
type KeyIterator struct {
	item   string
	length int
	depth  int

	posIndex      int
	posExhausted  bool
	commonMatches []commonWordMatch
	commonIndex   int

	seen map[string]struct{}
}

// IndicesOf builds a KeyIterator over the normalized form of line, using
// the package-default key length and depth.
func IndicesOf(line []byte) *KeyIterator {
	return newKeyIterator(line, pwdxcfg.KeyLength, pwdxcfg.KeyDepth)
}

func newKeyIterator(line []byte, length, depth int) *KeyIterator {
	item := Normalize(line)
	it := &KeyIterator{
		item:   item,
		length: length,
		depth:  depth,
		seen:   make(map[string]struct{}),
	}
	if item != "" {
		it.commonMatches = findCommonWordMatches(item)
	}
	return it
}

// Item returns the normalized item this iterator was built from.
func (it *KeyIterator) Item() string {
	return it.item
}

// Next returns the next key not already emitted by this iterator, or ("", false) once the
// sequence is exhausted.
func (it *KeyIterator) Next() (string, bool) {
	if it.item == "" {
		return "", false
	}

	for !it.posExhausted && it.posIndex < it.depth {
		index := it.posIndex

		// Matches the original index_of iterator: once a non-zero offset
		// would run past the end of the item, positional emission stops
		// for good, even though index 0 itself is always attempted (and
		// clamped to the item's length if the item is shorter than the
		// key length).
		if index > 0 && index+it.length > len(it.item) {
			it.posExhausted = true
			break
		}

		it.posIndex++
		end := index + it.length
		if end > len(it.item) {
			end = len(it.item)
		}
		key := it.item[index:end]
		if it.emit(key) {
			return key, true
		}
	}

	for it.commonIndex < len(it.commonMatches) {
		m := it.commonMatches[it.commonIndex]
		it.commonIndex++
		key := it.item[m.Start:m.End]
		if it.emit(key) {
			return key, true
		}
	}

	return "", false
}

// emit records key as seen and reports whether it had not been emitted
// before.
func (it *KeyIterator) emit(key string) bool {
	if _, dup := it.seen[key]; dup {
		return false
	}
	it.seen[key] = struct{}{}
	return true
}

// All drains the iterator into a slice, for callers (IndexCollection,
// tests) that want the whole deduplicated sequence at once.
func All(line []byte) []string {
	it := IndicesOf(line)
	var keys []string
	for {
		key, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, key)
	}
	return keys
}
