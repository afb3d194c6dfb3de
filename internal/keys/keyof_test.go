package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLeetAndClassMarkers(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"leet password", "P45sw0®D", "password"},
		{"cjk marker", "My密碼", "my11"},
		{"punctuation stripped", "(pass-word_1)", "passwordi"},
		{"whitespace stripped", "P45s w0®D", "password"},
		{"empty", "", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Normalize([]byte(c.in)))
		})
	}
}

func TestKeyIteratorPositionalDepth1(t *testing.T) {
	it := newKeyIterator([]byte("P45sw0®D"), 3, 1)
	require.Equal(t, "password", it.Item())

	var got []string
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []string{"pas", "wor"}, got)
}

func TestKeyIteratorPositionalDepth3(t *testing.T) {
	it := newKeyIterator([]byte("P45sw0®D"), 3, 3)

	var got []string
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []string{"pas", "ass", "ssw", "wor"}, got)
}

func TestKeyIteratorCJKMarkers(t *testing.T) {
	it := newKeyIterator([]byte("My密碼"), 3, 4)

	var got []string
	for {
		k, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, k)
	}
	assert.Equal(t, []string{"my1", "y11"}, got)
}

func TestKeyIteratorEmptyItem(t *testing.T) {
	it := newKeyIterator([]byte("***"), 3, 1)
	_, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, "", it.Item())
}

func TestKeyIteratorLengthExceedsItem(t *testing.T) {
	// Matches the original index_of iterator: index 0 is always attempted
	// and clamped, even when the key length exceeds the item length. The
	// common-word keys, whose length is fixed by the packaged automaton,
	// still follow.
	it := newKeyIterator([]byte("password"), 9, 1)
	got, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, "password", got)
	got, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, "pas", got)
	got, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, "wor", got)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestKeyIteratorNoDuplicates(t *testing.T) {
	keys := All([]byte("aaaaaaaaa"))
	seen := map[string]struct{}{}
	for _, k := range keys {
		_, dup := seen[k]
		require.False(t, dup, "duplicate key %q", k)
		seen[k] = struct{}{}
	}
}

func TestAllIncludesCommonWordKeys(t *testing.T) {
	keys := All([]byte("defcon"))
	assert.Contains(t, keys, "con")
}
