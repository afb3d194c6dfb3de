package shard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathForKeyAndKeyForPathRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cases := []string{"abc", "ABCD", "a1b", "a_b"}
	for _, key := range cases {
		path, err := PathForKey(key, dir)
		require.NoError(t, err)

		extracted, ok := KeyForPath(path)
		require.True(t, ok)
		assert.Equal(t, key, extracted)
	}
}

func TestPathForKeyMissingDirectory(t *testing.T) {
	_, err := PathForKey("abc", "/does/not/exist/anywhere")
	assert.Error(t, err)
}

func TestKeyForPathRejectsWrongGrammar(t *testing.T) {
	cases := []string{
		"",
		"subset_abc",
		"abccsv",
		"subset_.csv",
	}
	for _, name := range cases {
		_, ok := KeyForPath(name)
		assert.False(t, ok, "expected %q to be rejected", name)
	}
}

func TestKeyForPathValid(t *testing.T) {
	key, ok := KeyForPath("subset_abc.csv")
	require.True(t, ok)
	assert.Equal(t, "abc", key)
}
