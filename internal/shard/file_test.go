package shard

import (
	"bufio"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSequentialWriteAndFlush(t *testing.T) {
	dir := t.TempDir()
	f, err := New("seq", dir)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		ok, err := f.Add([]byte("line"))
		require.NoError(t, err)
		_ = ok
	}
	// Dedup is on by default, so only the first "line" survives.
	n, err := f.Flush()
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	path, err := f.Path()
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(content))
}

func TestFileDedupDisabledAllowsRepeats(t *testing.T) {
	dir := t.TempDir()
	f, err := New("repeat", dir)
	require.NoError(t, err)
	f.dedup = false

	for i := 0; i < 3; i++ {
		ok, err := f.Add([]byte("same"))
		require.NoError(t, err)
		assert.True(t, ok)
	}
	_, err = f.Flush()
	require.NoError(t, err)

	path, err := f.Path()
	require.NoError(t, err)
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	scanner := bufio.NewScanner(file)
	var count int
	for scanner.Scan() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestFileFlushIsNoopWhenEmpty(t *testing.T) {
	dir := t.TempDir()
	f, err := New("empty", dir)
	require.NoError(t, err)

	n, err := f.Flush()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	path, err := f.Path()
	require.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileDispose(t *testing.T) {
	dir := t.TempDir()
	f, err := New("dispose", dir)
	require.NoError(t, err)
	_, err = f.Add([]byte("x"))
	require.NoError(t, err)
	_, err = f.Flush()
	require.NoError(t, err)

	path, err := f.Path()
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, f.Dispose())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFromPathRejectsMismatchedName(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/not-an-index.txt"
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := FromPath(path)
	assert.Error(t, err)
}

func TestFromPathRejectsMissingFile(t *testing.T) {
	_, err := FromPath("/does/not/exist/subset_abc.csv")
	assert.Error(t, err)
}
