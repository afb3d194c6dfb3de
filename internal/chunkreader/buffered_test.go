package chunkreader

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedReaderNeverSplitsALine(t *testing.T) {
	const line = "0123456789\n"
	input := strings.Repeat(line, 200)

	r := NewBufferedReader(strings.NewReader(input), 64)

	var lines []string
	buf := make([]byte, 64)
	for {
		n, err := r.ReadNext('\n', buf)
		require.NoError(t, err)
		if n == 0 {
			break
		}
		chunk := string(buf[:n])
		require.True(t, strings.HasSuffix(chunk, "\n"), "chunk must end on a separator: %q", chunk)
		for _, l := range strings.Split(strings.TrimSuffix(chunk, "\n"), "\n") {
			lines = append(lines, l)
		}
	}

	require.Len(t, lines, 200)
	for _, l := range lines {
		assert.Equal(t, "0123456789", l)
	}
}

func TestBufferedReaderEmptyInput(t *testing.T) {
	r := NewBufferedReader(strings.NewReader(""), 64)
	buf := make([]byte, 64)
	n, err := r.ReadNext('\n', buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBufferedReaderTrailingLineWithoutSeparator(t *testing.T) {
	r := NewBufferedReader(strings.NewReader("abc\ndef"), 64)
	buf := make([]byte, 64)

	n, err := r.ReadNext('\n', buf)
	require.NoError(t, err)
	assert.Equal(t, "abc\n", string(buf[:n]))

	n, err = r.ReadNext('\n', buf)
	require.NoError(t, err)
	assert.Equal(t, "def", string(buf[:n]))

	n, err = r.ReadNext('\n', buf)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBufferedReaderPanicsOnUndersizedBuffer(t *testing.T) {
	r := NewBufferedReader(strings.NewReader("abc\n"), 64)
	buf := make([]byte, 8)
	assert.Panics(t, func() {
		_, _ = r.ReadNext('\n', buf)
	})
}

func TestChunkIteratorMatchesReadNext(t *testing.T) {
	input := strings.Repeat("x\n", 300)
	r := NewBufferedReader(strings.NewReader(input), 32)
	it := r.Iter('\n')

	var total int
	for {
		chunk, ok := it.Next()
		if !ok {
			break
		}
		total += bytes.Count(chunk, []byte("\n"))
	}
	assert.Equal(t, 300, total)
}
