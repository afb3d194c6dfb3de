package chunkreader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMmapReaderWindowsCoverWholeFileWithoutSplittingLines(t *testing.T) {
	content := strings.Repeat("0123456789\n", 500)
	path := writeTempFile(t, content)

	r, err := OpenMmap(path)
	require.NoError(t, err)
	defer r.Close()

	windows := r.WindowsOfSize('\n', 64)
	require.NotEmpty(t, windows)

	var rebuilt []byte
	for i, w := range windows {
		chunk := r.Bytes(w)
		if i < len(windows)-1 {
			assert.True(t, strings.HasSuffix(string(chunk), "\n"))
		}
		rebuilt = append(rebuilt, chunk...)
	}
	assert.Equal(t, content, string(rebuilt))
	assert.Equal(t, windows[0].Start, 0)
	assert.Equal(t, windows[len(windows)-1].End, len(content))
}

func TestMmapReaderEmptyFile(t *testing.T) {
	path := writeTempFile(t, "")
	r, err := OpenMmap(path)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Windows('\n'))
}

func TestMmapReaderSingleWindowSmallFile(t *testing.T) {
	path := writeTempFile(t, "a\nb\nc\n")
	r, err := OpenMmap(path)
	require.NoError(t, err)
	defer r.Close()

	windows := r.Windows('\n')
	require.Len(t, windows, 1)
	assert.Equal(t, "a\nb\nc\n", string(r.Bytes(windows[0])))
}
