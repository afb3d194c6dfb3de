package indexer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwdx/pwdx/internal/pwdxcfg"
	"github.com/pwdx/pwdx/internal/search"
	"github.com/pwdx/pwdx/internal/shard"
)

func writeCorpus(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.csv")
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDriverRunIndexesEveryLine(t *testing.T) {
	input := writeCorpus(t, "password", "password1", "letmein123", "sunshine1")
	outDir := t.TempDir()

	d := New(2)
	var lastProcessed, lastTotal int64
	d.Progress = func(processed, total int64) {
		lastProcessed, lastTotal = processed, total
	}

	collection, err := d.Run(context.Background(), input, outDir)
	require.NoError(t, err)
	assert.Equal(t, lastTotal, lastProcessed)

	lines, err := collection.FindLinesContaining("password", search.Strict)
	require.NoError(t, err)
	assert.Contains(t, lines, "password")
	assert.Contains(t, lines, "password1")
}

func TestDriverRunBufferedMatchesRun(t *testing.T) {
	input := writeCorpus(t, "password", "dragon123", "letmein")
	mmapOut := t.TempDir()
	bufOut := t.TempDir()

	d := New(1)
	_, err := d.Run(context.Background(), input, mmapOut)
	require.NoError(t, err)

	_, err = d.RunBuffered(input, bufOut)
	require.NoError(t, err)

	mmapCollection := shard.New(mmapOut)
	bufCollection := shard.New(bufOut)

	mmapLines, err := mmapCollection.FindLinesContaining("password", search.Strict)
	require.NoError(t, err)
	bufLines, err := bufCollection.FindLinesContaining("password", search.Strict)
	require.NoError(t, err)
	assert.Equal(t, mmapLines, bufLines)
}

func TestDriverDropsLinesLongerThanMaxLineLength(t *testing.T) {
	overlong := "password" + strings.Repeat("z", pwdxcfg.MaxLineLength)
	input := writeCorpus(t, overlong, "password")
	outDir := t.TempDir()

	d := New(2)
	collection, err := d.Run(context.Background(), input, outDir)
	require.NoError(t, err)

	lines, err := collection.FindLinesContaining("password", search.Strict)
	require.NoError(t, err)
	assert.Contains(t, lines, "password")
	assert.NotContains(t, lines, overlong)
}

func TestDriverChunkSizeFieldsAreHonored(t *testing.T) {
	input := writeCorpus(t, "password", "dragon123")
	outDir := t.TempDir()

	d := New(1)
	d.ChunkSize = 64
	d.MaxChunkSize = 64

	collection, err := d.RunBuffered(input, outDir)
	require.NoError(t, err)
	lines, err := collection.FindLinesContaining("password", search.Strict)
	require.NoError(t, err)
	assert.Contains(t, lines, "password")

	outDir2 := t.TempDir()
	collection2, err := d.Run(context.Background(), input, outDir2)
	require.NoError(t, err)
	lines2, err := collection2.FindLinesContaining("password", search.Strict)
	require.NoError(t, err)
	assert.Contains(t, lines2, "password")
}
