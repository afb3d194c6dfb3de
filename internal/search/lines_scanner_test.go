package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeShard(t *testing.T, lines ...string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "subset_pas.csv")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func factoryFor(path string) ReaderFactory {
	return func() (ReadSeekCloser, error) {
		return os.Open(path)
	}
}

func TestLinesScannerStrict(t *testing.T) {
	path := writeShard(t, "password", "password1", "notit", "mypassword")
	scanner, err := New(factoryFor(path), []string{"password"}, Strict)
	require.NoError(t, err)
	defer scanner.Close()

	var got []string
	for {
		line, ok, err := scanner.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, line)
	}
	assert.ElementsMatch(t, []string{"password", "password1", "mypassword"}, got)
}

func TestLinesScannerCaseInsensitive(t *testing.T) {
	path := writeShard(t, "Password", "PASSWORD", "notit")
	lines, err := All(factoryFor(path), []string{"password"}, CaseInsensitive)
	require.NoError(t, err)
	assert.Contains(t, lines, "Password")
	assert.Contains(t, lines, "PASSWORD")
	assert.NotContains(t, lines, "notit")
}

func TestLinesScannerFuzzy(t *testing.T) {
	path := writeShard(t, "passw0rd", "p455word", "notit")
	lines, err := All(factoryFor(path), []string{"password"}, Fuzzy)
	require.NoError(t, err)
	assert.Contains(t, lines, "passw0rd")
	assert.Contains(t, lines, "p455word")
	assert.NotContains(t, lines, "notit")
}

func TestLinesScannerNoMatches(t *testing.T) {
	path := writeShard(t, "abc", "def")
	lines, err := All(factoryFor(path), []string{"xyz"}, Strict)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
