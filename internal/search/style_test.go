package search

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	cases := map[string]Style{
		"strict":           Strict,
		"Fuzzy":             Fuzzy,
		"case-insensitive": CaseInsensitive,
		"ci":               CaseInsensitive,
	}
	for in, want := range cases {
		got, err := ParseStyle(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStyle("nonsense")
	assert.Error(t, err)
}

func TestTransformQueries(t *testing.T) {
	assert.Equal(t, []string{"Password"}, Strict.TransformQueries([]string{"Password"}))
	assert.Equal(t, []string{"password"}, CaseInsensitive.TransformQueries([]string{"Password"}))
	assert.Equal(t, []string{"password"}, Fuzzy.TransformQueries([]string{"P455w0rd"}))
}

func TestTransformReaderCaseInsensitive(t *testing.T) {
	r := CaseInsensitive.TransformReader(strings.NewReader("MyPaSSword"))
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "mypassword", string(out))
}

func TestTransformReaderFuzzy(t *testing.T) {
	r := Fuzzy.TransformReader(strings.NewReader("P455W0RD"))
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "password", string(out))
}

func TestCaseInsensitiveLoweringIsASCIIOnlyAndLengthPreserving(t *testing.T) {
	// U+0130 (LATIN CAPITAL LETTER I WITH DOT ABOVE) is a case strings.ToLower
	// gets wrong for this purpose: Unicode lower-cases it to a two-rune,
	// three-byte sequence, which would desynchronize LinesScanner's match
	// offsets from the raw index bytes. ASCII-only folding must leave it
	// untouched.
	mixed := "PASSWORDİ"
	transformed := CaseInsensitive.TransformQueries([]string{mixed})[0]
	require.Len(t, transformed, len(mixed))
	assert.Equal(t, "passwordİ", transformed)

	r := CaseInsensitive.TransformReader(strings.NewReader(mixed))
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, transformed, string(out))
}
