package search

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/pwdx/pwdx/internal/pwdxcfg"
)

// ReaderFactory opens a fresh seekable reader over the same underlying data.
// LinesScanner calls it twice: once to scan for matches under the style's
// transform, once more to seek and read back the raw lines those matches
// fall in.
type ReaderFactory func() (ReadSeekCloser, error)

// ReadSeekCloser is the minimal capability LinesScanner needs from a shard
// file: it must be possible to scan it forward once and then seek backward
// to recover whole lines around a match.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// matchRange is one match of the transformed query set against the
// transformed stream, in byte offsets of that stream.
type matchRange struct {
	Start, End int
}

// LinesScanner finds every line in a shard file that contains one of a set
// of query strings under a given Style, per spec.md section 5.2.
type LinesScanner struct {
	reader  ReadSeekCloser
	ranges  []matchRange
	pos     int
	drained bool
}

// New builds a LinesScanner: it builds an Aho-Corasick automaton over the
// style-transformed queries, collects every match against the
// style-transformed stream eagerly, then reopens the source to recover
// whole lines around each match on demand via Next.
func New(factory ReaderFactory, queries []string, style Style) (*LinesScanner, error) {
	transformed := style.TransformQueries(queries)

	builder := ahocorasick.NewBuilder()
	patterned := false
	for _, q := range transformed {
		if q == "" {
			continue
		}
		builder.AddPattern([]byte(q))
		patterned = true
	}

	scanner := &LinesScanner{}
	if !patterned {
		scanner.drained = true
		return scanner, nil
	}

	automaton, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("search: failed to build automaton: %w", err)
	}

	scanReader, err := factory()
	if err != nil {
		return nil, fmt.Errorf("search: failed to open shard for scanning: %w", err)
	}
	data, err := io.ReadAll(style.TransformReader(scanReader))
	closeErr := scanReader.Close()
	if err != nil {
		return nil, fmt.Errorf("search: failed to read shard: %w", err)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("search: failed to close shard after scanning: %w", closeErr)
	}

	var ranges []matchRange
	at := 0
	for at <= len(data) {
		m := automaton.Find(data, at)
		if m == nil {
			break
		}
		ranges = append(ranges, matchRange{Start: m.Start, End: m.End})
		if m.End > at {
			at = m.End
		} else {
			at++
		}
	}

	if len(ranges) == 0 {
		scanner.drained = true
		return scanner, nil
	}

	reader, err := factory()
	if err != nil {
		return nil, fmt.Errorf("search: failed to reopen shard for line recovery: %w", err)
	}

	scanner.reader = reader
	scanner.ranges = ranges
	return scanner, nil
}

// Next returns the next matching line, or ("", false, nil) once every match
// has been consumed. A non-nil error means the scan stopped early on an I/O
// fault reading the shard back.
func (s *LinesScanner) Next() (string, bool, error) {
	if s.drained || s.pos >= len(s.ranges) {
		if s.reader != nil && !s.drained {
			s.drained = true
			_ = s.reader.Close()
		}
		return "", false, nil
	}

	r := s.ranges[s.pos]
	s.pos++

	line, err := s.lineOfRange(r)
	if err != nil {
		return "", false, err
	}
	return line, true, nil
}

// Close releases the reader opened for line recovery. It is safe to call
// even if Next has already drained the scanner.
func (s *LinesScanner) Close() error {
	if s.reader == nil {
		return nil
	}
	err := s.reader.Close()
	s.reader = nil
	return err
}

// lineOfRange recovers the whole line a match range falls within by seeking
// to MaxLineLength bytes before the match and reading forward line-by-line
// until the cumulative read position passes the match's end.
func (s *LinesScanner) lineOfRange(r matchRange) (string, error) {
	pos := r.Start - pwdxcfg.MaxLineLength
	if pos < 0 {
		pos = 0
	}

	var line string
	for pos < r.End {
		read, n, err := readLineAt(s.reader, int64(pos))
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("search: failed to read shard at offset %d: %w", pos, err)
		}
		line = read
		if n == 0 {
			break
		}
		pos += n
	}

	trimmed := strings.TrimRight(line, "\r\n")
	if trimmed == "" {
		return "", fmt.Errorf("search: reconstructed an empty line for a match at offset %d", r.Start)
	}
	return trimmed, nil
}

// readLineAt seeks r to pos and reads one line, returning the line
// (including its trailing separator, if any) and its byte length.
func readLineAt(r io.ReadSeeker, pos int64) (string, int, error) {
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return "", 0, err
	}
	br := bufio.NewReader(r)
	line, err := br.ReadString('\n')
	return line, len(line), err
}

// All drains the scanner into a deduplicated set of lines, the shape
// IndexCollection.FindLinesContaining needs from each shard.
func All(factory ReaderFactory, queries []string, style Style) (map[string]struct{}, error) {
	scanner, err := New(factory, queries, style)
	if err != nil {
		return nil, err
	}
	defer scanner.Close()

	lines := make(map[string]struct{})
	for {
		line, ok, err := scanner.Next()
		if err != nil {
			return lines, err
		}
		if !ok {
			break
		}
		lines[line] = struct{}{}
	}
	return lines, nil
}
