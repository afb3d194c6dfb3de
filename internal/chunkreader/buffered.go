// Package chunkreader implements the bounded-memory chunked reader of
// spec.md section 4.2: a buffered baseline that never splits a logical
// line that fits within one chunk, and a memory-mapped parallel variant used by the
// production indexer.
package chunkreader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pwdx/pwdx/internal/pwdxcfg"
)

// BufferedReader streams an io.Reader as a sequence of byte chunks, each a
// whole number of lines, within a bounded memory budget. It is the
// correctness baseline for the memory-mapped production reader.
type BufferedReader struct {
	r         io.Reader
	chunkSize int
	overflow  []byte
	tmp       []byte
}

// NewBufferedReader wraps r with the given chunk size. A line longer than
// the buffer passed to ReadNext is returned split across consecutive
// chunks, so chunkSize should be at least pwdxcfg.MaxSentenceLength for no
// expected line to be split; see spec.md section 4.2.
func NewBufferedReader(r io.Reader, chunkSize int) *BufferedReader {
	return &BufferedReader{
		r:         r,
		chunkSize: chunkSize,
		tmp:       make([]byte, chunkSize),
	}
}

// ReadNext fills buf with up to chunkSize bytes, stopping at the last
// occurrence of sep, and carries the trailing incomplete line into an
// internal overflow buffer for the next call. It returns 0 at clean EOF.
//
// ReadNext panics if buf is smaller than the configured chunk size, per
// spec.md section 4.2's "fails if the buffer is smaller than CHUNK_SIZE".
func (r *BufferedReader) ReadNext(sep byte, buf []byte) (int, error) {
	if len(buf) < r.chunkSize {
		panic(fmt.Sprintf(
			"chunkreader: buffer size (%d) must be at least the chunk size (%d)",
			len(buf), r.chunkSize,
		))
	}

	pending := append([]byte(nil), r.overflow...)
	r.overflow = r.overflow[:0]

	eof, err := r.fill(&pending, r.chunkSize)
	if err != nil {
		return 0, err
	}

	if len(pending) == 0 {
		return 0, nil
	}

	idx := bytes.LastIndexByte(pending, sep)
	for idx == -1 && !eof {
		eof, err = r.fill(&pending, len(pending)+r.chunkSize)
		if err != nil {
			return 0, err
		}
		idx = bytes.LastIndexByte(pending, sep)
	}

	var emit, rest []byte
	if idx == -1 {
		emit, rest = pending, nil
	} else {
		emit, rest = pending[:idx+1], pending[idx+1:]
	}
	if len(emit) > len(buf) {
		emit, rest = pending[:len(buf)], pending[len(buf):]
	}

	r.overflow = append(r.overflow[:0], rest...)
	return copy(buf, emit), nil
}

// fill reads from the underlying reader into pending until it holds at
// least target bytes or the reader is exhausted, reporting whether EOF was
// reached.
func (r *BufferedReader) fill(pending *[]byte, target int) (eof bool, err error) {
	for len(*pending) < target {
		want := target - len(*pending)
		if want > len(r.tmp) {
			want = len(r.tmp)
		}
		n, rerr := r.r.Read(r.tmp[:want])
		if n > 0 {
			*pending = append(*pending, r.tmp[:n]...)
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return true, nil
			}
			return false, rerr
		}
		if n == 0 {
			return true, nil
		}
	}
	return false, nil
}

// Iter returns a single-pass iterator yielding chunk byte slices split on
// sep, following the same not-restartable convention as keys.KeyIterator.
func (r *BufferedReader) Iter(sep byte) *ChunkIterator {
	return &ChunkIterator{reader: r, sep: sep}
}

// ChunkIterator iterates the chunks of a BufferedReader.
type ChunkIterator struct {
	reader *BufferedReader
	sep    byte
}

// Next returns the next chunk, or (nil, false) at EOF. It panics on a read
// error past EOF, since the chunked reader is only ever used over a local
// file whose I/O errors are not expected to be transient in this context;
// callers needing explicit error handling should call ReadNext directly.
func (it *ChunkIterator) Next() ([]byte, bool) {
	buf := make([]byte, it.reader.chunkSize)
	n, err := it.reader.ReadNext(it.sep, buf)
	if err != nil {
		panic(err)
	}
	if n == 0 {
		return nil, false
	}
	return buf[:n], true
}

// DefaultChunkSize is the chunk size used when none is supplied.
const DefaultChunkSize = pwdxcfg.ChunkSize
