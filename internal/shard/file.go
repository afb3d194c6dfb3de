package shard

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/pwdx/pwdx/internal/pwdxcfg"
	"github.com/pwdx/pwdx/internal/pwdxlog"
	"github.com/pwdx/pwdx/internal/search"
)

// File is the per-shard, append-only write buffer of spec.md section 4.3.
// It is identified by (key, dir); all mutable state is guarded by mu.
type File struct {
	key string
	dir string

	mu       sync.Mutex
	buffer   []byte
	dedup    bool
	seen     map[uint64]struct{}
	disposed bool
}

// New creates the shard's directory if absent (but not the shard file
// itself) and returns an empty File for key.
func New(key, dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("shard: failed to create directory %s: %w", dir, err)
	}

	f := &File{
		key:    key,
		dir:    dir,
		buffer: make([]byte, 0, pwdxcfg.MaxBuffer),
		dedup:  true,
		seen:   make(map[uint64]struct{}),
	}
	pwdxlog.Get().Debug("created shard", "key", key, "dir", dir)
	return f, nil
}

// FromPath reconstructs a File for read access from an existing on-disk
// shard, deriving its key from the file name. It requires the file to exist
// and to match the subset_<key>.csv grammar.
func FromPath(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("shard: %s does not exist: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("shard: %s is a directory, not a shard file", path)
	}

	key, ok := KeyForPath(path)
	if !ok {
		return nil, fmt.Errorf("shard: %s is not a valid index file name", path)
	}

	return &File{key: key, dir: filepath.Dir(path)}, nil
}

// Key returns the shard's key.
func (f *File) Key() string { return f.key }

// Path returns the path the shard file lives, or would live, at.
func (f *File) Path() (string, error) {
	return PathForKey(f.key, f.dir)
}

// Add appends item to the shard's in-memory buffer, flushing first if the
// buffer would otherwise exceed MaxBuffer. If deduplication is enabled and
// item has already been added during this run, Add is a no-op and returns
// false.
func (f *File) Add(item []byte) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.dedup {
		h := xxhash.Sum64(item)
		if _, dup := f.seen[h]; dup {
			pwdxlog.Get().Debug("duplicate item skipped", "key", f.key)
			return false, nil
		}
		f.seen[h] = struct{}{}
	}

	if len(f.buffer)+len(item)+1 > pwdxcfg.MaxBuffer {
		if _, err := f.flushLocked(); err != nil {
			return false, err
		}
	}

	f.buffer = append(f.buffer, item...)
	f.buffer = append(f.buffer, '\n')
	return true, nil
}

// Flush writes the current buffer to the shard file in one append, and
// returns the number of bytes written. It is a no-op if the buffer is
// empty, and never creates a file for an empty flush.
func (f *File) Flush() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flushLocked()
}

func (f *File) flushLocked() (int, error) {
	if len(f.buffer) == 0 {
		return 0, nil
	}

	path, err := f.Path()
	if err != nil {
		return 0, err
	}

	out, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("shard: failed to open %s for append: %w", path, err)
	}
	defer out.Close()

	outgoing := f.buffer
	f.buffer = make([]byte, 0, pwdxcfg.MaxBuffer)

	n, err := out.Write(outgoing)
	if err != nil {
		return n, fmt.Errorf("shard: failed to write %s: %w", path, err)
	}
	pwdxlog.Get().Debug("flushed shard", "key", f.key, "bytes", n)
	return n, nil
}

// Dispose deletes the shard file if it exists. It does not touch the
// in-memory buffer or dedup set.
func (f *File) Dispose() error {
	path, err := f.Path()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("shard: failed to remove %s: %w", path, err)
	}
	return nil
}

// PostProcess flushes the shard. It is reserved as the hook for a future
// per-file deduplication pass over the written file.
func (f *File) PostProcess() error {
	_, err := f.Flush()
	return err
}

// Close flushes the shard, logging and swallowing any failure so that one
// shard's I/O error cannot prevent its siblings from closing. This is the
// explicit substitute for the destructor a garbage-collected language
// cannot run deterministically.
func (f *File) Close() {
	f.mu.Lock()
	alreadyDisposed := f.disposed
	f.disposed = true
	f.mu.Unlock()

	if alreadyDisposed {
		return
	}
	if _, err := f.Flush(); err != nil {
		pwdxlog.Get().Error("failed to flush shard on close", "key", f.key, "error", err)
	}
}

// FindLinesContaining builds a LinesScanner over this shard's on-disk
// contents for the given queries and search style.
func (f *File) FindLinesContaining(queries []string, style search.Style) (*search.LinesScanner, error) {
	path, err := f.Path()
	if err != nil {
		return nil, err
	}
	return search.New(func() (search.ReadSeekCloser, error) {
		return os.Open(path)
	}, queries, style)
}
