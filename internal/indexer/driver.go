// Package indexer orchestrates the chunked reader and the shard collection
// into the end-to-end indexing pipeline of spec.md section 6.
package indexer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/pwdx/pwdx/internal/chunkreader"
	"github.com/pwdx/pwdx/internal/pwdxcfg"
	"github.com/pwdx/pwdx/internal/pwdxlog"
	"github.com/pwdx/pwdx/internal/shard"
)

// ProgressFunc is called after each chunk is fully indexed, reporting
// cumulative bytes processed against the known total. Implementations must
// be safe to call from multiple goroutines concurrently.
type ProgressFunc func(processedBytes, totalBytes int64)

// Driver drives the production indexing path: it memory-maps the input
// file, divides it into line-aligned windows, and indexes those windows
// concurrently across a worker pool into a shard.Collection.
type Driver struct {
	Threads  int
	Progress ProgressFunc

	// ChunkSize is the read size used by RunBuffered's sequential reader.
	// A non-positive value falls back to pwdxcfg.ChunkSize.
	ChunkSize int
	// MaxChunkSize is the window size used by Run's memory-mapped reader.
	// A non-positive value falls back to pwdxcfg.MaxChunkSize.
	MaxChunkSize int
}

// New builds a Driver with the given worker count. A non-positive count
// falls back to pwdxcfg.NumberOfThreads.
func New(threads int) *Driver {
	if threads <= 0 {
		threads = pwdxcfg.NumberOfThreads
	}
	return &Driver{Threads: threads, ChunkSize: pwdxcfg.ChunkSize, MaxChunkSize: pwdxcfg.MaxChunkSize}
}

// Run indexes inputPath into a shard.Collection rooted at outputDir and
// returns that collection, already closed (flushed). Progress, if set, is
// invoked after every window is indexed.
func (d *Driver) Run(ctx context.Context, inputPath, outputDir string) (*shard.Collection, error) {
	reader, err := chunkreader.OpenMmap(inputPath)
	if err != nil {
		return nil, fmt.Errorf("indexer: failed to open input: %w", err)
	}
	defer reader.Close()

	maxChunkSize := d.MaxChunkSize
	if maxChunkSize <= 0 {
		maxChunkSize = pwdxcfg.MaxChunkSize
	}

	totalBytes := int64(reader.Len())
	windows := reader.WindowsOfSize('\n', maxChunkSize)
	var processedBytes int64

	collection := shard.New(outputDir)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(d.Threads)

	for _, window := range windows {
		window := window
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}

			chunk := reader.Bytes(window)
			if err := indexChunk(collection, chunk); err != nil {
				return fmt.Errorf("indexer: failed to index window [%d,%d): %w", window.Start, window.End, err)
			}
			processed := atomic.AddInt64(&processedBytes, int64(window.End-window.Start))
			if d.Progress != nil {
				d.Progress(processed, totalBytes)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		collection.Close()
		return nil, err
	}

	collection.Close()
	return collection, nil
}

// RunBuffered indexes inputPath sequentially using the buffered baseline
// reader instead of the memory-mapped production path. It exists as a
// correctness cross-check for Run, its mmap-based sibling, and as a
// fallback for filesystems where mmap is unavailable or undesirable.
func (d *Driver) RunBuffered(inputPath, outputDir string) (*shard.Collection, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("indexer: failed to open input: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("indexer: failed to stat input: %w", err)
	}
	totalBytes := info.Size()

	chunkSize := d.ChunkSize
	if chunkSize <= 0 {
		chunkSize = pwdxcfg.ChunkSize
	}

	reader := chunkreader.NewBufferedReader(file, chunkSize)
	collection := shard.New(outputDir)

	var processed int64
	buf := make([]byte, chunkSize)
	for {
		n, err := reader.ReadNext('\n', buf)
		if err != nil {
			collection.Close()
			return nil, fmt.Errorf("indexer: failed to read chunk: %w", err)
		}
		if n == 0 {
			break
		}
		if err := indexChunk(collection, buf[:n]); err != nil {
			collection.Close()
			return nil, err
		}
		processed += int64(n)
		if d.Progress != nil {
			d.Progress(processed, totalBytes)
		}
	}

	collection.Close()
	return collection, nil
}

// indexChunk splits chunk on newlines and adds every non-empty line to
// collection. Lines longer than pwdxcfg.MaxLineLength are dropped with a
// warning rather than indexed, per spec.md section 3's line-length bound. A
// per-line failure is logged and does not stop the remaining lines in the
// chunk from being indexed, matching spec.md section 8's continue-past-bad-line
// policy.
func indexChunk(collection *shard.Collection, chunk []byte) error {
	for _, line := range bytes.Split(chunk, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		if len(line) > pwdxcfg.MaxLineLength {
			pwdxlog.Get().Warn("dropping line exceeding max length",
				"length", len(line), "max_length", pwdxcfg.MaxLineLength)
			continue
		}
		if err := collection.Add(line); err != nil {
			pwdxlog.Get().Error("failed to index line", "error", err)
		}
	}
	return nil
}
