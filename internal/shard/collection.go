package shard

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/pwdx/pwdx/internal/keys"
	"github.com/pwdx/pwdx/internal/pwdxcfg"
	"github.com/pwdx/pwdx/internal/pwdxlog"
	"github.com/pwdx/pwdx/internal/search"
)

// cacheKey identifies one cached search result set by the exact (style,
// query) pair that produced it.
type cacheKey struct {
	style search.Style
	query string
}

// Collection is the directory-wide map from key to File, with
// concurrency-safe lazy shard creation and an always-enabled result cache, per
// spec.md section 4.4.
type Collection struct {
	dir string

	mu     sync.RWMutex
	files  map[string]*File
	closed bool

	cache *lru.Cache[cacheKey, map[string]struct{}]
}

// New constructs an empty Collection rooted at dir. It does not scan dir for
// existing shards; those are discovered lazily as searches reference them.
func New(dir string) *Collection {
	cache, err := lru.New[cacheKey, map[string]struct{}](pwdxcfg.ResultCacheSize)
	if err != nil {
		// ResultCacheSize is a compile-time constant; a non-positive value
		// here is a configuration bug, not a runtime condition.
		panic("shard: failed to build result cache: " + err.Error())
	}

	return &Collection{
		dir:   dir,
		files: make(map[string]*File),
		cache: cache,
	}
}

// Add derives keys from item and adds item to every corresponding shard,
// creating shards on first reference. An error from one shard does not
// prevent item from being added to its other shards; the returned error
// reports how many shards failed and wraps the first failure.
func (c *Collection) Add(item []byte) error {
	var errs []error
	for _, key := range keys.All(item) {
		file, err := c.assertExists(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := file.Add(item); err != nil {
			errs = append(errs, fmt.Errorf("shard %s: %w", key, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("shard: %d error(s) adding item: %w", len(errs), errs[0])
}

// assertExists implements the two-lock lazy-creation pattern of spec.md
// section 4.4: a write lock only guards the existence check and insertion;
// the shard's own per-file mutex serializes the subsequent buffer mutation,
// so concurrent inserts into different, already-created shards do not
// contend on this collection-wide lock.
func (c *Collection) assertExists(key string) (*File, error) {
	c.mu.RLock()
	file, ok := c.files[key]
	c.mu.RUnlock()
	if ok {
		return file, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if file, ok := c.files[key]; ok {
		return file, nil
	}

	file, err := New(key, c.dir)
	if err != nil {
		return nil, err
	}
	c.files[key] = file
	return file, nil
}

// IndexFilesFor derives keys from query and returns a File reader bound to
// every shard that actually exists on disk for one of those keys. Missing
// shards are silently skipped, per spec.md section 4.4.
func (c *Collection) IndexFilesFor(query string) []*File {
	var files []*File
	for _, key := range keys.All([]byte(query)) {
		path, err := PathForKey(key, c.dir)
		if err != nil {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			pwdxlog.Get().Debug("no shard for key, skipping", "key", key, "error", err)
			continue
		}
		file, err := FromPath(path)
		if err != nil {
			pwdxlog.Get().Debug("shard exists but could not be opened", "key", key, "error", err)
			continue
		}
		files = append(files, file)
	}
	return files
}

// FindLinesContaining is the search entry point of spec.md section 4.6: it
// partitions the relevant shards across min(#shards, #cores) goroutines,
// each folding its own partition sequentially via errgroup, then unions the
// partitions' results, consulting and populating the collection's result
// cache.
func (c *Collection) FindLinesContaining(query string, style search.Style) (map[string]struct{}, error) {
	key := cacheKey{style: style, query: query}
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	files := c.IndexFilesFor(query)

	partitions := partitionFiles(files, runtime.NumCPU())

	type partial struct {
		lines map[string]struct{}
		err   error
	}
	partialResults := make([]partial, len(partitions))

	var group errgroup.Group
	for i, partition := range partitions {
		i, partition := i, partition
		group.Go(func() error {
			local := make(map[string]struct{})
			var firstErr error
			for _, file := range partition {
				lines, err := search.All(func() (search.ReadSeekCloser, error) {
					return os.Open(mustPath(file))
				}, []string{query}, style)
				if err != nil {
					pwdxlog.Get().Error("search failed for shard", "query", query, "error", err)
					if firstErr == nil {
						firstErr = err
					}
					continue
				}
				for line := range lines {
					local[line] = struct{}{}
				}
			}
			partialResults[i] = partial{lines: local, err: firstErr}
			return nil
		})
	}
	_ = group.Wait()

	merged := make(map[string]struct{})
	var firstErr error
	for _, p := range partialResults {
		if p.err != nil && firstErr == nil {
			firstErr = p.err
		}
		for line := range p.lines {
			merged[line] = struct{}{}
		}
	}

	c.cache.Add(key, merged)
	return merged, firstErr
}

// partitionFiles splits files into min(len(files), workers) contiguous,
// roughly equal-sized groups, per spec.md section 4.6 step 3's
// min(#shards, #cores) partitioning. Each group is folded sequentially by a
// single goroutine so that the goroutine count never exceeds the available
// cores.
func partitionFiles(files []*File, workers int) [][]*File {
	if len(files) == 0 {
		return nil
	}
	if workers <= 0 || workers > len(files) {
		workers = len(files)
	}

	partitions := make([][]*File, 0, workers)
	base := len(files) / workers
	extra := len(files) % workers
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < extra {
			size++
		}
		if size == 0 {
			continue
		}
		partitions = append(partitions, files[start:start+size])
		start += size
	}
	return partitions
}

func mustPath(file *File) string {
	path, err := file.Path()
	if err != nil {
		// file came from FromPath, which already validated its directory
		// and key; Path can only fail here if the directory was removed
		// concurrently, which indexing/search do not support.
		panic("shard: shard file lost its path: " + err.Error())
	}
	return path
}

// FindLinesContainingPaginated is a convenience wrapper around
// FindLinesContaining that slices the (unordered) result set to
// [offset, offset+limit).
func (c *Collection) FindLinesContainingPaginated(query string, style search.Style, offset, limit int) ([]string, error) {
	lines, err := c.FindLinesContaining(query, style)
	if err != nil {
		return nil, err
	}

	all := make([]string, 0, len(lines))
	for line := range lines {
		all = append(all, line)
	}

	if offset >= len(all) {
		return []string{}, nil
	}
	end := offset + limit
	if end > len(all) || limit < 0 {
		end = len(all)
	}
	return all[offset:end], nil
}

// Close post-processes (flushes) every shard in the collection. Failures
// are logged and do not prevent the remaining shards from being flushed;
// this is the explicit substitute for the Drop-triggered flush the original
// relied on.
func (c *Collection) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true

	for key, file := range c.files {
		if err := file.PostProcess(); err != nil {
			pwdxlog.Get().Error("failed to post-process shard", "key", key, "error", err)
		}
	}
}
