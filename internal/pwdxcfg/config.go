// Package pwdxcfg holds the tunable constants and defaults shared by the
// indexer and searcher, mirroring the way coregex's meta.Config documents
// each knob alongside its default.
package pwdxcfg

// KeyLength is the fixed length L of every emitted key.
const KeyLength = 3

// KeyDepth is the number of positional keys D emitted per normalized item,
// starting at offset 0. The production setting of 1 halves write
// amplification relative to larger depths.
const KeyDepth = 1

// MaxLineLength is the logical limit on a stored line, in bytes. Lines
// longer than this are dropped by the indexer with a warning.
const MaxLineLength = 256

// MaxBuffer is the default capacity, in bytes, of an IndexFile's in-memory
// write buffer before it is flushed to disk.
const MaxBuffer = 4096

// ChunkSize is the default size, in bytes, of a single read from the
// buffered chunked reader.
const ChunkSize = 65536

// MaxChunkSize is the default window size, in bytes, used by the
// memory-mapped parallel chunked reader.
const MaxChunkSize = 1048576

// MaxSentenceLength is the longest line, in bytes, expected in the corpus.
// A buffered reader whose chunk size is at least this large splits no such
// line. The readers do not enforce it: the buffered reader's overflow
// buffer has no fixed capacity and grows to hold whatever trails a chunk.
const MaxSentenceLength = 1024

// SourcePath is the default input corpus path.
const SourcePath = "data/raw/rockyou.csv"

// IndexPath is the default shard output directory.
const IndexPath = "data/index"

// NumberOfThreads is the default worker count for the indexer.
const NumberOfThreads = 8

// CommonWordPrefixLength is the prefix length used when truncating the
// packaged word list into common-word key patterns. It is always equal to
// KeyLength; kept as a separate name for readability at call sites.
const CommonWordPrefixLength = KeyLength

// ResultCacheSize is the number of (style, query) entries retained in an
// IndexCollection's result LRU.
const ResultCacheSize = 256

// IndexFilePrefix and IndexFileExtension define the on-disk shard filename
// grammar: subset_<key>.csv.
const (
	IndexFilePrefix    = "subset_"
	IndexFileExtension = "csv"
)
