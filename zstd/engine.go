// Package zstd binds the Zstandard frame codec behind a small capability
// interface. Production code uses the libzstd binding (cgo builds) or the
// self-contained Go engine; tests substitute programmable engines to drive
// the error and sizing paths deterministically.
package zstd

// Reserved values returned by the frame content size query. The frame format
// keeps the top two uint64 values out of the valid size range.
const (
	// ContentSizeUnknown means the frame does not declare its decompressed
	// size (streaming-produced frames typically do not).
	ContentSizeUnknown = ^uint64(0)
	// ContentSizeError means the header could not be parsed at all.
	ContentSizeError = ^uint64(0) - 1
)

// Engine is the set of codec primitives the buffer-management layer builds
// on. Compress and Decompress return a raw code-or-size value in libzstd
// convention: the value is a byte count only if IsError reports false for it.
type Engine interface {
	// Compress writes a single frame for src into dst, which must be sized
	// up front (see CompressBound), at the given compression level.
	Compress(dst, src []byte, level int) uint64
	// Decompress expands the single frame in src into dst. dst must be large
	// enough for the full decompressed content; on failure the contents of
	// dst are unspecified.
	Decompress(dst, src []byte) uint64
	// FrameContentSize reads the declared decompressed size from the frame
	// header of src, or one of the ContentSize sentinels.
	FrameContentSize(src []byte) uint64
	// IsError reports whether a Compress or Decompress return value is an
	// error code rather than a byte count.
	IsError(code uint64) bool
	// ErrorName returns the codec's registered message for an error code.
	ErrorName(code uint64) string
	// CompressBound returns the worst-case compressed size for srcSize raw
	// input bytes.
	CompressBound(srcSize int) int
	// MaxLevel returns the highest compression level the engine accepts.
	MaxLevel() int
	// Version returns the codec version as major*10000 + minor*100 + patch.
	Version() int
}
