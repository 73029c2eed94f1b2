// Package zframe is a memory-safe decompression layer over the Zstandard
// frame codec. It resolves the decompressed size from frame metadata, sizes
// or reuses a caller-owned typed destination buffer, invokes the codec, and
// translates codec status codes into structured errors.
//
// The package decompresses single frames only: no multi-frame concatenation
// and no streaming. Frames that do not declare their content size are sized
// by a bounded heuristic rather than streamed.
package zframe

import (
	"sync"

	"github.com/miretskiy/zframe/zstd"
)

// Engines are stateless handles, so one resolved value serves the process.
var defaultEngine = sync.OnceValue(zstd.Default)

var maxLevel = sync.OnceValue(func() int { return defaultEngine().MaxLevel() })

// MaxCompressionLevel returns the highest compression level the codec
// accepts. Computed once, on first use.
func MaxCompressionLevel() int { return maxLevel() }

var codecVersion = sync.OnceValue(func() int { return defaultEngine().Version() })

// Version returns the codec version triple. Computed once, on first use.
func Version() (major, minor, patch int) {
	v := codecVersion()
	return v / 10000, v / 100 % 100, v % 100
}

// MaxCompressedSize returns the worst-case compressed frame size for n raw
// input bytes.
func MaxCompressedSize(n int) int {
	return defaultEngine().CompressBound(n)
}

// DecompressInto expands the single frame held by src into dst and returns
// the number of bytes written. dst is resized to exactly the decompressed
// element count, reusing its backing array when the capacity suffices; a
// strided but gap-free dst collapses to a dense layout. Both src and dst
// must be contiguous, and the decompressed byte count must be a whole number
// of dst's elements.
//
// When the frame does not declare its content size the destination is sized
// to min(limit, 100x the compressed length) and a warning is logged; if the
// frame expands past that bound the call fails with a destination-too-small
// CodecError and the caller may retry with a larger WithSizeLimit.
//
// The call is synchronous and performs no locking. Concurrent calls on
// distinct destination buffers are independent; sharing one destination
// across concurrent calls is the caller's responsibility to prevent.
func DecompressInto[T Element](dst *Buffer[T], src *Buffer[byte], opts ...Option) (int, error) {
	cfg := newConfig(opts)
	if !src.Contiguous() || !dst.Contiguous() {
		return 0, ErrNotContiguous
	}
	compressed := src.dense()

	cs, err := resolveContentSize(cfg.engine, compressed)
	if err != nil {
		return 0, err
	}

	var target uint64
	switch {
	case cs.known && cs.n == 0:
		// Empty payload; nothing for the codec to do.
		dst.setLen(0)
		return 0, nil
	case cs.known:
		target = cs.n
	default:
		target = heuristicTarget(len(compressed), cfg.sizeLimit, elemSize[T]())
	}

	if err := dst.resizeBytes(target); err != nil {
		return 0, err
	}

	written, err := translate(cfg.engine, cfg.engine.Decompress(dst.bytes(), compressed))
	if err != nil {
		return 0, err
	}
	// The heuristic path over-allocates; drop the tail. A byte count that is
	// not a whole number of elements fails here.
	if err := dst.resizeBytes(written); err != nil {
		return 0, err
	}
	return int(written), nil
}

// Decompress allocates a fresh buffer for the frame in src and fills it via
// DecompressInto.
func Decompress[T Element](src []byte, opts ...Option) (*Buffer[T], error) {
	buf := New[T](0)
	if _, err := DecompressInto(buf, Wrap(src), opts...); err != nil {
		return nil, err
	}
	return buf, nil
}
