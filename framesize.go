package zframe

import (
	"github.com/dustin/go-humanize"
	"github.com/miretskiy/zframe/zstd"
)

// contentSize is the classified result of the frame-size query: Known(n)
// when known is set, Unknown otherwise. The error sentinel never reaches
// this type; it fails the call instead.
type contentSize struct {
	known bool
	n     uint64
}

// resolveContentSize queries the frame header through the engine and
// classifies the raw result. Resolved fresh on every call; frames are never
// assumed identical so nothing is cached.
func resolveContentSize(eng zstd.Engine, src []byte) (contentSize, error) {
	switch raw := eng.FrameContentSize(src); raw {
	case zstd.ContentSizeError:
		return contentSize{}, ErrFrameSize
	case zstd.ContentSizeUnknown:
		return contentSize{}, nil
	default:
		// Zero is a valid known size: an empty payload.
		return contentSize{known: true, n: raw}, nil
	}
}

// heuristicFactor multiplies the compressed length when a frame does not
// declare its content size; DefaultSizeLimit caps the product.
const (
	heuristicFactor = 100
	// DefaultSizeLimit is the ceiling for heuristically sized destinations,
	// 1 GiB. Override per call with WithSizeLimit.
	DefaultSizeLimit = uint64(1) << 30
)

// heuristicTarget picks the destination byte count for an unknown-size
// frame: heuristicFactor times the compressed length, capped at limit and
// rounded down to a whole number of elements. Best effort only — a frame
// expanding past the bound fails the decompression with a
// destination-too-small CodecError.
func heuristicTarget(srcLen int, limit uint64, size uintptr) uint64 {
	target := min(uint64(srcLen)*heuristicFactor, limit)
	target -= target % uint64(size)
	log.Warn("frame does not declare its content size, sizing destination heuristically",
		"bound", humanize.IBytes(target))
	return target
}
