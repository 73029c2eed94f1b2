package zframe

import (
	"errors"
	"fmt"

	"github.com/miretskiy/zframe/zstd"
)

// ErrNotContiguous is returned when a source or destination buffer describes
// a strided layout with gaps. The codec reads and writes flat byte ranges,
// so both sides must be gap-free before any native call is made. Recoverable:
// retry with a dense buffer.
var ErrNotContiguous = errors.New("zframe: buffer layout is not contiguous")

// ErrFrameSize is returned when the frame header cannot be parsed for a
// content size, i.e. the compressed input is corrupt or truncated.
var ErrFrameSize = errors.New("zframe: cannot read frame content size")

// AlignmentError reports a byte count that does not divide evenly into the
// destination's element size: the requested element type does not match the
// frame's actual content.
type AlignmentError struct {
	ByteCount uint64
	ElemSize  uintptr
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("zframe: %d bytes is not a multiple of the %d-byte element size",
		e.ByteCount, e.ElemSize)
}

// IsAlignmentError is a helper to detect element-size mismatches.
func IsAlignmentError(err error) bool {
	var ae *AlignmentError
	return errors.As(err, &ae)
}

// CodecError carries a failure reported by the codec itself. Message is the
// codec's registered name for Code, verbatim. The destination buffer's
// contents are unspecified after a CodecError.
type CodecError struct {
	Code    uint64
	Message string
}

func (e *CodecError) Error() string {
	return "zframe: codec error: " + e.Message
}

// IsCodecError is a helper to detect failures originating in the codec.
func IsCodecError(err error) bool {
	var ce *CodecError
	return errors.As(err, &ce)
}

// translate interprets a raw code-or-size value from the engine. The value
// is a byte count only once IsError has said it is not a code.
func translate(eng zstd.Engine, res uint64) (uint64, error) {
	if eng.IsError(res) {
		return 0, &CodecError{Code: res, Message: eng.ErrorName(res)}
	}
	return res, nil
}
