package zstd

import (
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Error codes mirror libzstd's ZSTD_ErrorCode values so that IsError and
// ErrorName behave identically across engines. An error return is the
// two's-complement of its code, exactly as libzstd encodes size_t errors.
const (
	errGeneric                   = 1
	errPrefixUnknown             = 10
	errVersionUnsupported        = 12
	errFrameParameterUnsupported = 14
	errCorruptionDetected        = 20
	errChecksumWrong             = 22
	errMemoryAllocation          = 64
	errDstSizeTooSmall           = 70
	errSrcSizeWrong              = 72
	errMaxCode                   = 120
)

var errorNames = map[uint64]string{
	errGeneric:                   "Error (generic)",
	errPrefixUnknown:             "Unknown frame descriptor",
	errVersionUnsupported:        "Version not supported",
	errFrameParameterUnsupported: "Unsupported frame parameter",
	errCorruptionDetected:        "Data corruption detected",
	errChecksumWrong:             "Restored data doesn't match checksum",
	errMemoryAllocation:          "Allocation error : not enough memory",
	errDstSizeTooSmall:           "Destination buffer is too small",
	errSrcSizeWrong:              "Src size is incorrect",
}

func errCode(n uint64) uint64 { return ^uint64(0) - n + 1 }

// goEngine implements Engine on top of the klauspost Zstandard port. It
// needs no native library and is the default on builds without cgo.
type goEngine struct{}

// Pure returns the self-contained Go engine.
func Pure() Engine { return goEngine{} }

// emulatedVersion is the libzstd release whose frame behavior and error-code
// space this engine mirrors (1.5.6).
const emulatedVersion = 1*10000 + 5*100 + 6

var decoders = sync.Pool{
	New: func() any {
		d, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		return d
	},
}

// Encoders are expensive to build, so one per requested level is cached for
// the process lifetime.
var encoders struct {
	sync.Mutex
	byLevel map[int]*zstd.Encoder
}

func encoderFor(level int) (*zstd.Encoder, error) {
	encoders.Lock()
	defer encoders.Unlock()
	if e, ok := encoders.byLevel[level]; ok {
		return e, nil
	}
	e, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true))
	if err != nil {
		return nil, err
	}
	if encoders.byLevel == nil {
		encoders.byLevel = make(map[int]*zstd.Encoder)
	}
	encoders.byLevel[level] = e
	return e, nil
}

func (goEngine) Compress(dst, src []byte, level int) uint64 {
	enc, err := encoderFor(level)
	if err != nil {
		return errCode(errGeneric)
	}
	res := enc.EncodeAll(src, dst[:0])
	if len(res) > len(dst) {
		return errCode(errDstSizeTooSmall)
	}
	if len(res) > 0 && &res[0] != &dst[0] {
		copy(dst, res)
	}
	return uint64(len(res))
}

func (goEngine) Decompress(dst, src []byte) uint64 {
	dec := decoders.Get().(*zstd.Decoder)
	defer decoders.Put(dec)
	res, err := dec.DecodeAll(src, dst[:0])
	if err != nil {
		return errCode(decodeErrorCode(err))
	}
	if len(res) > len(dst) {
		return errCode(errDstSizeTooSmall)
	}
	if len(res) > 0 && &res[0] != &dst[0] {
		copy(dst, res)
	}
	return uint64(len(res))
}

func decodeErrorCode(err error) uint64 {
	switch {
	case errors.Is(err, zstd.ErrMagicMismatch):
		return errPrefixUnknown
	case errors.Is(err, zstd.ErrCRCMismatch):
		return errChecksumWrong
	case errors.Is(err, zstd.ErrFrameSizeExceeded), errors.Is(err, zstd.ErrFrameSizeMismatch):
		return errSrcSizeWrong
	case errors.Is(err, zstd.ErrWindowSizeExceeded):
		return errFrameParameterUnsupported
	case errors.Is(err, zstd.ErrDecoderSizeExceeded):
		return errMemoryAllocation
	default:
		return errCorruptionDetected
	}
}

func (goEngine) FrameContentSize(src []byte) uint64 {
	var h zstd.Header
	if err := h.Decode(src); err != nil {
		return ContentSizeError
	}
	if h.Skippable {
		// Skippable frames decompress to nothing.
		return 0
	}
	if !h.HasFCS {
		return ContentSizeUnknown
	}
	return h.FrameContentSize
}

func (goEngine) IsError(code uint64) bool { return code > errCode(errMaxCode) }

func (goEngine) ErrorName(code uint64) string {
	if name, ok := errorNames[errCode(code)]; ok {
		return name
	}
	return "Unspecified error code"
}

// CompressBound replicates the ZSTD_COMPRESSBOUND macro.
func (goEngine) CompressBound(srcSize int) int {
	margin := 0
	if srcSize < 128<<10 {
		margin = ((128 << 10) - srcSize) >> 11
	}
	return srcSize + (srcSize >> 8) + margin
}

func (goEngine) MaxLevel() int { return 22 }

func (goEngine) Version() int { return emulatedVersion }
