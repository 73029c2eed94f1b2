//go:build cgo

package zstd

/*
#cgo LDFLAGS: -lzstd

#include <zstd.h>

// Wrappers take void* arguments to avoid cgo argument-checking allocations.
// See https://github.com/golang/go/issues/24450 .

static size_t ZSTD_compress_wrapper(void *dst, size_t dstCapacity, void *src, size_t srcSize, int level) {
    return ZSTD_compress(dst, dstCapacity, (const void*)src, srcSize, level);
}

static size_t ZSTD_decompress_wrapper(void *dst, size_t dstCapacity, void *src, size_t srcSize) {
    return ZSTD_decompress(dst, dstCapacity, (const void*)src, srcSize);
}

static unsigned long long ZSTD_getFrameContentSize_wrapper(void *src, size_t srcSize) {
    return ZSTD_getFrameContentSize((const void*)src, srcSize);
}
*/
import "C"

import (
	"runtime"
	"unsafe"
)

// cEngine implements Engine directly over the system libzstd.
type cEngine struct{}

// Native returns the engine backed by libzstd.
func Native() Engine { return cEngine{} }

func ptr(b []byte) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(b))
}

func (cEngine) Compress(dst, src []byte, level int) uint64 {
	res := C.ZSTD_compress_wrapper(
		ptr(dst), C.size_t(len(dst)),
		ptr(src), C.size_t(len(src)),
		C.int(level))
	runtime.KeepAlive(dst)
	runtime.KeepAlive(src)
	return uint64(res)
}

func (cEngine) Decompress(dst, src []byte) uint64 {
	res := C.ZSTD_decompress_wrapper(
		ptr(dst), C.size_t(len(dst)),
		ptr(src), C.size_t(len(src)))
	runtime.KeepAlive(dst)
	runtime.KeepAlive(src)
	return uint64(res)
}

func (cEngine) FrameContentSize(src []byte) uint64 {
	res := C.ZSTD_getFrameContentSize_wrapper(ptr(src), C.size_t(len(src)))
	runtime.KeepAlive(src)
	return uint64(res)
}

func (cEngine) IsError(code uint64) bool {
	return C.ZSTD_isError(C.size_t(code)) != 0
}

func (cEngine) ErrorName(code uint64) string {
	return C.GoString(C.ZSTD_getErrorName(C.size_t(code)))
}

func (cEngine) CompressBound(srcSize int) int {
	return int(C.ZSTD_compressBound(C.size_t(srcSize)))
}

func (cEngine) MaxLevel() int { return int(C.ZSTD_maxCLevel()) }

func (cEngine) Version() int { return int(C.ZSTD_versionNumber()) }
