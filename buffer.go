package zframe

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"unsafe"
)

// Element restricts buffers to fixed-size scalar types. Anything admitted
// here has no indirection and can be handed to the codec as a raw byte range.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

func elemSize[T Element]() uintptr {
	var z T
	return unsafe.Sizeof(z)
}

// Buffer is a resizable, caller-owned sequence of elements. Buffers from New
// or Wrap are dense one-dimensional layouts; View constructs a strided
// multi-dimensional layout over an existing slice, which the codec accepts
// only when it is gap-free.
//
// A Buffer is not safe for concurrent mutation; it belongs to one call at a
// time.
type Buffer[T Element] struct {
	data    []T
	extents []int
	strides []int // element strides; nil for dense layouts
}

// New returns a dense buffer of n elements.
func New[T Element](n int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, n)}
}

// Wrap returns a dense buffer over data. The buffer takes over the slice:
// resizes may reuse or replace its backing array.
func Wrap[T Element](data []T) *Buffer[T] {
	return &Buffer[T]{data: data}
}

// View returns a buffer describing a strided layout over data, with
// per-dimension extents and strides given in elements.
func View[T Element](data []T, extents, strides []int) *Buffer[T] {
	if len(extents) != len(strides) {
		panic("zframe: extents and strides length mismatch")
	}
	return &Buffer[T]{
		data:    data,
		extents: slices.Clone(extents),
		strides: slices.Clone(strides),
	}
}

// Len returns the logical element count.
func (b *Buffer[T]) Len() int {
	if b.strides == nil {
		return len(b.data)
	}
	n := 1
	for _, e := range b.extents {
		n *= e
	}
	return n
}

// Cap returns the element capacity of the backing array.
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// Data returns the backing elements.
func (b *Buffer[T]) Data() []T { return b.data }

// Contiguous reports whether the layout has no gaps: walking the dimensions
// from the smallest stride up, each stride must equal the running product of
// the extents already visited. Dense buffers are trivially contiguous, as is
// any layout with a zero extent (it holds no elements).
func (b *Buffer[T]) Contiguous() bool {
	if b.strides == nil {
		return true
	}
	order := make([]int, len(b.strides))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int {
		return cmp.Compare(b.strides[i], b.strides[j])
	})
	want := 1
	for _, d := range order {
		if b.extents[d] == 0 {
			return true
		}
		if b.strides[d] != want {
			return false
		}
		want *= b.extents[d]
	}
	return true
}

// dense returns the logical elements of a contiguous buffer.
func (b *Buffer[T]) dense() []T { return b.data[:b.Len()] }

// bytes exposes the buffer's elements as a flat byte range for the codec.
func (b *Buffer[T]) bytes() []byte {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.data))),
		uintptr(len(b.data))*elemSize[T]())
}

// resizeBytes grows or shrinks the buffer to hold exactly byteCount bytes,
// reusing the backing array when its capacity suffices. The count must be a
// whole number of elements.
func (b *Buffer[T]) resizeBytes(byteCount uint64) error {
	size := elemSize[T]()
	if byteCount%uint64(size) != 0 {
		return &AlignmentError{ByteCount: byteCount, ElemSize: size}
	}
	n := byteCount / uint64(size)
	if n > math.MaxInt {
		return fmt.Errorf("zframe: content size %d overflows the address space", byteCount)
	}
	b.setLen(int(n))
	return nil
}

// setLen resizes to n elements. Any strided shape collapses to dense.
func (b *Buffer[T]) setLen(n int) {
	if cap(b.data) < n {
		b.data = slices.Grow(b.data[:0], n)
	}
	b.data = b.data[:n]
	b.extents, b.strides = nil, nil
}
