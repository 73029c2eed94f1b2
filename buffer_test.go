package zframe

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_Contiguous(t *testing.T) {
	data := make([]byte, 64)

	tests := []struct {
		name string
		buf  *Buffer[byte]
		want bool
	}{
		{"dense new", New[byte](16), true},
		{"dense wrap", Wrap(data), true},
		{"dense empty", New[byte](0), true},
		{"unit stride view", View(data, []int{16}, []int{1}), true},
		{"gapped 1-d", View(data, []int{8}, []int{2}), false},
		{"row-major 2-d", View(data, []int{3, 4}, []int{4, 1}), true},
		{"column-major 2-d", View(data, []int{3, 4}, []int{1, 3}), true},
		{"padded rows", View(data, []int{3, 4}, []int{5, 1}), false},
		{"singleton dim", View(data, []int{1, 4}, []int{4, 1}), true},
		{"zero extent", View(data, []int{0, 4}, []int{7, 1}), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.buf.Contiguous())
		})
	}
}

func TestView_ShapeMismatchPanics(t *testing.T) {
	require.Panics(t, func() {
		View(make([]byte, 8), []int{2, 4}, []int{1})
	})
}

func TestBuffer_Len(t *testing.T) {
	require.Equal(t, 10, New[uint32](10).Len())
	require.Equal(t, 12, View(make([]byte, 64), []int{3, 4}, []int{4, 1}).Len())
	require.Equal(t, 0, View(make([]byte, 64), []int{0, 4}, []int{4, 1}).Len())
}

func TestBuffer_ResizeBytes(t *testing.T) {
	b := New[uint32](0)
	require.NoError(t, b.resizeBytes(16))
	require.Equal(t, 4, b.Len())

	// Misaligned byte counts must not resize.
	err := b.resizeBytes(10)
	require.True(t, IsAlignmentError(err))
	var ae *AlignmentError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, uint64(10), ae.ByteCount)
	require.Equal(t, uintptr(4), ae.ElemSize)
	require.Equal(t, 4, b.Len())
}

func TestBuffer_ResizeReusesCapacity(t *testing.T) {
	b := New[uint16](128)
	base := &b.data[0]

	b.setLen(16)
	require.Equal(t, 16, b.Len())
	require.GreaterOrEqual(t, b.Cap(), 128)
	require.Same(t, base, &b.data[0])

	b.setLen(128)
	require.Same(t, base, &b.data[0])

	b.setLen(256)
	require.Equal(t, 256, b.Len())
	require.NotSame(t, base, &b.data[0])
}

func TestBuffer_SetLenCollapsesView(t *testing.T) {
	b := View(make([]byte, 64), []int{3, 4}, []int{5, 1})
	require.False(t, b.Contiguous())
	b.setLen(8)
	require.True(t, b.Contiguous())
	require.Equal(t, 8, b.Len())
}

func TestBuffer_Bytes(t *testing.T) {
	b := Wrap([]uint32{0x04030201, 0x08070605})
	want := make([]byte, 8)
	binary.NativeEndian.PutUint32(want, 0x04030201)
	binary.NativeEndian.PutUint32(want[4:], 0x08070605)
	require.Equal(t, want, b.bytes())
	require.Nil(t, New[uint64](0).bytes())
}
