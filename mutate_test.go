package bitvecgo

import (
	"testing"

	"github.com/hupe1980/bitvecgo/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	v := Zeros[block.U64x4, uint64](10)
	v.Set(3, true)

	on, ok := v.Get(3)
	assert.True(t, ok)
	assert.True(t, on)

	on, ok = v.Get(4)
	assert.True(t, ok)
	assert.False(t, on)

	// Out of range reads report absence instead of growing.
	_, ok = v.Get(10)
	assert.False(t, ok)

	_, ok = v.Get(-1)
	assert.False(t, ok)

	assert.Equal(t, 10, v.Len())
}

func TestAt_PanicsOutOfRange(t *testing.T) {
	v := Zeros[block.U64x4, uint64](10)

	assert.Panics(t, func() { v.At(10) })
	assert.Panics(t, func() { v.At(-1) })
}

func TestSet_Grows(t *testing.T) {
	v := Zeros[block.U64x4, uint64](10)
	v.Set(15, true)

	require.Equal(t, 16, v.Len())
	assert.True(t, v.At(15))
	assert.Equal(t, 1, v.OnesCount())

	// Growth past the block boundary appends zero blocks.
	v.Set(300, true)

	require.Equal(t, 301, v.Len())
	require.Equal(t, 2, v.StorageLen())
	assert.Equal(t, []int{15, 300}, v.ToIndices())

	assert.Panics(t, func() { v.Set(-1, true) })
}

func TestSet_ClearDoesNotShrink(t *testing.T) {
	v := Ones[block.U64x4, uint64](20)
	v.Set(5, false)

	assert.Equal(t, 20, v.Len())
	assert.Equal(t, 19, v.OnesCount())
	assert.False(t, v.At(5))
}

func TestSetAll(t *testing.T) {
	v := Zeros[block.U64x4, uint64](300)

	v.SetAll(true)
	assert.Equal(t, 300, v.OnesCount())
	assert.True(t, v.All())

	v.SetAll(false)
	assert.Equal(t, 0, v.OnesCount())

	// Lane-aligned length must stay exact after a fill.
	v = Zeros[block.U64x4, uint64](128)
	v.SetAllTrue()
	assert.Equal(t, 128, v.OnesCount())
}

func TestResize_Shrink(t *testing.T) {
	v := Ones[block.U64x4, uint64](300)
	v.Resize(100, false)

	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 1, v.StorageLen())
	assert.Equal(t, 100, v.OnesCount())

	// Growing again must expose zeros, not stale ones.
	v.Resize(300, false)

	assert.Equal(t, 300, v.Len())
	assert.Equal(t, 100, v.OnesCount())
}

func TestResize_GrowZeroFill(t *testing.T) {
	v := Ones[block.U64x4, uint64](10)
	v.Resize(500, false)

	assert.Equal(t, 500, v.Len())
	assert.Equal(t, 10, v.OnesCount())
}

func TestResize_GrowOnesFill(t *testing.T) {
	t.Run("WithinBlock", func(t *testing.T) {
		v := Zeros[block.U64x4, uint64](10)
		v.Resize(20, true)

		assert.Equal(t, 20, v.Len())
		assert.Equal(t, 10, v.OnesCount())
		assert.False(t, v.At(9))
		assert.True(t, v.At(10))
		assert.True(t, v.At(19))
	})

	t.Run("AcrossLanes", func(t *testing.T) {
		v := Zeros[block.U64x4, uint64](60)
		v.Resize(200, true)

		assert.Equal(t, 140, v.OnesCount())
		assert.False(t, v.At(59))
		assert.True(t, v.At(60))
		assert.True(t, v.At(199))
	})

	t.Run("AcrossBlocks", func(t *testing.T) {
		v := Zeros[block.U64x4, uint64](100)
		v.Resize(600, true)

		assert.Equal(t, 500, v.OnesCount())
		assert.True(t, v.At(100))
		assert.True(t, v.At(599))
	})

	t.Run("AlignedOldBoundary", func(t *testing.T) {
		v := Zeros[block.U64x4, uint64](256)
		v.Resize(300, true)

		assert.Equal(t, 44, v.OnesCount())
		assert.True(t, v.At(256))
	})
}

func TestResize_SameLength(t *testing.T) {
	v := Ones[block.U64x4, uint64](100)
	v.Resize(100, true)

	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 100, v.OnesCount())
}

func TestResize_NegativePanics(t *testing.T) {
	v := Zeros[block.U64x4, uint64](10)

	assert.Panics(t, func() { v.Resize(-1, false) })
}

func TestShrinkTo(t *testing.T) {
	v := Ones[block.U64x4, uint64](100)
	v.ShrinkTo(10)

	assert.Equal(t, 10, v.Len())
	assert.Equal(t, 10, v.OnesCount())

	// ShrinkTo is strictly a truncation.
	assert.Panics(t, func() { v.ShrinkTo(10) })
	assert.Panics(t, func() { v.ShrinkTo(50) })
}
