package bitvecgo

import (
	"testing"

	"github.com/hupe1980/bitvecgo/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeros(t *testing.T) {
	v := Zeros[block.U64x4, uint64](300)

	assert.Equal(t, 300, v.Len())
	assert.Equal(t, 2, v.StorageLen())
	assert.Equal(t, 0, v.OnesCount())
	assert.True(t, v.IsEmpty())
}

func TestOnes(t *testing.T) {
	t.Run("Partial", func(t *testing.T) {
		v := Ones[block.U64x4, uint64](300)

		assert.Equal(t, 300, v.Len())
		assert.Equal(t, 300, v.OnesCount())
		assert.True(t, v.All())

		ok, in := v.Get(299)
		assert.True(t, ok)
		assert.True(t, in)
	})

	t.Run("BlockAligned", func(t *testing.T) {
		v := Ones[block.U64x4, uint64](256)

		assert.Equal(t, 256, v.OnesCount())
		assert.Equal(t, 1, v.StorageLen())
	})

	t.Run("LaneAligned", func(t *testing.T) {
		// Length on a lane boundary inside a block must not leak set
		// bits into the following lanes.
		v := Ones[block.U64x4, uint64](64)

		assert.Equal(t, 64, v.OnesCount())
		assert.Equal(t, 1, v.StorageLen())
	})

	t.Run("Empty", func(t *testing.T) {
		v := Ones[block.U64x4, uint64](0)

		assert.Equal(t, 0, v.Len())
		assert.Equal(t, 0, v.StorageLen())
	})
}

func TestFromBools(t *testing.T) {
	bools := make([]bool, 16)
	for i := range bools {
		bools[i] = i%3 == 0
	}

	v := FromBools[block.U64x4, uint64](bools)

	require.Equal(t, 16, v.Len())

	for i, want := range bools {
		assert.Equal(t, want, v.At(i), "bit %d", i)
	}

	assert.Equal(t, 6, v.OnesCount())
	assert.Equal(t, []int{0, 3, 6, 9, 12, 15}, v.ToIndices())
}

func TestFromBoolSeq_MultiBlock(t *testing.T) {
	n := 700
	v := FromBoolSeq[block.U64x4, uint64](func(yield func(bool) bool) {
		for i := range n {
			if !yield(i%7 == 0) {
				return
			}
		}
	})

	require.Equal(t, n, v.Len())

	want := 0
	for i := 0; i < n; i += 7 {
		assert.True(t, v.At(i))
		want++
	}

	assert.Equal(t, want, v.OnesCount())
}

func TestFromIndices(t *testing.T) {
	v := FromIndices[block.U64x4, uint64]([]int{0, 5, 9})

	assert.Equal(t, 10, v.Len())
	assert.Equal(t, []int{0, 5, 9}, v.ToIndices())

	// An index beyond the initial length grows the vector.
	v = FromIndices[block.U64x4, uint64]([]int{1, 300})

	assert.Equal(t, 301, v.Len())
	assert.Equal(t, []int{1, 300}, v.ToIndices())
}

func TestFromIndicesWithLength(t *testing.T) {
	v := FromIndicesWithLength[block.U64x4, uint64]([]int{2, 4}, 100)

	assert.Equal(t, 100, v.Len())
	assert.Equal(t, []int{2, 4}, v.ToIndices())
}

func TestFromLanes(t *testing.T) {
	lanes := []uint64{0b1011, 1}

	v := FromLanes[block.U64x4, uint64](lanes, 70)

	assert.Equal(t, 70, v.Len())
	assert.Equal(t, []int{0, 1, 3, 64}, v.ToIndices())

	// The tail beyond nbits is cleared even when the source sets it.
	v = FromLanes[block.U64x4, uint64]([]uint64{^uint64(0)}, 10)

	assert.Equal(t, 10, v.OnesCount())

	assert.PanicsWithValue(t, "bitvecgo: lane buffer too short: 1 lanes, need 2", func() {
		FromLanes[block.U64x4, uint64]([]uint64{1}, 70)
	})
}

func TestClone(t *testing.T) {
	v := Ones[block.U64x4, uint64](100)
	c := v.Clone()

	require.True(t, v.Equal(c))

	c.Set(0, false)

	assert.True(t, v.At(0))
	assert.False(t, c.At(0))
}

func TestLanesRoundTrip(t *testing.T) {
	v := FromIndices[block.U64x4, uint64]([]int{3, 77, 200})

	lanes := v.Lanes()
	require.Len(t, lanes, v.StorageLen()*4)

	w := FromLanes[block.U64x4, uint64](lanes, v.Len())
	assert.True(t, v.Equal(w))
}

func TestTrimmedLanes(t *testing.T) {
	// Only trailing zero lanes of the final block are dropped.
	v := Zeros[block.U64x4, uint64](512)
	v.Set(0, true)

	lanes := v.trimmedLanes()
	assert.Len(t, lanes, 4)

	v.Set(511, true)

	lanes = v.trimmedLanes()
	assert.Len(t, lanes, 8)
}

func TestSmallShapes(t *testing.T) {
	// The same logical content must behave identically across shapes.
	idx := []int{0, 7, 15, 16, 31, 90}

	v8 := FromIndices[block.U8x16, uint8](idx)
	v16 := FromIndices[block.U16x8, uint16](idx)
	v32 := FromIndices[block.U32x4, uint32](idx)
	v128 := FromIndices[block.U64x2, uint64](idx)
	v256 := FromIndices[block.U32x8, uint32](idx)

	assert.Equal(t, idx, v8.ToIndices())
	assert.Equal(t, idx, v16.ToIndices())
	assert.Equal(t, idx, v32.ToIndices())
	assert.Equal(t, idx, v128.ToIndices())
	assert.Equal(t, idx, v256.ToIndices())

	assert.Equal(t, v8.OnesCount(), v256.OnesCount())
}
