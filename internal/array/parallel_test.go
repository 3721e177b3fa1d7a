package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grid-ml/grid/internal/parallel"
)

func TestParMapInplace(t *testing.T) {
	a, err := FromSlice(ints(1000), Shape{10, 100})
	require.NoError(t, err)

	a.ParMapInplace(func(x int) int { return x * 2 }, parallel.DefaultConfig())

	got := a.Elements()
	for i, v := range got {
		if v != i*2 {
			t.Fatalf("element %d = %d, want %d", i, v, i*2)
		}
	}
}

func TestParMapInplacePromotesShared(t *testing.T) {
	base := sharedBase(t, ints(100))
	h := base.Clone()

	h.ParMapInplace(func(x int) int { return x + 1 }, parallel.DefaultConfig())

	assert.Equal(t, 0, base.At(0), "the sibling handle must not observe the writes")
	assert.Equal(t, 1, h.At(0))
	assert.True(t, h.IsUnique())

	base.Release()
	h.Release()
}

func TestParMapInplaceStridedView(t *testing.T) {
	a, _ := FromSlice(ints(12), Shape{3, 4})
	a.Slice([]int{1, 0}, []int{3, 2})

	cfg := parallel.Config{Enabled: true, NumWorkers: 2, MinChunkSize: 1}
	a.ParMapInplace(func(x int) int { return -x }, cfg)

	assert.Equal(t, []int{-4, -5, -8, -9}, a.Elements())
}
