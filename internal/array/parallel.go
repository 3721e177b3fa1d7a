package array

import (
	"github.com/grid-ml/grid/internal/parallel"
)

// ParMapInplace applies f to every visible element using the worker pool.
// The promotion protocol runs first, so each worker writes through an
// exclusive buffer; workers touch disjoint elements and need no locking.
func (a *Array[T]) ParMapInplace(f func(T) T, cfg parallel.Config) {
	a.EnsureUnique()
	span := a.mutSpan()

	offs := make([]int, 0, a.shape.NumElements())
	a.forEachOffset(func(off int) {
		offs = append(offs, off)
	})

	parallel.For(len(offs), func(i int) {
		span[offs[i]] = f(span[offs[i]])
	}, cfg)
}
