package array

import (
	"github.com/grid-ml/grid/internal/storage"
)

// CompactFraction controls when EnsureUnique compacts instead of fully
// duplicating: the compacting copy is taken when the handle's visible
// element count is at most CompactFraction of the backing buffer length.
// The value is a performance heuristic, not a correctness invariant.
var CompactFraction = 0.5

// SetCompactFraction replaces the compaction threshold and returns the
// previous value. Values outside (0, 1] effectively force one branch.
func SetCompactFraction(f float64) float64 {
	prev := CompactFraction
	CompactFraction = f
	return prev
}

// EnsureUnique establishes exclusive ownership of the handle's storage
// before a mutation. Owned buffers and mutable views are exclusive by
// construction, so only shared storage does any work:
//
//  1. If the reference count is 1, the buffer is already exclusive.
//  2. If the visible element count is at most CompactFraction of the buffer
//     length, a compacting copy materializes only the reachable elements in
//     logical order; the handle's offset becomes 0 and its strides become
//     contiguous. Elements outside the view are never carried forward.
//  3. Otherwise the entire buffer is duplicated and the offset carries over
//     unchanged, since it is a plain element index into an equal-length span.
//
// Either copy releases the old reference and leaves the handle on a fresh
// shared buffer with a reference count of 1; the storage kind stays shared
// for the rest of its life. The logical elements visible through the handle
// are identical before and after.
func (a *Array[T]) EnsureUnique() {
	s, ok := a.storage.(*storage.Shared[T])
	if !ok {
		return
	}
	if s.IsUnique() {
		return
	}

	if float64(a.shape.NumElements()) <= CompactFraction*float64(s.Len()) {
		elems := a.Elements()
		s.Release()
		a.storage = storage.NewOwned(elems).IntoShared()
		a.offset = 0
		a.strides = a.shape.ComputeStrides()
		return
	}

	dup := s.DeepClone()
	s.Release()
	a.storage = dup
}

// IsUnique reports whether mutation through this handle needs no copy:
// true for owned buffers and mutable views, true for shared storage with a
// single reference, false otherwise. Immutable views report false, since
// they have no mutation path at all.
func (a *Array[T]) IsUnique() bool {
	switch s := a.storage.(type) {
	case *storage.Shared[T]:
		return s.IsUnique()
	case storage.Mutable[T]:
		return true
	default:
		return false
	}
}
