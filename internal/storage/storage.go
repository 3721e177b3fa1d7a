// Package storage provides the ownership representations backing arrays.
//
// An array handle addresses its elements through one of four mutually
// exclusive storage kinds:
//   - Owned: a uniquely owned contiguous buffer
//   - Shared: a reference-counted buffer with copy-on-write semantics
//   - View: a non-owning read-only borrow of elements owned elsewhere
//   - MutView: a non-owning exclusive borrow, directly writable
//
// Capabilities are expressed as interfaces implemented only by the kinds
// that legitimately support them: mutation is absent from View, duplication
// is absent from MutView. The array layer never needs to check permissions
// at runtime beyond a type assertion.
package storage

import (
	"sync"
	"sync/atomic"
)

// Storage is the capability every kind supports: element addressing for the
// handle that carries it, plus a debug view of the owned elements.
type Storage[T any] interface {
	// Span returns the full backing element span. Handles address elements
	// as Span()[offset + dot(index, strides)].
	Span() []T

	// DataSlice returns the elements this storage owns, for debugging and
	// diagnostics only. Non-owning views return nil.
	DataSlice() []T
}

// Mutable is the capability of storages whose elements may be written
// directly, with no precondition. Implemented by Owned and MutView.
// Shared deliberately does not implement it: writable access to a shared
// buffer exists only after promotion (see ExclusiveSpan).
type Mutable[T any] interface {
	Storage[T]

	// MutSpan returns the full backing span, writable.
	MutSpan() []T
}

// Cloner is the capability of storages that can be duplicated together with
// a position rebased into the duplicate. The offset is an element index into
// Span; the returned offset addresses the same logical element in the new
// storage. MutView does not implement Cloner, since duplicating it would
// alias an exclusive borrow.
type Cloner[T any] interface {
	Storage[T]

	// CloneWithOffset duplicates the storage and rebases off into it.
	CloneWithOffset(off int) (Storage[T], int)
}

// Owned is a uniquely owned contiguous buffer.
type Owned[T any] struct {
	data []T
}

// NewOwned wraps elems as an owned buffer without copying. The caller gives
// up the slice; mutating it afterwards breaks the uniqueness contract.
func NewOwned[T any](elems []T) *Owned[T] {
	return &Owned[T]{data: elems}
}

// NewOwnedCopy materializes an owned buffer from a copy of elems.
func NewOwnedCopy[T any](elems []T) *Owned[T] {
	dup := make([]T, len(elems))
	copy(dup, elems)
	return &Owned[T]{data: dup}
}

// Span returns the owned buffer.
func (o *Owned[T]) Span() []T { return o.data }

// DataSlice returns the owned buffer.
func (o *Owned[T]) DataSlice() []T { return o.data }

// MutSpan returns the owned buffer, writable. Ownership is unique, so no
// precondition applies.
func (o *Owned[T]) MutSpan() []T { return o.data }

// Len returns the number of elements in the buffer.
func (o *Owned[T]) Len() int { return len(o.data) }

// CloneWithOffset deep-copies the buffer. The offset is an element index and
// carries over unchanged.
func (o *Owned[T]) CloneWithOffset(off int) (Storage[T], int) {
	dup := make([]T, len(o.data))
	copy(dup, o.data)
	return &Owned[T]{data: dup}, off
}

// IntoShared converts the owned buffer into a shared one around the same
// allocation, with a reference count of 1. The conversion is one-way: the
// receiver must not be used afterwards.
func (o *Owned[T]) IntoShared() *Shared[T] {
	s := &Shared[T]{buf: &sharedBuffer[T]{data: o.data}}
	s.buf.refCount.Store(1)
	o.data = nil
	return s
}

// sharedBuffer is a reference-counted buffer for copy-on-write semantics.
// This enables cheap cloning and in-place mutation when refCount == 1.
type sharedBuffer[T any] struct {
	data     []T
	refCount atomic.Int64
	mu       sync.Mutex // For safe deallocation
}

// addRef increments the reference count (for clone operations).
func (sb *sharedBuffer[T]) addRef() {
	sb.refCount.Add(1)
}

// release decrements the reference count and drops the allocation when it
// reaches 0.
func (sb *sharedBuffer[T]) release() {
	if sb.refCount.Add(-1) == 0 {
		sb.mu.Lock()
		defer sb.mu.Unlock()
		sb.data = nil
	}
}

// Shared is a reference-counted buffer. Multiple handles may address the
// same allocation; a handle must establish exclusivity before writing.
type Shared[T any] struct {
	buf *sharedBuffer[T]
}

// Span returns the shared buffer.
func (s *Shared[T]) Span() []T { return s.buf.data }

// DataSlice returns the shared buffer.
func (s *Shared[T]) DataSlice() []T { return s.buf.data }

// Len returns the number of elements in the buffer.
func (s *Shared[T]) Len() int { return len(s.buf.data) }

// IsUnique reports whether this handle is the only reference to the buffer.
// When true, in-place mutation needs no copy.
func (s *Shared[T]) IsUnique() bool {
	return s.buf.refCount.Load() == 1
}

// RefCount returns the current reference count.
func (s *Shared[T]) RefCount() int64 {
	return s.buf.refCount.Load()
}

// CloneWithOffset increments the reference count and shares the buffer.
// No element is copied and the offset is preserved unchanged.
func (s *Shared[T]) CloneWithOffset(off int) (Storage[T], int) {
	s.buf.addRef()
	return &Shared[T]{buf: s.buf}, off
}

// DeepClone copies the entire buffer into a fresh shared storage with a
// reference count of 1. The caller still holds its reference to the old
// buffer and must release it separately.
func (s *Shared[T]) DeepClone() *Shared[T] {
	dup := make([]T, len(s.buf.data))
	copy(dup, s.buf.data)
	out := &Shared[T]{buf: &sharedBuffer[T]{data: dup}}
	out.buf.refCount.Store(1)
	return out
}

// Release decrements the reference count; the allocation is dropped when the
// last reference goes away.
func (s *Shared[T]) Release() {
	s.buf.release()
}

// ExclusiveSpan returns the buffer writable. Callers must have established
// exclusivity first (the promotion protocol); a still-shared buffer is a
// programming error.
func (s *Shared[T]) ExclusiveSpan() []T {
	if !s.IsUnique() {
		panic("storage: exclusive access to a shared buffer without promotion")
	}
	return s.buf.data
}

// View is a non-owning read-only borrow of a span owned elsewhere. Its
// lifetime must not exceed the owner's.
type View[T any] struct {
	data []T
}

// NewView borrows data read-only.
func NewView[T any](data []T) *View[T] {
	return &View[T]{data: data}
}

// Span returns the borrowed span.
func (v *View[T]) Span() []T { return v.data }

// DataSlice returns nil: a view owns nothing.
func (v *View[T]) DataSlice() []T { return nil }

// CloneWithOffset copies the handle. Views are cheap to duplicate; the
// borrowed span and offset are preserved.
func (v *View[T]) CloneWithOffset(off int) (Storage[T], int) {
	return &View[T]{data: v.data}, off
}

// MutView is a non-owning exclusive borrow. Exclusivity is the caller's
// contract: no other handle may observe the same span while it lives.
// Mutation needs no copy-on-write, and duplication is not supported.
type MutView[T any] struct {
	data []T
}

// NewMutView borrows data exclusively.
func NewMutView[T any](data []T) *MutView[T] {
	return &MutView[T]{data: data}
}

// Span returns the borrowed span.
func (m *MutView[T]) Span() []T { return m.data }

// DataSlice returns nil: a view owns nothing.
func (m *MutView[T]) DataSlice() []T { return nil }

// MutSpan returns the borrowed span, writable.
func (m *MutView[T]) MutSpan() []T { return m.data }
