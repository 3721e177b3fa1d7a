package array

import (
	"fmt"

	"github.com/grid-ml/grid/internal/storage"
)

// Array is a multidimensional array handle: a storage kind, a shape, strides
// and the current element offset. The offset is an integer index into the
// storage span, so a handle deep inside a larger backing buffer carries no
// pointer arithmetic, only the index.
//
// Dimension and stride descriptors are plain values owned by the handle;
// only the storage may be shared between handles.
type Array[T any] struct {
	storage storage.Storage[T]
	shape   Shape
	strides []int
	offset  int
}

// FromSlice creates an array from a copy of data.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array[T]{
		storage: storage.NewOwnedCopy(data),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// FromOwnedSlice creates an array that takes ownership of data without
// copying. The caller must not use the slice afterwards.
func FromOwnedSlice[T any](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array[T]{
		storage: storage.NewOwned(data),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// ViewOf creates a read-only array over memory owned elsewhere. The view
// must not outlive data's owner.
func ViewOf[T any](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array[T]{
		storage: storage.NewView(data),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// MutViewOf creates a writable array over memory owned elsewhere. The caller
// guarantees no other handle observes the same span while the view lives.
func MutViewOf[T any](data []T, shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	return &Array[T]{
		storage: storage.NewMutView(data),
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
	}, nil
}

// Zeros creates an array of zero values.
func Zeros[T any](shape Shape) *Array[T] {
	a, err := FromOwnedSlice(make([]T, shape.NumElements()), shape)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return a
}

// Full creates an array filled with a specific value.
func Full[T any](shape Shape, value T) *Array[T] {
	a := Zeros[T](shape)
	data := a.storage.Span()
	for i := range data {
		data[i] = value
	}
	return a
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the array's memory strides.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// NumElements returns the number of elements visible through this handle.
func (a *Array[T]) NumElements() int {
	return a.shape.NumElements()
}

// Offset returns the handle's element offset into the backing storage.
func (a *Array[T]) Offset() int {
	return a.offset
}

// Data returns the elements from the handle's current position to the end of
// the backing span, read-only by convention.
// WARNING: Direct access to underlying memory. Use with caution.
func (a *Array[T]) Data() []T {
	return a.storage.Span()[a.offset:]
}

// DataMut returns the same window as Data, writable. For shared-backed
// arrays the promotion protocol runs first, so the returned slice is always
// exclusive to this handle.
func (a *Array[T]) DataMut() []T {
	a.EnsureUnique()
	return a.mutSpan()[a.offset:]
}

// mutSpan returns the writable backing span, dispatching on capability.
// Shared storages yield one only after promotion; immutable views have no
// mutation path at all.
func (a *Array[T]) mutSpan() []T {
	switch s := a.storage.(type) {
	case storage.Mutable[T]:
		return s.MutSpan()
	case *storage.Shared[T]:
		return s.ExclusiveSpan()
	default:
		panic("array: mutation through an immutable view")
	}
}

// offsetOf maps a logical index to an element offset in the backing span.
func (a *Array[T]) offsetOf(indices []int) int {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("array: got %d indices for %d dimensions", len(indices), len(a.shape)))
	}
	off := a.offset
	for i, ix := range indices {
		if ix < 0 || ix >= a.shape[i] {
			panic(fmt.Sprintf("array: index %d out of range for axis %d with length %d", ix, i, a.shape[i]))
		}
		off += ix * a.strides[i]
	}
	return off
}

// At returns the element at the given indices.
func (a *Array[T]) At(indices ...int) T {
	return a.storage.Span()[a.offsetOf(indices)]
}

// Set writes the element at the given indices, promoting shared storage to
// exclusive first.
func (a *Array[T]) Set(value T, indices ...int) {
	a.EnsureUnique()
	a.mutSpan()[a.offsetOf(indices)] = value
}

// forEachOffset visits the element offsets reachable through this handle in
// logical (row-major) order.
func (a *Array[T]) forEachOffset(f func(off int)) {
	if a.shape.NumElements() == 0 {
		return
	}
	if len(a.shape) == 0 {
		f(a.offset)
		return
	}
	idx := make([]int, len(a.shape))
	for {
		off := a.offset
		for i, ix := range idx {
			off += ix * a.strides[i]
		}
		f(off)

		i := len(idx) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < a.shape[i] {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// Elements returns a copy of the visible elements in logical order.
func (a *Array[T]) Elements() []T {
	out := make([]T, 0, a.shape.NumElements())
	span := a.storage.Span()
	a.forEachOffset(func(off int) {
		out = append(out, span[off])
	})
	return out
}

// MapInplace applies f to every visible element, promoting shared storage
// to exclusive first.
func (a *Array[T]) MapInplace(f func(T) T) {
	a.EnsureUnique()
	span := a.mutSpan()
	a.forEachOffset(func(off int) {
		span[off] = f(span[off])
	})
}

// Clone duplicates the handle. The storage is duplicated exactly once via
// its clone-with-rebase capability and the single rebased offset is reused,
// so the clone is positionally identical to the original; shape and strides
// are copied as plain values. Cloning a mutable view is a contract
// violation (it would alias an exclusive borrow) and panics.
func (a *Array[T]) Clone() *Array[T] {
	c, ok := a.storage.(storage.Cloner[T])
	if !ok {
		panic("array: storage kind does not support duplication")
	}
	dup, off := c.CloneWithOffset(a.offset)
	return &Array[T]{
		storage: dup,
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		offset:  off,
	}
}

// IntoShared promotes owned storage to shared, enabling cheap duplication.
// The conversion is one-way and a no-op for every other storage kind.
func (a *Array[T]) IntoShared() *Array[T] {
	if o, ok := a.storage.(*storage.Owned[T]); ok {
		a.storage = o.IntoShared()
	}
	return a
}

// Release drops this handle's reference to shared storage. For every other
// storage kind it is a no-op; the garbage collector owns the buffer.
func (a *Array[T]) Release() {
	if s, ok := a.storage.(*storage.Shared[T]); ok {
		s.Release()
	}
}

// View returns a read-only borrowed handle over the same elements. The view
// must not outlive the receiver's storage.
func (a *Array[T]) View() *Array[T] {
	return &Array[T]{
		storage: storage.NewView(a.storage.Span()),
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		offset:  a.offset,
	}
}

// ViewMut returns a writable borrowed handle over the same elements,
// promoting shared storage to exclusive first. While the view lives the
// caller must not mutate through any other handle.
func (a *Array[T]) ViewMut() *Array[T] {
	a.EnsureUnique()
	return &Array[T]{
		storage: storage.NewMutView(a.mutSpan()),
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		offset:  a.offset,
	}
}

// Slice restricts the handle in place to the half-open range
// starts[i]..ends[i] on every axis. Only the offset and dimensions change;
// the storage is untouched.
func (a *Array[T]) Slice(starts, ends []int) *Array[T] {
	if len(starts) != len(a.shape) || len(ends) != len(a.shape) {
		panic(fmt.Sprintf("array: got %d..%d bounds for %d dimensions", len(starts), len(ends), len(a.shape)))
	}
	for i := range starts {
		if starts[i] < 0 || ends[i] < starts[i] || ends[i] > a.shape[i] {
			panic(fmt.Sprintf("array: slice %d..%d out of range for axis %d with length %d",
				starts[i], ends[i], i, a.shape[i]))
		}
	}
	for i := range starts {
		a.offset += starts[i] * a.strides[i]
		a.shape[i] = ends[i] - starts[i]
	}
	return a
}

// Index returns a borrowed subview with the given axis fixed at position i;
// the axis is dropped from the result.
func (a *Array[T]) Index(axis, i int) *Array[T] {
	if axis < 0 || axis >= len(a.shape) {
		panic(fmt.Sprintf("array: axis %d out of range for %d dimensions", axis, len(a.shape)))
	}
	if i < 0 || i >= a.shape[axis] {
		panic(fmt.Sprintf("array: index %d out of range for axis %d with length %d", i, axis, a.shape[axis]))
	}
	v := a.View()
	v.offset += i * v.strides[axis]
	v.shape = append(v.shape[:axis], v.shape[axis+1:]...)
	v.strides = append(v.strides[:axis], v.strides[axis+1:]...)
	return v
}
