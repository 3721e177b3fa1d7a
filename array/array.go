// Copyright 2026 Grid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/grid-ml/grid/internal/array"
)

// Type aliases for public API

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// Array is a generic multidimensional array handle: storage, shape, strides
// and the current element offset. Only the storage may be shared between
// handles; everything else is plain value data.
//
// Example:
//
//	a, _ := array.FromSlice([]int{0, 1, 2, 3, 4, 5}, array.Shape{2, 3})
//	a.IntoShared()
//	b := a.Clone() // reference-count increment, no copy
type Array[T any] = array.Array[T]

// Creation functions

// FromSlice creates an array from a copy of data.
//
// Example:
//
//	a, err := array.FromSlice([]float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return array.FromSlice(data, shape)
}

// FromOwnedSlice creates an array that takes ownership of data without
// copying. The caller must not use the slice afterwards.
func FromOwnedSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return array.FromOwnedSlice(data, shape)
}

// ViewOf creates a read-only array over memory owned elsewhere. The view
// must not outlive the owner of data.
func ViewOf[T any](data []T, shape Shape) (*Array[T], error) {
	return array.ViewOf(data, shape)
}

// MutViewOf creates a writable array over memory owned elsewhere. The
// caller guarantees no other handle observes the same span while the view
// lives; exclusivity comes from that contract, not from a lock.
func MutViewOf[T any](data []T, shape Shape) (*Array[T], error) {
	return array.MutViewOf(data, shape)
}

// Zeros creates an array of zero values.
//
// Example:
//
//	a := array.Zeros[float32](array.Shape{2, 3})
func Zeros[T any](shape Shape) *Array[T] {
	return array.Zeros[T](shape)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := array.Full(array.Shape{3, 3}, 3.14)
func Full[T any](shape Shape, value T) *Array[T] {
	return array.Full(shape, value)
}

// SetCompactFraction replaces the copy-on-write compaction threshold and
// returns the previous value: promotion takes a compacting copy when the
// handle's visible element count is at most this fraction of the backing
// buffer length, and a full duplication otherwise. The default is 0.5.
// The threshold is a performance heuristic; any value is correct.
func SetCompactFraction(f float64) float64 {
	return array.SetCompactFraction(f)
}
