// Copyright 2026 Grid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides generic multidimensional arrays with explicit
// storage ownership.
//
// # Overview
//
// An Array[T] is a handle over one of four storage kinds:
//   - owned: a uniquely owned buffer, created by FromSlice or FromOwnedSlice
//   - shared: reference-counted with copy-on-write, entered via IntoShared
//   - immutable view: a borrow of memory owned elsewhere (View, ViewOf)
//   - mutable view: an exclusive borrow, directly writable (ViewMut, MutViewOf)
//
// The same array code works over all four; capabilities the kind does not
// support (mutating an immutable view, cloning a mutable view) are simply
// absent.
//
// # Copy-on-write
//
// Cloning a shared array is a reference-count increment. The first mutation
// through a handle whose buffer is still shared promotes it to exclusive
// ownership first: either a compacting copy of just the visible elements or
// a full duplication of the buffer, depending on how much of the buffer the
// handle can reach. Mutating entry points (Set, DataMut, MapInplace,
// ParMapInplace) run the promotion automatically; EnsureUnique exposes the
// gate directly.
//
// # Basic Usage
//
//	a, _ := array.FromSlice([]float64{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})
//	a.IntoShared()
//	b := a.Clone()          // cheap: shares the buffer
//	b.Set(42, 0, 0)         // copy-on-write: a is untouched
//	fmt.Println(a)
package array
