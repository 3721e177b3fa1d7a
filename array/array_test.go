// Copyright 2026 Grid ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"testing"

	"github.com/grid-ml/grid/array"
)

// TestArrayAPI verifies the Array type alias exposes the expected API.
func TestArrayAPI(t *testing.T) {
	a, err := array.FromSlice([]float32{0, 1, 2, 3, 4, 5}, array.Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	// Test Shape() method.
	if !a.Shape().Equal(array.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", a.Shape())
	}

	// Test NumElements() method.
	if n := a.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}

	// Test Strides() method.
	strides := a.Strides()
	if len(strides) != 2 || strides[0] != 3 || strides[1] != 1 {
		t.Errorf("Strides() = %v, want [3 1]", strides)
	}

	// Test At()/Set() methods.
	a.Set(42, 1, 2)
	if got := a.At(1, 2); got != 42 {
		t.Errorf("At(1, 2) = %v, want 42", got)
	}

	// Test Clone() method.
	clone := a.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil")
	}
	if got := clone.At(1, 2); got != 42 {
		t.Errorf("clone At(1, 2) = %v, want 42", got)
	}
}

// TestCopyOnWriteThroughPublicAPI walks the shared/copy-on-write lifecycle
// end to end through the facade.
func TestCopyOnWriteThroughPublicAPI(t *testing.T) {
	a, err := array.FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7}, array.Shape{8})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	a.IntoShared()

	b := a.Clone()
	if a.IsUnique() || b.IsUnique() {
		t.Error("After Clone(), neither handle should be unique")
	}

	b.Set(99, 0)
	if a.At(0) != 0 {
		t.Error("Copy-on-write should isolate the sibling handle")
	}
	if b.At(0) != 99 {
		t.Errorf("b.At(0) = %d, want 99", b.At(0))
	}
	if !b.IsUnique() {
		t.Error("After mutation, b should own its buffer exclusively")
	}

	a.Release()
	b.Release()
}

// TestViewsThroughPublicAPI verifies the borrow constructors.
func TestViewsThroughPublicAPI(t *testing.T) {
	backing := []int{1, 2, 3, 4}

	v, err := array.ViewOf(backing, array.Shape{4})
	if err != nil {
		t.Fatalf("ViewOf failed: %v", err)
	}
	if got := v.At(2); got != 3 {
		t.Errorf("view At(2) = %d, want 3", got)
	}

	m, err := array.MutViewOf(backing, array.Shape{4})
	if err != nil {
		t.Fatalf("MutViewOf failed: %v", err)
	}
	m.Set(42, 0)
	if backing[0] != 42 {
		t.Error("mutable view should write through to the borrowed memory")
	}
}

// TestParMapInplaceThroughPublicAPI exercises the parallel iteration entry
// point via the facade.
func TestParMapInplaceThroughPublicAPI(t *testing.T) {
	a := array.Full(array.Shape{16, 16}, 1)
	a.ParMapInplace(func(x int) int { return x + 1 }, array.DefaultParallelConfig())

	for _, v := range a.Elements() {
		if v != 2 {
			t.Fatalf("element = %d, want 2", v)
		}
	}
}

// TestFormatting verifies the multiline renderer through the facade.
func TestFormatting(t *testing.T) {
	a, _ := array.FromSlice([]int{0, 1, 2, 3, 4, 5}, array.Shape{2, 3})
	want := "[[0, 1, 2],\n [3, 4, 5]]"
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
