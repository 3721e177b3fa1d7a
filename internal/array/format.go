package array

import (
	"fmt"
	"strings"
)

// printElementsLimit caps how many leading and trailing entries of an axis
// are rendered before the middle is elided.
const printElementsLimit = 3

// String renders the array in multiline style, NumPy-like: one bracket pair
// per dimension, long axes elided with "...". The formatter consumes only
// shape, strides and logical-order element access, never the storage kind.
func (a *Array[T]) String() string {
	var b strings.Builder
	formatArray(&b, a, printElementsLimit, 0)
	return b.String()
}

// toBePrinted returns which indexes of an axis should be printed. If the
// axis is longer than 2*limit, a -1 marks where indexes are being omitted.
func toBePrinted(length, limit int) []int {
	if length <= 2*limit {
		out := make([]int, length)
		for i := range out {
			out[i] = i
		}
		return out
	}
	out := make([]int, 0, 2*limit+1)
	for i := 0; i < limit; i++ {
		out = append(out, i)
	}
	out = append(out, -1)
	for i := length - limit; i < length; i++ {
		out = append(out, i)
	}
	return out
}

func format1d[T any](b *strings.Builder, view *Array[T], limit int) {
	cells := toBePrinted(view.shape[0], limit)

	b.WriteString("[")
	for j, idx := range cells {
		if idx < 0 {
			b.WriteString("..., ")
			continue
		}
		fmt.Fprint(b, view.At(idx))
		if j != len(cells)-1 {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
}

func formatArray[T any](b *strings.Builder, view *Array[T], limit, depth int) {
	// If any of the axes has 0 length, we render the same empty array
	// representation, e.g. [[]] for 2-d arrays.
	for _, dim := range view.shape {
		if dim == 0 {
			b.WriteString(strings.Repeat("[", len(view.shape)))
			b.WriteString(strings.Repeat("]", len(view.shape)))
			return
		}
	}

	switch len(view.shape) {
	case 0:
		// 0-dimensional: just the scalar.
		fmt.Fprint(b, view.At())
	case 1:
		format1d(b, view, limit)
	default:
		cells := toBePrinted(view.shape[0], limit)
		blankLines := strings.Repeat("\n", len(view.shape)-2)
		indent := strings.Repeat(" ", depth+1)

		b.WriteString("[")
		for j, idx := range cells {
			if idx < 0 {
				b.WriteString(indent)
				b.WriteString("...,\n")
				b.WriteString(blankLines)
				continue
			}
			// Indent all but the first line.
			if j != 0 {
				b.WriteString(indent)
			}
			// Proceed recursively with the (n-1)-dimensional slice.
			formatArray(b, view.Index(0, idx), limit, depth+1)
			// A separator after each slice, apart from the last one.
			if j != len(cells)-1 {
				b.WriteString(",\n")
				b.WriteString(blankLines)
			}
		}
		b.WriteString("]")
	}
}
