// Copyright (c) 2025 The itembench Authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package sortbench

// Quick sorts list ascending by recursive partitioning around the first
// element and returns a new slice. Elements strictly less than the pivot
// go left; greater-or-equal go right, so duplicates of the pivot land
// after it. Not in-place and not stable. Worst case O(n^2) on already
// sorted input given the first-element pivot.
func Quick(
	list []float64,
) []float64 {
	if len(list) <= 1 {
		out := make([]float64, len(list))
		copy(out, list)

		return out
	}

	pivot := list[0]
	less := make([]float64, 0, len(list)-1)
	greaterEq := make([]float64, 0, len(list)-1)
	for _, v := range list[1:] {
		if v < pivot {
			less = append(less, v)
		} else {
			greaterEq = append(greaterEq, v)
		}
	}

	out := Quick(less)
	out = append(out, pivot)
	out = append(out, Quick(greaterEq)...)

	return out
}
