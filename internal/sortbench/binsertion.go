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

// BinaryInsertion sorts list ascending by insertion sort with a binary
// search for each insertion point, returning a new slice. The search
// bisects right past equal elements, so equal elements keep their
// relative order. O(n log n) comparisons, O(n^2) element moves.
func BinaryInsertion(
	list []float64,
) []float64 {
	out := make([]float64, 0, len(list))
	for _, v := range list {
		idx := bisectRight(out, v)
		out = append(out, 0)
		copy(out[idx+1:], out[idx:])
		out[idx] = v
	}

	return out
}

// bisectRight returns the highest index at which v can be inserted into
// sorted while keeping it ordered.
func bisectRight(
	sorted []float64,
	v float64,
) int {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid] <= v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}
