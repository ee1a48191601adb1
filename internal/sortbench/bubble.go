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

// Bubble sorts list ascending by repeated adjacent swaps and returns a
// new slice. Equal elements keep their relative order. Passes stop early
// once a full sweep performs no swap.
func Bubble(
	list []float64,
) []float64 {
	out := make([]float64, len(list))
	copy(out, list)

	for n := len(out); n > 1; n-- {
		swapped := false
		for i := 1; i < n; i++ {
			if out[i-1] > out[i] {
				out[i-1], out[i] = out[i], out[i-1]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out
}
