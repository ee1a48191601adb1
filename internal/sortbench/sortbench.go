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

// Package sortbench runs instrumented sorting-algorithm benchmarks.
package sortbench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/itembench/itembench/internal/sysinfo"
)

// Algorithm names used as keys in benchmark responses.
const (
	AlgorithmBubble          = "bubble_sort"
	AlgorithmQuick           = "quick_sort"
	AlgorithmBinaryInsertion = "binary_insertion_sort"
)

// Result describes one instrumented algorithm run.
type Result struct {
	// SortedList is the sorted copy of the input.
	SortedList []float64 `json:"sorted_list"`
	// ElapsedTime is the wall-clock duration with unit, e.g. "0.42 ms".
	ElapsedTime string `json:"elapsed_time"`
	// MemoryUsage is the heap-allocation delta with unit, e.g. "0.13 MB".
	// It is a best-effort diagnostic and may be negative after a GC cycle.
	MemoryUsage string `json:"memory_usage"`
	// CPUUsage is the load-average delta normalized by CPU count, e.g.
	// "2.75 %". A coarse host-level proxy, not per-process accounting.
	CPUUsage string `json:"cpu_usage"`
}

// Runner executes the benchmark suite over a resource sampler.
type Runner struct {
	logger  *slog.Logger
	sampler *sysinfo.Sampler
}

// New creates a Runner.
func New(
	logger *slog.Logger,
	sampler *sysinfo.Sampler,
) *Runner {
	return &Runner{
		logger:  logger,
		sampler: sampler,
	}
}

// Run executes bubble, quick, and binary-insertion sort sequentially,
// each on its own copy of list, and returns the instrumented results
// keyed by algorithm name. The input is never mutated.
func (r *Runner) Run(
	list []float64,
) map[string]Result {
	algorithms := []struct {
		name string
		fn   func([]float64) []float64
	}{
		{AlgorithmBubble, Bubble},
		{AlgorithmQuick, Quick},
		{AlgorithmBinaryInsertion, BinaryInsertion},
	}

	results := make(map[string]Result, len(algorithms))
	for _, alg := range algorithms {
		results[alg.name] = r.measure(alg.name, alg.fn, list)
	}

	return results
}

// measure runs one algorithm on a copy of list, sampling heap usage and
// host load before and after.
func (r *Runner) measure(
	name string,
	fn func([]float64) []float64,
	list []float64,
) Result {
	input := make([]float64, len(list))
	copy(input, list)

	heapBefore := r.sampler.Memory().HeapUsed
	loadBefore := r.sampler.LoadAverage()
	start := time.Now()

	sorted := fn(input)

	elapsed := time.Since(start)
	heapAfter := r.sampler.Memory().HeapUsed
	loadAfter := r.sampler.LoadAverage()

	heapDeltaMB := (float64(heapAfter) - float64(heapBefore)) / 1024.0 / 1024.0
	cpuDelta := (loadAfter - loadBefore) * 100 / float64(r.sampler.NumCPUFn())

	r.logger.Debug(
		"sort benchmark completed",
		slog.String("algorithm", name),
		slog.Int("elements", len(list)),
		slog.Duration("elapsed", elapsed),
	)

	return Result{
		SortedList:  sorted,
		ElapsedTime: fmt.Sprintf("%.2f ms", float64(elapsed.Nanoseconds())/1e6),
		MemoryUsage: fmt.Sprintf("%.2f MB", heapDeltaMB),
		CPUUsage:    fmt.Sprintf("%.2f %%", cpuDelta),
	}
}
