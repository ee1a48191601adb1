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

package perflog

import "errors"

// ErrEmpty indicates the performance log holds no records.
var ErrEmpty = errors.New("performance log is empty")

// Record is one performance measurement, appended after a request's
// response has been written. Records are newline-delimited JSON and
// never mutated after append.
type Record struct {
	// ID is a unique identifier for this record.
	ID string `json:"id"`
	// Timestamp is the RFC 3339 completion time.
	Timestamp string `json:"timestamp"`
	// Endpoint is the method and path, e.g. "GET /items".
	Endpoint string `json:"endpoint"`
	// RSS is the process resident set size in bytes.
	RSS uint64 `json:"rss"`
	// HeapTotal is the heap memory reserved from the OS in bytes.
	HeapTotal uint64 `json:"heap_total"`
	// HeapUsed is the heap memory currently allocated in bytes.
	HeapUsed uint64 `json:"heap_used"`
	// ElapsedMS is the wall-clock handler duration in milliseconds,
	// formatted with two decimals.
	ElapsedMS string `json:"elapsed_ms"`
	// CPUPct is the load-average CPU proxy as a two-decimal percentage.
	CPUPct string `json:"cpu_pct"`
	// MemoryMB is the resident set in mebibytes with two decimals.
	MemoryMB string `json:"memory_mb"`
}
