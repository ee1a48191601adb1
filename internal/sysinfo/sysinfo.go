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

// Package sysinfo samples process and host resource usage.
package sysinfo

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
)

// Memory is a point-in-time memory sample for the current process.
type Memory struct {
	// RSS is the resident set size in bytes.
	RSS uint64
	// HeapTotal is the heap memory reserved from the OS in bytes.
	HeapTotal uint64
	// HeapUsed is the heap memory currently allocated in bytes.
	HeapUsed uint64
}

// Sampler reads process and host resource usage for performance records.
type Sampler struct {
	logger *slog.Logger
	pid    int32

	// ProcessMemoryFn is the function used to read process memory info
	// (injectable for testing).
	ProcessMemoryFn func(pid int32) (*process.MemoryInfoStat, error)
	// LoadAvgFn is the function used to read host load averages
	// (injectable for testing).
	LoadAvgFn func() (*load.AvgStat, error)
	// NumCPUFn is the function used to count CPUs (injectable for testing).
	NumCPUFn func() int
}

// New creates a Sampler for the current process.
func New(
	logger *slog.Logger,
) *Sampler {
	return &Sampler{
		logger:          logger,
		pid:             int32(os.Getpid()),
		ProcessMemoryFn: defaultProcessMemory,
		LoadAvgFn:       load.Avg,
		NumCPUFn:        runtime.NumCPU,
	}
}

func defaultProcessMemory(
	pid int32,
) (*process.MemoryInfoStat, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return nil, err
	}

	return p.MemoryInfo()
}

// Memory samples the process resident set and the Go heap. A failure
// reading the resident set is logged and leaves RSS zero; sampling
// never fails.
func (s *Sampler) Memory() Memory {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	m := Memory{
		HeapTotal: ms.HeapSys,
		HeapUsed:  ms.HeapAlloc,
	}

	info, err := s.ProcessMemoryFn(s.pid)
	if err != nil {
		s.logger.Debug(
			"reading process memory",
			slog.String("error", err.Error()),
		)

		return m
	}
	m.RSS = info.RSS

	return m
}

// LoadAverage returns the host 1-minute load average, or zero when it
// cannot be read.
func (s *Sampler) LoadAverage() float64 {
	avg, err := s.LoadAvgFn()
	if err != nil {
		s.logger.Debug(
			"reading load average",
			slog.String("error", err.Error()),
		)

		return 0
	}

	return avg.Load1
}

// CPUPercent approximates CPU utilization as the 1-minute load average
// normalized by CPU count, expressed as a percentage. It is a coarse
// proxy, not a per-request measurement.
func (s *Sampler) CPUPercent() float64 {
	return s.LoadAverage() / float64(s.NumCPUFn()) * 100
}
