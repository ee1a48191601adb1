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

package sysinfo_test

import (
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/suite"

	"github.com/itembench/itembench/internal/sysinfo"
)

type SysinfoPublicTestSuite struct {
	suite.Suite

	logger *slog.Logger
}

func (suite *SysinfoPublicTestSuite) SetupTest() {
	suite.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func (suite *SysinfoPublicTestSuite) TestMemory() {
	tests := []struct {
		name      string
		setupMock func(*sysinfo.Sampler)
		wantRSS   uint64
	}{
		{
			name: "when process memory readable reports rss",
			setupMock: func(s *sysinfo.Sampler) {
				s.ProcessMemoryFn = func(_ int32) (*process.MemoryInfoStat, error) {
					return &process.MemoryInfoStat{RSS: 44040192}, nil
				}
			},
			wantRSS: 44040192,
		},
		{
			name: "when process memory unreadable leaves rss zero",
			setupMock: func(s *sysinfo.Sampler) {
				s.ProcessMemoryFn = func(_ int32) (*process.MemoryInfoStat, error) {
					return nil, fmt.Errorf("permission denied")
				}
			},
			wantRSS: 0,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			sampler := sysinfo.New(suite.logger)
			tc.setupMock(sampler)

			got := sampler.Memory()

			suite.Equal(tc.wantRSS, got.RSS)
			suite.Positive(got.HeapTotal)
			suite.Positive(got.HeapUsed)
			suite.GreaterOrEqual(got.HeapTotal, got.HeapUsed)
		})
	}
}

func (suite *SysinfoPublicTestSuite) TestLoadAverage() {
	tests := []struct {
		name      string
		setupMock func(*sysinfo.Sampler)
		want      float64
	}{
		{
			name: "when load readable returns one minute average",
			setupMock: func(s *sysinfo.Sampler) {
				s.LoadAvgFn = func() (*load.AvgStat, error) {
					return &load.AvgStat{Load1: 1.25, Load5: 0.8, Load15: 0.5}, nil
				}
			},
			want: 1.25,
		},
		{
			name: "when load unreadable returns zero",
			setupMock: func(s *sysinfo.Sampler) {
				s.LoadAvgFn = func() (*load.AvgStat, error) {
					return nil, fmt.Errorf("not supported")
				}
			},
			want: 0,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			sampler := sysinfo.New(suite.logger)
			tc.setupMock(sampler)

			suite.InDelta(tc.want, sampler.LoadAverage(), 0.0001)
		})
	}
}

func (suite *SysinfoPublicTestSuite) TestCPUPercent() {
	tests := []struct {
		name   string
		load1  float64
		numCPU int
		want   float64
	}{
		{
			name:   "when load equals cpu count reports full utilization",
			load1:  4.0,
			numCPU: 4,
			want:   100.0,
		},
		{
			name:   "when load is half cpu count reports fifty percent",
			load1:  2.0,
			numCPU: 4,
			want:   50.0,
		},
		{
			name:   "when idle reports zero",
			load1:  0,
			numCPU: 8,
			want:   0,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			sampler := sysinfo.New(suite.logger)
			sampler.LoadAvgFn = func() (*load.AvgStat, error) {
				return &load.AvgStat{Load1: tc.load1}, nil
			}
			sampler.NumCPUFn = func() int { return tc.numCPU }

			suite.InDelta(tc.want, sampler.CPUPercent(), 0.0001)
		})
	}
}

func TestSysinfoPublicTestSuite(t *testing.T) {
	suite.Run(t, new(SysinfoPublicTestSuite))
}
