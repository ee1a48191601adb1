//go:build integration

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

package integration_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type sortResultJSON struct {
	SortedList  []float64 `json:"sorted_list"`
	ElapsedTime string    `json:"elapsed_time"`
	MemoryUsage string    `json:"memory_usage"`
	CPUUsage    string    `json:"cpu_usage"`
}

type SortSmokeSuite struct {
	suite.Suite
}

func (s *SortSmokeSuite) TestSort() {
	tests := []struct {
		name         string
		args         []string
		validateFunc func(stdout string, stderr string, exitCode int)
	}{
		{
			name: "runs all three algorithms over the list",
			args: []string{"client", "sort", "-l", "5,3,8,1,9,2", "--json"},
			validateFunc: func(
				stdout string,
				_ string,
				exitCode int,
			) {
				s.Require().Equal(0, exitCode)

				var results map[string]sortResultJSON
				s.Require().NoError(parseJSON(stdout, &results))
				s.Require().Len(results, 3)

				want := []float64{1, 2, 3, 5, 8, 9}
				for _, algorithm := range []string{
					"bubble_sort",
					"quick_sort",
					"binary_insertion_sort",
				} {
					result, ok := results[algorithm]
					s.Require().True(ok, algorithm)
					s.Equal(want, result.SortedList)
					s.NotEmpty(result.ElapsedTime)
					s.NotEmpty(result.MemoryUsage)
					s.NotEmpty(result.CPUUsage)
				}
			},
		},
		{
			name: "accepts an empty list",
			args: []string{"client", "sort", "-l", ",", "--json"},
			validateFunc: func(
				stdout string,
				_ string,
				exitCode int,
			) {
				s.Require().Equal(0, exitCode)

				var results map[string]sortResultJSON
				s.Require().NoError(parseJSON(stdout, &results))
				s.Require().Len(results, 3)
				s.Empty(results["quick_sort"].SortedList)
			},
		},
		{
			name: "fails for a non-numeric list",
			args: []string{"client", "sort", "-l", "1,two,3", "--json"},
			validateFunc: func(
				_ string,
				stderr string,
				exitCode int,
			) {
				s.Require().NotEqual(0, exitCode)
				s.Contains(stderr, "failed to parse list")
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			stdout, stderr, exitCode := runCLI(tt.args...)
			tt.validateFunc(stdout, stderr, exitCode)
		})
	}
}

func TestSortSmokeSuite(t *testing.T) {
	suite.Run(t, new(SortSmokeSuite))
}
