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

package perf_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/itembench/itembench/internal/api"
	"github.com/itembench/itembench/internal/api/perf"
	"github.com/itembench/itembench/internal/config"
	"github.com/itembench/itembench/internal/perflog"
)

type PerfPublicTestSuite struct {
	suite.Suite

	appFs    afero.Fs
	logger   *slog.Logger
	recorder *perflog.Recorder
	sut      *api.Server
}

func (s *PerfPublicTestSuite) SetupTest() {
	s.appFs = afero.NewMemMapFs()
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	s.recorder = perflog.New(s.appFs, s.logger, "performance.log")

	s.sut = api.New(config.Config{}, s.logger)
	s.sut.RegisterPerfRoutes(s.recorder)
}

func (s *PerfPublicTestSuite) newRecord(
	id string,
	endpoint string,
) perflog.Record {
	return perflog.Record{
		ID:        id,
		Timestamp: "2025-08-23T10:00:00Z",
		Endpoint:  endpoint,
		RSS:       44040192,
		HeapTotal: 8388608,
		HeapUsed:  4194304,
		ElapsedMS: "12.34",
		CPUPct:    "3.50",
		MemoryMB:  "42.00",
	}
}

func (s *PerfPublicTestSuite) get(
	target string,
) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	s.sut.Echo.ServeHTTP(rec, req)

	return rec
}

func (s *PerfPublicTestSuite) TestGetMetrics() {
	s.Require().NoError(s.recorder.Append(s.newRecord("r1", "GET /items")))
	s.Require().NoError(s.recorder.Append(s.newRecord("r2", "POST /sort")))

	rec := s.get("/metrics")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), perf.ContentTypeNDJSON)

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	s.Len(lines, 2)
	s.Contains(lines[0], `"GET /items"`)
	s.Contains(lines[1], `"POST /sort"`)
}

func (s *PerfPublicTestSuite) TestGetMetricsWhenEmpty() {
	rec := s.get("/metrics")

	s.Equal(http.StatusOK, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *PerfPublicTestSuite) TestDeleteMetrics() {
	s.Require().NoError(s.recorder.Append(s.newRecord("r1", "GET /items")))

	rec := s.get("/metrics/delete")

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"performance log cleared"}`, rec.Body.String())

	s.Empty(s.get("/metrics").Body.String())
}

func (s *PerfPublicTestSuite) TestGetLastPerformance() {
	tests := []struct {
		name     string
		records  []perflog.Record
		wantCode int
		wantBody string
	}{
		{
			name:     "when the log is empty returns 404",
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"no performance records"}`,
		},
		{
			name: "when records exist returns the most recent",
			records: []perflog.Record{
				s.newRecord("r1", "GET /items"),
				s.newRecord("r2", "DELETE /item/delete"),
			},
			wantCode: http.StatusOK,
			wantBody: `{
				"id": "r2",
				"timestamp": "2025-08-23T10:00:00Z",
				"endpoint": "DELETE /item/delete",
				"rss": 44040192,
				"heap_total": 8388608,
				"heap_used": 4194304,
				"elapsed_ms": "12.34",
				"cpu_pct": "3.50",
				"memory_mb": "42.00"
			}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			recorder := perflog.New(afero.NewMemMapFs(), s.logger, "performance.log")
			server := api.New(config.Config{}, s.logger)
			server.RegisterPerfRoutes(recorder)

			for _, record := range tc.records {
				s.Require().NoError(recorder.Append(record))
			}

			req := httptest.NewRequest(http.MethodGet, "/performance/last", nil)
			rec := httptest.NewRecorder()

			server.Echo.ServeHTTP(rec, req)

			s.Equal(tc.wantCode, rec.Code)
			s.JSONEq(tc.wantBody, rec.Body.String())
		})
	}
}

func TestPerfPublicTestSuite(t *testing.T) {
	suite.Run(t, new(PerfPublicTestSuite))
}
