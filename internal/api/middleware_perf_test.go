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

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/itembench/itembench/internal/perflog"
	"github.com/itembench/itembench/internal/sysinfo"
)

type MiddlewarePerfTestSuite struct {
	suite.Suite

	appFs    afero.Fs
	logger   *slog.Logger
	recorder *perflog.Recorder
	sampler  *sysinfo.Sampler
}

func (s *MiddlewarePerfTestSuite) SetupTest() {
	s.appFs = afero.NewMemMapFs()
	s.logger = slog.Default()
	s.recorder = perflog.New(s.appFs, s.logger, "performance.log")
	s.sampler = sysinfo.New(s.logger)
}

// newEcho builds a minimal echo app with the performance middleware
// and a handful of routes.
func (s *MiddlewarePerfTestSuite) newEcho() *echo.Echo {
	e := echo.New()
	e.Use(perfMiddleware(s.recorder, s.sampler, s.logger))

	ok := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	e.GET("/items", ok)
	e.POST("/sort", ok)
	e.GET("/metrics", ok)
	e.GET("/metrics/delete", ok)
	e.GET("/performance/last", ok)
	e.GET("/docker_metrics", ok)
	e.GET("/health", ok)

	return e
}

func (s *MiddlewarePerfTestSuite) do(
	e *echo.Echo,
	method string,
	target string,
) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *MiddlewarePerfTestSuite) readRecords() []perflog.Record {
	data, err := s.recorder.ReadAll()
	s.Require().NoError(err)

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil
	}

	var records []perflog.Record
	for _, line := range strings.Split(trimmed, "\n") {
		var record perflog.Record
		s.Require().NoError(json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func (s *MiddlewarePerfTestSuite) TestRecordsOnePerRequest() {
	e := s.newEcho()

	s.do(e, http.MethodGet, "/items")
	s.do(e, http.MethodPost, "/sort")
	s.do(e, http.MethodGet, "/items")

	records := s.readRecords()
	s.Require().Len(records, 3)

	s.Equal("GET /items", records[0].Endpoint)
	s.Equal("POST /sort", records[1].Endpoint)
	s.Equal("GET /items", records[2].Endpoint)

	first := records[0]
	_, err := uuid.Parse(first.ID)
	s.NoError(err)
	_, err = time.Parse(time.RFC3339, first.Timestamp)
	s.NoError(err)
	s.Regexp(`^\d+\.\d{2}$`, first.ElapsedMS)
	s.Regexp(`^-?\d+\.\d{2}$`, first.CPUPct)
	s.Regexp(`^\d+\.\d{2}$`, first.MemoryMB)
}

func (s *MiddlewarePerfTestSuite) TestSkipsExcludedPaths() {
	e := s.newEcho()

	s.do(e, http.MethodGet, "/metrics")
	s.do(e, http.MethodGet, "/metrics/delete")
	s.do(e, http.MethodGet, "/performance/last")
	s.do(e, http.MethodGet, "/docker_metrics")
	s.do(e, http.MethodGet, "/health")

	s.Empty(s.readRecords())
}

func (s *MiddlewarePerfTestSuite) TestAppendFailureDoesNotAffectResponse() {
	s.recorder = perflog.New(
		afero.NewReadOnlyFs(afero.NewMemMapFs()),
		s.logger,
		"performance.log",
	)
	e := s.newEcho()

	// The append fails on the read-only filesystem; the response must
	// be served regardless.
	s.do(e, http.MethodGet, "/items")
}

func TestMiddlewarePerfTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewarePerfTestSuite))
}
