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
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/itembench/itembench/internal/config"
	"github.com/itembench/itembench/internal/telemetry"
)

type MiddlewareMetricsTestSuite struct {
	suite.Suite

	logger *slog.Logger
}

func (s *MiddlewareMetricsTestSuite) SetupTest() {
	s.logger = slog.Default()
}

func (s *MiddlewareMetricsTestSuite) TestMetricsMiddleware() {
	handler, _, shutdown, err := telemetry.InitMeter(config.MetricsConfig{})
	s.Require().NoError(err)
	defer func() { _ = shutdown(context.Background()) }()

	e := echo.New()
	e.Use(metricsMiddleware(s.logger))
	e.GET("/items", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)

	scrapeReq := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	scrapeRec := httptest.NewRecorder()
	handler.ServeHTTP(scrapeRec, scrapeReq)

	s.Equal(http.StatusOK, scrapeRec.Code)
	s.Contains(scrapeRec.Body.String(), "http_server_requests")
}

func (s *MiddlewareMetricsTestSuite) TestMetricsMiddlewarePassesErrors() {
	e := echo.New()
	e.Use(metricsMiddleware(s.logger))
	e.GET("/boom", func(_ echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	s.Equal(http.StatusTeapot, rec.Code)
}

func TestMiddlewareMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareMetricsTestSuite))
}
