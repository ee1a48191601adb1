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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/itembench/itembench/internal/perflog"
	"github.com/itembench/itembench/internal/sysinfo"
)

// excludedPerfPaths lists path prefixes that should not generate
// performance records.
var excludedPerfPaths = []string{
	"/metrics",
	"/performance",
	"/docker_metrics",
	"/health",
}

// perfMiddleware returns Echo middleware that appends one performance
// record per request. The record is built after the handler returns and
// the response has been written; an append failure is logged and never
// surfaced to the client.
func perfMiddleware(
	recorder *perflog.Recorder,
	sampler *sysinfo.Sampler,
	logger *slog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			for _, prefix := range excludedPerfPaths {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			start := time.Now()

			err := next(c)

			mem := sampler.Memory()
			elapsed := time.Since(start)

			record := perflog.Record{
				ID:        uuid.New().String(),
				Timestamp: start.UTC().Format(time.RFC3339),
				Endpoint:  c.Request().Method + " " + path,
				RSS:       mem.RSS,
				HeapTotal: mem.HeapTotal,
				HeapUsed:  mem.HeapUsed,
				ElapsedMS: fmt.Sprintf("%.2f", float64(elapsed.Nanoseconds())/1e6),
				CPUPct:    fmt.Sprintf("%.2f", sampler.CPUPercent()),
				MemoryMB:  fmt.Sprintf("%.2f", float64(mem.RSS)/1024/1024),
			}

			if appendErr := recorder.Append(record); appendErr != nil {
				logger.Warn(
					"failed to append performance record",
					slog.String("error", appendErr.Error()),
					slog.String("record_id", record.ID),
				)
			}

			return err
		}
	}
}
