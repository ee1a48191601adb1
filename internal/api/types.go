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
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/itembench/itembench/internal/config"
	"github.com/itembench/itembench/internal/perflog"
	"github.com/itembench/itembench/internal/sysinfo"
)

// Server wraps the Echo instance with its configuration and the optional
// performance recorder.
type Server struct {
	// Echo the server instance.
	Echo *echo.Echo

	logger       *slog.Logger
	appConfig    config.Config
	perfRecorder *perflog.Recorder
	perfSampler  *sysinfo.Sampler
}

// Option is a functional option for configuring the Server.
type Option func(*Server)

// WithPerfRecorder enables the performance middleware, appending one
// record per wrapped request to the given recorder.
func WithPerfRecorder(
	recorder *perflog.Recorder,
	sampler *sysinfo.Sampler,
) Option {
	return func(s *Server) {
		s.perfRecorder = recorder
		s.perfSampler = sampler
	}
}
