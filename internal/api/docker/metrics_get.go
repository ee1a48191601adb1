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

package docker

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itembench/itembench/internal/api/common"
)

// GetMetrics returns the raw accumulated container stats log. An
// empty or missing log yields an empty 200 body.
func (d *Docker) GetMetrics(c echo.Context) error {
	data, err := d.Log.ReadAll()
	if err != nil {
		d.logger.Error(
			"failed to read container stats log",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.Blob(http.StatusOK, ContentTypeCSV, data)
}
