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

package items

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/itembench/itembench/internal/api/common"
)

// Delete removes the row matching the `id` query parameter. Deleting an id
// with no row still reports success.
func (i *Items) Delete(c echo.Context) error {
	idParam := c.QueryParam("id")
	if idParam == "" {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "missing required parameter: id",
		})
	}

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "invalid parameter: id must be an integer",
		})
	}

	if err := i.ItemStore.Delete(c.Request().Context(), id); err != nil {
		i.logger.Error(
			"failed to delete item",
			slog.String("error", err.Error()),
			slog.Int64("id", id),
		)

		return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.JSON(http.StatusOK, common.StatusResponse{
		Status: "deleted",
	})
}
