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

	"github.com/labstack/echo/v4"

	"github.com/itembench/itembench/internal/api/common"
	"github.com/itembench/itembench/internal/store"
)

// Update replaces the name and value of the row matching the given id.
// A row that does not exist still reports success; the store performs no
// existence check.
func (i *Items) Update(c echo.Context) error {
	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "invalid request body",
		})
	}

	switch {
	case req.ID == nil:
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "missing required field: id",
		})
	case req.Name == nil:
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "missing required field: name",
		})
	case req.Value == nil:
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "missing required field: value",
		})
	}

	err := i.ItemStore.Update(c.Request().Context(), store.Item{
		ID:    *req.ID,
		Name:  *req.Name,
		Value: *req.Value,
	})
	if err != nil {
		i.logger.Error(
			"failed to update item",
			slog.String("error", err.Error()),
			slog.Int64("id", *req.ID),
		)

		return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.JSON(http.StatusOK, common.StatusResponse{
		Status: "updated",
	})
}
