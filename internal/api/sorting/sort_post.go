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

package sorting

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itembench/itembench/internal/api/common"
)

// Sort runs all three sorting algorithms over the submitted list and
// returns their instrumented results keyed by algorithm name. An empty
// list is valid.
func (s *Sorting) Sort(c echo.Context) error {
	var req SortRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "list must be an array",
		})
	}

	raw := bytes.TrimSpace(req.List)
	if len(raw) == 0 || raw[0] != '[' {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "list must be an array",
		})
	}

	var list []float64
	if err := json.Unmarshal(raw, &list); err != nil {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "list elements must be numbers",
		})
	}

	return c.JSON(http.StatusOK, s.Runner.Run(list))
}
