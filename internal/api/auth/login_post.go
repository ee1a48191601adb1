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

package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itembench/itembench/internal/api/common"
	"github.com/itembench/itembench/internal/store"
)

// Login exchanges a username/password pair for that user's token. Unknown
// users and wrong passwords are indistinguishable in the response.
func (a *Auth) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: "invalid request body",
		})
	}

	token, err := a.UserStore.GetTokenByCredentials(
		c.Request().Context(),
		req.Username,
		req.Password,
	)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, common.ErrorResponse{
				Error: "invalid credentials",
			})
		}

		a.logger.Error(
			"failed to check credentials",
			slog.String("error", err.Error()),
		)

		return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Token: token,
	})
}
