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
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/itembench/itembench/internal/api/common"
	"github.com/itembench/itembench/internal/store"
)

// ContextKeyUsername is the echo context key carrying the authenticated
// username.
const ContextKeyUsername = "auth.username"

// authMiddleware validates bearer tokens against the user store and
// injects the resolved username into the request context. Tokens are
// opaque database rows; there is no expiry or signature to check.
func authMiddleware(
	users store.UserStore,
	logger *slog.Logger,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, common.ErrorResponse{
					Error: "bearer token required",
				})
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			username, err := users.GetUsernameByToken(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, common.ErrorResponse{
						Error: "invalid or unknown token",
					})
				}

				logger.Error(
					"failed to validate token",
					slog.String("error", err.Error()),
				)

				return c.JSON(http.StatusInternalServerError, common.ErrorResponse{
					Error: "internal server error",
				})
			}

			// Inject user identity into context for handlers and logging.
			c.Set(ContextKeyUsername, username)

			return next(c)
		}
	}
}
