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
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/itembench/itembench/internal/store"
	storemocks "github.com/itembench/itembench/internal/store/mocks"
)

type MiddlewareTestSuite struct {
	suite.Suite

	mockCtrl  *gomock.Controller
	mockUsers *storemocks.MockUserStore
	logger    *slog.Logger
}

func (s *MiddlewareTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUsers = storemocks.NewMockUserStore(s.mockCtrl)
	s.logger = slog.Default()
}

func (s *MiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MiddlewareTestSuite) TestAuthMiddleware() {
	tests := []struct {
		name         string
		authHeader   string
		setupMock    func()
		wantCode     int
		wantBody     string
		expectCalled bool
	}{
		{
			name:       "when the auth header is absent returns 401",
			authHeader: "",
			setupMock:  func() {},
			wantCode:   http.StatusUnauthorized,
			wantBody:   `{"error":"bearer token required"}`,
		},
		{
			name:       "when the auth header is not a bearer token returns 401",
			authHeader: "Basic dXNlcjpwYXNz",
			setupMock:  func() {},
			wantCode:   http.StatusUnauthorized,
			wantBody:   `{"error":"bearer token required"}`,
		},
		{
			name:       "when the token is unknown returns 401",
			authHeader: "Bearer bogus",
			setupMock: func() {
				s.mockUsers.EXPECT().
					GetUsernameByToken(gomock.Any(), "bogus").
					Return("", store.ErrNotFound)
			},
			wantCode: http.StatusUnauthorized,
			wantBody: `{"error":"invalid or unknown token"}`,
		},
		{
			name:       "when the store fails returns 500",
			authHeader: "Bearer token-alice",
			setupMock: func() {
				s.mockUsers.EXPECT().
					GetUsernameByToken(gomock.Any(), "token-alice").
					Return("", errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
		{
			name:       "when the token is valid calls the handler",
			authHeader: "Bearer token-alice",
			setupMock: func() {
				s.mockUsers.EXPECT().
					GetUsernameByToken(gomock.Any(), "token-alice").
					Return("alice", nil)
			},
			wantCode:     http.StatusOK,
			expectCalled: true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			handlerCalled := false
			var gotUsername interface{}
			next := func(c echo.Context) error {
				handlerCalled = true
				gotUsername = c.Get(ContextKeyUsername)

				return c.NoContent(http.StatusOK)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			wrapped := authMiddleware(s.mockUsers, s.logger)(next)
			s.NoError(wrapped(ctx))

			s.Equal(tc.expectCalled, handlerCalled)
			s.Equal(tc.wantCode, rec.Code)

			if tc.expectCalled {
				s.Equal("alice", gotUsername)
			} else {
				s.JSONEq(tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
