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

package items_test

import (
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/itembench/itembench/internal/api"
	storemocks "github.com/itembench/itembench/internal/store/mocks"
)

type ItemDeletePublicTestSuite struct {
	suite.Suite

	mockCtrl  *gomock.Controller
	mockItems *storemocks.MockItemStore
	mockUsers *storemocks.MockUserStore
	logger    *slog.Logger
	sut       *api.Server
}

func (s *ItemDeletePublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockItems = storemocks.NewMockItemStore(s.mockCtrl)
	s.mockUsers = storemocks.NewMockUserStore(s.mockCtrl)
	s.mockUsers.EXPECT().
		GetUsernameByToken(gomock.Any(), testToken).
		Return("alice", nil).
		AnyTimes()

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	s.sut = newTestServer(s.logger, s.mockItems, s.mockUsers)
}

func (s *ItemDeletePublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ItemDeletePublicTestSuite) TestDelete() {
	tests := []struct {
		name      string
		target    string
		setupMock func()
		wantCode  int
		wantBody  string
	}{
		{
			name:      "when the id parameter is absent returns 400",
			target:    "/item/delete",
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"missing required parameter: id"}`,
		},
		{
			name:      "when the id parameter is not numeric returns 400",
			target:    "/item/delete?id=abc",
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"invalid parameter: id must be an integer"}`,
		},
		{
			name:   "when the item exists deletes it",
			target: "/item/delete?id=7",
			setupMock: func() {
				s.mockItems.EXPECT().
					Delete(gomock.Any(), int64(7)).
					Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"status":"deleted"}`,
		},
		{
			name:   "when no row matches still reports success",
			target: "/item/delete?id=999",
			setupMock: func() {
				s.mockItems.EXPECT().
					Delete(gomock.Any(), int64(999)).
					Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"status":"deleted"}`,
		},
		{
			name:   "when the store fails returns 500",
			target: "/item/delete?id=7",
			setupMock: func() {
				s.mockItems.EXPECT().
					Delete(gomock.Any(), int64(7)).
					Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			req := newAuthedRequest(http.MethodDelete, tc.target, nil)
			rec := httptest.NewRecorder()

			s.sut.Echo.ServeHTTP(rec, req)

			s.Equal(tc.wantCode, rec.Code)
			s.JSONEq(tc.wantBody, rec.Body.String())
		})
	}
}

func TestItemDeletePublicTestSuite(t *testing.T) {
	suite.Run(t, new(ItemDeletePublicTestSuite))
}
