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
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/itembench/itembench/internal/api"
	"github.com/itembench/itembench/internal/store"
	storemocks "github.com/itembench/itembench/internal/store/mocks"
)

type ItemUpdatePublicTestSuite struct {
	suite.Suite

	mockCtrl  *gomock.Controller
	mockItems *storemocks.MockItemStore
	mockUsers *storemocks.MockUserStore
	logger    *slog.Logger
	sut       *api.Server
}

func (s *ItemUpdatePublicTestSuite) SetupTest() {
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

func (s *ItemUpdatePublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ItemUpdatePublicTestSuite) TestUpdate() {
	tests := []struct {
		name      string
		body      string
		setupMock func()
		wantCode  int
		wantBody  string
	}{
		{
			name: "when the body is complete updates the item",
			body: `{"id":7,"name":"renamed","value":"42"}`,
			setupMock: func() {
				s.mockItems.EXPECT().
					Update(gomock.Any(), store.Item{ID: 7, Name: "renamed", Value: "42"}).
					Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"status":"updated"}`,
		},
		{
			name: "when no row matches still reports success",
			body: `{"id":999,"name":"ghost","value":"0"}`,
			setupMock: func() {
				s.mockItems.EXPECT().
					Update(gomock.Any(), store.Item{ID: 999, Name: "ghost", Value: "0"}).
					Return(nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"status":"updated"}`,
		},
		{
			name:      "when the id field is absent returns 400",
			body:      `{"name":"renamed","value":"42"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"missing required field: id"}`,
		},
		{
			name:      "when the name field is absent returns 400",
			body:      `{"id":7,"value":"42"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"missing required field: name"}`,
		},
		{
			name:      "when the value field is absent returns 400",
			body:      `{"id":7,"name":"renamed"}`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"missing required field: value"}`,
		},
		{
			name:      "when the body is not valid JSON returns 400",
			body:      `{not json`,
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"invalid request body"}`,
		},
		{
			name: "when the store fails returns 500",
			body: `{"id":7,"name":"renamed","value":"42"}`,
			setupMock: func() {
				s.mockItems.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMock()

			req := newAuthedRequest(
				http.MethodPut,
				"/item/update",
				strings.NewReader(tc.body),
			)
			rec := httptest.NewRecorder()

			s.sut.Echo.ServeHTTP(rec, req)

			s.Equal(tc.wantCode, rec.Code)
			s.JSONEq(tc.wantBody, rec.Body.String())
		})
	}
}

func TestItemUpdatePublicTestSuite(t *testing.T) {
	suite.Run(t, new(ItemUpdatePublicTestSuite))
}
