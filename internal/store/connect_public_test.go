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

package store_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/itembench/itembench/internal/config"
	"github.com/itembench/itembench/internal/store"
)

type ConnectPublicTestSuite struct {
	suite.Suite

	logger *slog.Logger
}

func (s *ConnectPublicTestSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ConnectPublicTestSuite) TestConnectSQLite() {
	ctx := context.Background()

	db, err := store.Connect(ctx, config.Database{
		Driver: "sqlite",
		Path:   ":memory:",
	}, s.logger)

	s.Require().NoError(err)
	s.Require().NotNil(db)
	s.NoError(db.PingContext(ctx))
	s.NoError(db.Close())
}

func (s *ConnectPublicTestSuite) TestConnectUnsupportedDriver() {
	ctx := context.Background()

	_, err := store.Connect(ctx, config.Database{
		Driver: "oracle",
	}, s.logger)

	s.Require().Error(err)
	s.Contains(err.Error(), "unsupported database driver")
}

func (s *ConnectPublicTestSuite) TestConnectPostgresUnreachable() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := store.Connect(ctx, config.Database{
		Driver:   "postgres",
		Host:     "127.0.0.1",
		Port:     1,
		User:     "itembench",
		Password: "itembench",
		Name:     "itembench",
	}, s.logger)

	s.Require().Error(err)
	s.Contains(err.Error(), "pinging database")
}

func TestConnectPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectPublicTestSuite))
}
