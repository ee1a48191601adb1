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

package client

import (
	"context"

	"github.com/itembench/itembench/internal/api/health"
	"github.com/itembench/itembench/internal/api/items"
	"github.com/itembench/itembench/internal/perflog"
	"github.com/itembench/itembench/internal/sortbench"
	"github.com/itembench/itembench/internal/store"
)

// CombinedHandler is a superset of all smaller handler interfaces.
type CombinedHandler interface {
	AuthHandler
	ItemHandler
	SortHandler
	MetricsHandler
	HealthHandler
}

// AuthHandler defines an interface for interacting with Auth client operations.
type AuthHandler interface {
	// Login exchanges credentials for a bearer token via the REST API.
	Login(
		ctx context.Context,
		username string,
		password string,
	) (string, error)
}

// ItemHandler defines an interface for interacting with Item client operations.
type ItemHandler interface {
	// ItemList retrieves every item via the REST API.
	ItemList(
		ctx context.Context,
	) ([]store.Item, error)

	// ItemGet retrieves a specific item by ID via the REST API.
	ItemGet(
		ctx context.Context,
		id int64,
	) (*store.Item, error)

	// ItemGetLast retrieves the most recently created item via the REST API.
	ItemGetLast(
		ctx context.Context,
	) (*store.Item, error)

	// ItemCreate creates a new item via the REST API.
	ItemCreate(
		ctx context.Context,
		name string,
		value string,
	) (*store.Item, error)

	// ItemUpdate rewrites an item's name and value via the REST API.
	ItemUpdate(
		ctx context.Context,
		id int64,
		name string,
		value string,
	) error

	// ItemDelete deletes a specific item by ID via the REST API.
	ItemDelete(
		ctx context.Context,
		id int64,
	) error

	// ItemDeleteLast deletes the most recently created item via the REST API.
	ItemDeleteLast(
		ctx context.Context,
	) (*items.DeleteLastResponse, error)
}

// SortHandler defines an interface for interacting with Sort client operations.
type SortHandler interface {
	// Sort runs the sorting benchmark via the REST API.
	Sort(
		ctx context.Context,
		list []float64,
	) (map[string]sortbench.Result, error)
}

// MetricsHandler defines an interface for interacting with Metrics client operations.
type MetricsHandler interface {
	// Metrics retrieves all performance records via the REST API.
	Metrics(
		ctx context.Context,
	) ([]perflog.Record, error)

	// MetricsLast retrieves the most recent performance record via the REST API.
	MetricsLast(
		ctx context.Context,
	) (*perflog.Record, error)

	// MetricsClear truncates the performance log via the REST API.
	MetricsClear(
		ctx context.Context,
	) error

	// DockerMetrics retrieves the raw container stats CSV via the REST API.
	DockerMetrics(
		ctx context.Context,
	) ([]byte, error)
}

// HealthHandler defines an interface for interacting with Health client operations.
type HealthHandler interface {
	// Health get the health API endpoint.
	Health(
		ctx context.Context,
	) (*health.Response, error)
}
