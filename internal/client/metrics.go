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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/itembench/itembench/internal/perflog"
)

// Metrics retrieves all performance records via the REST API. The
// server returns newline-delimited JSON; each line is one record.
func (c *Client) Metrics(
	ctx context.Context,
) ([]perflog.Record, error) {
	data, err := c.doRaw(ctx, http.MethodGet, "/metrics", nil)
	if err != nil {
		return nil, err
	}

	records := []perflog.Record{}
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var record perflog.Record
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("decoding performance record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

// MetricsLast retrieves the most recent performance record via the REST API.
func (c *Client) MetricsLast(
	ctx context.Context,
) (*perflog.Record, error) {
	var resp perflog.Record
	if err := c.do(ctx, http.MethodGet, "/performance/last", nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// MetricsClear truncates the performance log via the REST API.
func (c *Client) MetricsClear(
	ctx context.Context,
) error {
	var resp statusResponse
	return c.do(ctx, http.MethodGet, "/metrics/delete", nil, &resp)
}

// DockerMetrics retrieves the raw container stats CSV via the REST API.
func (c *Client) DockerMetrics(
	ctx context.Context,
) ([]byte, error) {
	return c.doRaw(ctx, http.MethodGet, "/docker_metrics", nil)
}
