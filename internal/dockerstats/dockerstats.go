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

// Package dockerstats collects container resource usage from the
// docker daemon on a schedule and persists it as a CSV log.
package dockerstats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// New creates a Collector that samples container stats every
// interval. Interval is a duration string such as "30s".
func New(
	logger *slog.Logger,
	client DockerClient,
	statsLog *Log,
	interval string,
) *Collector {
	return &Collector{
		client:   client,
		statsLog: statsLog,
		logger:   logger,
		interval: interval,
		cron:     cron.New(),
	}
}

// Ping checks that the docker daemon is reachable.
func (c *Collector) Ping(
	ctx context.Context,
) error {
	if _, err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("pinging docker daemon: %w", err)
	}

	return nil
}

// Start schedules the collector without blocking. The first sample
// runs one full interval after start. Call Stop to shut down.
func (c *Collector) Start() error {
	spec := fmt.Sprintf("@every %s", c.interval)

	_, err := c.cron.AddFunc(spec, func() {
		c.Collect(context.Background())
	})
	if err != nil {
		return fmt.Errorf("scheduling stats collection: %w", err)
	}

	c.cron.Start()

	c.logger.Info(
		"docker stats collector started",
		slog.String("interval", c.interval),
		slog.String("path", c.statsLog.path),
	)

	return nil
}

// Stop halts the schedule and waits for an in-flight collection pass
// to finish or the context deadline to expire.
func (c *Collector) Stop(
	ctx context.Context,
) {
	stopCtx := c.cron.Stop()

	select {
	case <-stopCtx.Done():
		c.logger.Info("docker stats collector stopped gracefully")
	case <-ctx.Done():
		c.logger.Warn("docker stats collector shutdown timed out")
	}
}
