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

package dockerstats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
)

// Collect runs one sampling pass: list running containers, one-shot
// sample each, append one row per container. Failures are logged and
// skipped so a container disappearing mid-pass never aborts the pass.
func (c *Collector) Collect(
	ctx context.Context,
) {
	containers, err := c.client.ContainerList(ctx, container.ListOptions{})
	if err != nil {
		c.logger.Warn(
			"failed to list containers",
			slog.String("error", err.Error()),
		)

		return
	}

	now := time.Now().UTC()

	rows := make([]Row, 0, len(containers))
	for _, ctr := range containers {
		row, err := c.sample(ctx, ctr, now)
		if err != nil {
			c.logger.Warn(
				"failed to sample container stats",
				slog.String("container_id", shortID(ctr.ID)),
				slog.String("error", err.Error()),
			)

			continue
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return
	}

	if err := c.statsLog.Append(rows); err != nil {
		c.logger.Warn(
			"failed to append container stats",
			slog.String("error", err.Error()),
		)
	}
}

// sample takes a one-shot stats reading for a single container.
func (c *Collector) sample(
	ctx context.Context,
	ctr container.Summary,
	now time.Time,
) (Row, error) {
	resp, err := c.client.ContainerStatsOneShot(ctx, ctr.ID)
	if err != nil {
		return Row{}, fmt.Errorf("requesting stats: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var stats container.StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return Row{}, fmt.Errorf("decoding stats: %w", err)
	}

	return Row{
		Timestamp:     now.Format(time.RFC3339),
		ContainerID:   shortID(ctr.ID),
		Name:          containerName(ctr),
		CPUPct:        fmt.Sprintf("%.2f", cpuPercent(stats)),
		MemUsageBytes: strconv.FormatUint(stats.MemoryStats.Usage, 10),
		MemLimitBytes: strconv.FormatUint(stats.MemoryStats.Limit, 10),
		MemPct:        fmt.Sprintf("%.2f", memPercent(stats.MemoryStats)),
	}, nil
}

// cpuPercent applies the engine's cpu percentage formula. One-shot
// sampling leaves precpu zeroed, so the figure is the container's
// lifetime average rather than an instantaneous rate.
func cpuPercent(
	stats container.StatsResponse,
) float64 {
	cpuDelta := float64(stats.CPUStats.CPUUsage.TotalUsage) -
		float64(stats.PreCPUStats.CPUUsage.TotalUsage)
	systemDelta := float64(stats.CPUStats.SystemUsage) -
		float64(stats.PreCPUStats.SystemUsage)

	if cpuDelta <= 0 || systemDelta <= 0 {
		return 0
	}

	onlineCPUs := float64(stats.CPUStats.OnlineCPUs)
	if onlineCPUs == 0 {
		onlineCPUs = float64(len(stats.CPUStats.CPUUsage.PercpuUsage))
	}

	return (cpuDelta / systemDelta) * onlineCPUs * 100
}

// memPercent is usage over limit. An unset limit reads as 0.
func memPercent(
	mem container.MemoryStats,
) float64 {
	if mem.Limit == 0 {
		return 0
	}

	return float64(mem.Usage) / float64(mem.Limit) * 100
}

// shortID truncates a container ID to the 12-character short form.
func shortID(
	id string,
) string {
	if len(id) > 12 {
		return id[:12]
	}

	return id
}

// containerName returns the primary name without the leading slash.
func containerName(
	ctr container.Summary,
) string {
	if len(ctr.Names) == 0 {
		return ""
	}

	return strings.TrimPrefix(ctr.Names[0], "/")
}
