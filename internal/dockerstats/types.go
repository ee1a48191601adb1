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
	"log/slog"
	"sync"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/robfig/cron/v3"
	"github.com/spf13/afero"
)

// DockerClient is the subset of the docker engine API the collector
// uses. *client.Client satisfies it.
type DockerClient interface {
	// ContainerList returns the list of containers.
	ContainerList(
		ctx context.Context,
		options container.ListOptions,
	) ([]container.Summary, error)
	// ContainerStatsOneShot returns a single stats sample without
	// priming a previous one.
	ContainerStatsOneShot(
		ctx context.Context,
		containerID string,
	) (container.StatsResponseReader, error)
	// Ping checks daemon connectivity.
	Ping(
		ctx context.Context,
	) (types.Ping, error)
}

// Collector samples resource usage for all running containers on a
// cron schedule and appends one CSV row per container to the stats
// log.
type Collector struct {
	client   DockerClient
	statsLog *Log
	logger   *slog.Logger
	interval string
	cron     *cron.Cron
}

// Log is the CSV-backed container stats log. Appends go through a
// mutex so rows from overlapping collection passes never interleave.
type Log struct {
	appFs  afero.Fs
	logger *slog.Logger
	path   string

	mu sync.Mutex
}

// Row is one container stats sample in CSV column order.
type Row struct {
	Timestamp     string
	ContainerID   string
	Name          string
	CPUPct        string
	MemUsageBytes string
	MemLimitBytes string
	MemPct        string
}

// csvHeader is the column row written before the first sample.
var csvHeader = []string{
	"timestamp",
	"container_id",
	"name",
	"cpu_pct",
	"mem_usage_bytes",
	"mem_limit_bytes",
	"mem_pct",
}
