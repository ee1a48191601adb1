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

package cmd

import (
	"context"
	"log/slog"
	"time"

	dockerclient "github.com/docker/docker/client"
	"github.com/spf13/cobra"

	"github.com/itembench/itembench/internal/api"
	"github.com/itembench/itembench/internal/api/health"
	"github.com/itembench/itembench/internal/cli"
	"github.com/itembench/itembench/internal/dockerstats"
	"github.com/itembench/itembench/internal/perflog"
	"github.com/itembench/itembench/internal/sortbench"
	"github.com/itembench/itembench/internal/store"
	"github.com/itembench/itembench/internal/sysinfo"
	"github.com/itembench/itembench/internal/telemetry"
)

// serverStartCmd represents the serverStart command.
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the API server.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			"itembench",
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize tracer", err)
		}

		metricsHandler, metricsPath, shutdownMeter, err := telemetry.InitMeter(
			appConfig.Telemetry.Metrics,
		)
		if err != nil {
			cli.LogFatal(logger, "failed to initialize meter", err)
		}

		db, err := store.Connect(ctx, appConfig.Database, logger)
		if err != nil {
			cli.LogFatal(logger, "failed to connect to database", err)
		}

		sqlStore := store.NewSQLStore(db, logger)
		recorder := perflog.New(appFs, logger, appConfig.PerfLog.Path)
		sampler := sysinfo.New(logger)
		runner := sortbench.New(logger, sampler)
		statsLog := dockerstats.NewLog(appFs, logger, appConfig.Docker.Path)

		server := api.New(
			appConfig,
			logger,
			api.WithPerfRecorder(recorder, sampler),
		)
		server.RegisterAuthRoutes(sqlStore)
		server.RegisterItemRoutes(sqlStore, sqlStore)
		server.RegisterSortRoutes(sqlStore, runner)
		server.RegisterPerfRoutes(recorder)
		server.RegisterDockerRoutes(statsLog)
		server.RegisterHealthRoutes(
			&health.DatabaseChecker{DB: db},
			time.Now(),
			versionInfo.GitVersion,
		)
		server.RegisterMetricsHandler(metricsHandler, metricsPath)

		collector := startDockerCollector(ctx, statsLog)

		server.Start()
		cli.RunServer(ctx, server, func() {
			if collector != nil {
				stopCtx, cancel := context.WithTimeout(
					context.Background(),
					5*time.Second,
				)
				defer cancel()
				collector.Stop(stopCtx)
			}
			_ = db.Close()
			_ = shutdownMeter(context.Background())
			_ = shutdownTracer(context.Background())
		})
	},
}

// startDockerCollector starts the container stats collector when enabled.
// An unreachable docker daemon downgrades to a warning; container stats
// are best-effort.
func startDockerCollector(
	ctx context.Context,
	statsLog *dockerstats.Log,
) *dockerstats.Collector {
	if !appConfig.Docker.Enabled {
		return nil
	}

	dc, err := dockerclient.NewClientWithOpts(
		dockerclient.FromEnv,
		dockerclient.WithAPIVersionNegotiation(),
	)
	if err != nil {
		logger.Warn(
			"failed to create docker client",
			slog.String("error", err.Error()),
		)
		return nil
	}

	collector := dockerstats.New(
		logger,
		dc,
		statsLog,
		appConfig.Docker.Interval,
	)

	if err := collector.Ping(ctx); err != nil {
		logger.Warn(
			"docker daemon unreachable, container stats disabled",
			slog.String("error", err.Error()),
		)
		return nil
	}

	if err := collector.Start(); err != nil {
		logger.Warn(
			"failed to start docker stats collector",
			slog.String("error", err.Error()),
		)
		return nil
	}

	return collector
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
}
