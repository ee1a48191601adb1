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
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/itembench/itembench/internal/cli"
)

// clientMetricsCmd represents the clientMetrics command.
var clientMetricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Inspect the performance log",
	Long: `Inspect the per-request performance log collected by the server.

Running without flags lists every record. Use --last for the most recent
record, --clear to truncate the log, and --docker for the container stats
CSV.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		last, _ := cmd.Flags().GetBool("last")
		clearLog, _ := cmd.Flags().GetBool("clear")
		docker, _ := cmd.Flags().GetBool("docker")

		switch {
		case clearLog:
			runMetricsClear(ctx)
		case last:
			runMetricsLast(ctx)
		case docker:
			runDockerMetrics(ctx)
		default:
			runMetricsList(ctx)
		}
	},
}

func runMetricsList(ctx context.Context) {
	records, err := apiClient.Metrics(ctx)
	if err != nil {
		cli.LogFatal(logger, "failed to get performance records", err)
	}

	if jsonOutput {
		data, err := json.Marshal(records)
		if err != nil {
			cli.LogFatal(logger, "failed to marshal records", err)
		}
		fmt.Println(string(data))
		return
	}

	if len(records) == 0 {
		fmt.Println("No performance records found.")
		return
	}

	cli.PrintCompactTable([]cli.Section{
		{Headers: recordHeaders, Rows: recordRows(records)},
	})
}

func runMetricsLast(ctx context.Context) {
	record, err := apiClient.MetricsLast(ctx)
	if err != nil {
		cli.LogFatal(logger, "failed to get last performance record", err)
	}

	if jsonOutput {
		data, err := json.Marshal(record)
		if err != nil {
			cli.LogFatal(logger, "failed to marshal record", err)
		}
		fmt.Println(string(data))
		return
	}

	fmt.Println()
	printRecord(*record)
}

func runMetricsClear(ctx context.Context) {
	if err := apiClient.MetricsClear(ctx); err != nil {
		cli.LogFatal(logger, "failed to clear performance records", err)
	}

	if jsonOutput {
		data, _ := json.Marshal(map[string]string{"status": "cleared"})
		fmt.Println(string(data))
		return
	}

	fmt.Println()
	cli.PrintKV("Status", "Cleared")
}

func runDockerMetrics(ctx context.Context) {
	data, err := apiClient.DockerMetrics(ctx)
	if err != nil {
		cli.LogFatal(logger, "failed to get docker metrics", err)
	}

	if jsonOutput {
		fmt.Println(string(bytes.TrimSpace(data)))
		return
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		cli.LogFatal(logger, "failed to parse docker metrics", err)
	}
	if len(rows) < 2 {
		fmt.Println("No docker stats found.")
		return
	}

	cli.PrintCompactTable([]cli.Section{
		{Headers: rows[0], Rows: rows[1:]},
	})
}

func init() {
	clientCmd.AddCommand(clientMetricsCmd)

	clientMetricsCmd.PersistentFlags().
		BoolP("last", "", false, "Show only the most recent record")
	clientMetricsCmd.PersistentFlags().
		BoolP("clear", "", false, "Truncate the performance log")
	clientMetricsCmd.PersistentFlags().
		BoolP("docker", "", false, "Show the container stats CSV")

	clientMetricsCmd.MarkFlagsMutuallyExclusive("last", "clear", "docker")
}
