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
	"strconv"

	"github.com/itembench/itembench/internal/cli"
	"github.com/itembench/itembench/internal/perflog"
	"github.com/itembench/itembench/internal/sortbench"
	"github.com/itembench/itembench/internal/store"
)

var (
	itemHeaders   = []string{"ID", "NAME", "VALUE"}
	recordHeaders = []string{"ID", "TIMESTAMP", "ENDPOINT", "ELAPSED (MS)", "MEMORY (MB)", "CPU (%)"}
	sortHeaders   = []string{"ALGORITHM", "ELAPSED", "MEMORY", "CPU", "SORTED"}
)

// sortAlgorithmOrder fixes the display order of benchmark results.
var sortAlgorithmOrder = []string{
	sortbench.AlgorithmBubble,
	sortbench.AlgorithmQuick,
	sortbench.AlgorithmBinaryInsertion,
}

// itemRows converts items to table rows.
func itemRows(
	list []store.Item,
) [][]string {
	rows := make([][]string, 0, len(list))
	for _, item := range list {
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			item.Value,
		})
	}
	return rows
}

// printItems renders items as a compact table.
func printItems(
	list []store.Item,
) {
	cli.PrintCompactTable([]cli.Section{
		{Headers: itemHeaders, Rows: itemRows(list)},
	})
}

// sortResultRows flattens benchmark results into rows in a fixed
// algorithm order, skipping algorithms absent from the map.
func sortResultRows(
	results map[string]sortbench.Result,
) [][]string {
	rows := make([][]string, 0, len(results))
	for _, name := range sortAlgorithmOrder {
		result, ok := results[name]
		if !ok {
			continue
		}
		rows = append(rows, []string{
			name,
			result.ElapsedTime,
			result.MemoryUsage,
			result.CPUUsage,
			cli.FormatFloats(result.SortedList),
		})
	}
	return rows
}

// recordRows converts performance records to table rows.
func recordRows(
	records []perflog.Record,
) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			record.Timestamp,
			record.Endpoint,
			record.ElapsedMS,
			record.MemoryMB,
			record.CPUPct,
		})
	}
	return rows
}

// printRecord renders one performance record as key-value lines.
func printRecord(
	record perflog.Record,
) {
	cli.PrintKV("ID", record.ID)
	cli.PrintKV("Timestamp", record.Timestamp, "Endpoint", record.Endpoint)
	cli.PrintKV(
		"Elapsed", record.ElapsedMS+" ms",
		"Memory", record.MemoryMB+" MB",
		"CPU", record.CPUPct+" %",
	)
	cli.PrintKV(
		"RSS", cli.FormatBytes(record.RSS),
		"Heap Used", cli.FormatBytes(record.HeapUsed),
		"Heap Total", cli.FormatBytes(record.HeapTotal),
	)
}
