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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/itembench/itembench/internal/cli"
)

// clientSortCmd represents the clientSort command.
var clientSortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Benchmark the sorting algorithms",
	Long: `Submits a list of numbers to the sorting benchmark. The server runs
bubble sort, quick sort, and binary insertion sort over the list and reports
elapsed time, memory, and CPU usage per algorithm.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		rawList, _ := cmd.Flags().GetString("list")

		list, err := parseFloatList(rawList)
		if err != nil {
			cli.LogFatal(logger, "failed to parse list", err)
		}

		results, err := apiClient.Sort(ctx, list)
		if err != nil {
			cli.LogFatal(logger, "failed to sort list", err)
		}

		if jsonOutput {
			data, err := json.Marshal(results)
			if err != nil {
				cli.LogFatal(logger, "failed to marshal results", err)
			}
			fmt.Println(string(data))
			return
		}

		cli.PrintCompactTable([]cli.Section{
			{Headers: sortHeaders, Rows: sortResultRows(results)},
		})
	},
}

// parseFloatList parses a comma-separated list of numbers.
func parseFloatList(
	raw string,
) ([]float64, error) {
	parts := strings.Split(raw, ",")
	list := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", part, err)
		}
		list = append(list, v)
	}
	return list, nil
}

func init() {
	clientCmd.AddCommand(clientSortCmd)

	clientSortCmd.PersistentFlags().
		StringP("list", "l", "", "Comma-separated numbers to sort, e.g. '5,3,1'")

	_ = clientSortCmd.MarkPersistentFlagRequired("list")
}
