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

	"github.com/spf13/cobra"

	"github.com/itembench/itembench/internal/cli"
)

// clientItemDeleteLastCmd represents the clientItemDeleteLast command.
var clientItemDeleteLastCmd = &cobra.Command{
	Use:   "delete-last",
	Short: "Delete the most recently created item",
	Long:  `Deletes the item with the highest identifier via the REST API.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		resp, err := apiClient.ItemDeleteLast(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to delete last item", err)
		}

		if jsonOutput {
			data, err := json.Marshal(resp)
			if err != nil {
				cli.LogFatal(logger, "failed to marshal response", err)
			}
			fmt.Println(string(data))
			return
		}

		fmt.Println()
		cli.PrintKV("ID", strconv.FormatInt(resp.ID, 10), "Status", "Deleted")
	},
}

func init() {
	clientItemCmd.AddCommand(clientItemDeleteLastCmd)
}
