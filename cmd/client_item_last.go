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

	"github.com/spf13/cobra"

	"github.com/itembench/itembench/internal/cli"
	"github.com/itembench/itembench/internal/store"
)

// clientItemLastCmd represents the clientItemLast command.
var clientItemLastCmd = &cobra.Command{
	Use:   "last",
	Short: "Get the most recently created item",
	Long:  `Retrieves the item with the highest identifier via the REST API.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		item, err := apiClient.ItemGetLast(ctx)
		if err != nil {
			cli.LogFatal(logger, "failed to get last item", err)
		}

		if jsonOutput {
			data, err := json.Marshal(item)
			if err != nil {
				cli.LogFatal(logger, "failed to marshal item", err)
			}
			fmt.Println(string(data))
			return
		}

		printItems([]store.Item{*item})
	},
}

func init() {
	clientItemCmd.AddCommand(clientItemLastCmd)
}
