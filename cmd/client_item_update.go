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

// clientItemUpdateCmd represents the clientItemUpdate command.
var clientItemUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing item",
	Long:  `Rewrites an item's name and value by its identifier via the REST API.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		itemID, _ := cmd.Flags().GetInt64("id")
		name, _ := cmd.Flags().GetString("name")
		value, _ := cmd.Flags().GetString("value")

		if err := apiClient.ItemUpdate(ctx, itemID, name, value); err != nil {
			cli.LogFatal(logger, "failed to update item", err)
		}

		if jsonOutput {
			data, _ := json.Marshal(map[string]any{
				"status": "updated",
				"id":     itemID,
			})
			fmt.Println(string(data))
			return
		}

		fmt.Println()
		cli.PrintKV("ID", strconv.FormatInt(itemID, 10), "Status", "Updated")
	},
}

func init() {
	clientItemCmd.AddCommand(clientItemUpdateCmd)

	clientItemUpdateCmd.PersistentFlags().
		Int64P("id", "i", 0, "Item ID to update")
	clientItemUpdateCmd.PersistentFlags().
		StringP("name", "n", "", "New name for the item")
	clientItemUpdateCmd.PersistentFlags().
		StringP("value", "v", "", "New value for the item")

	_ = clientItemUpdateCmd.MarkPersistentFlagRequired("id")
	_ = clientItemUpdateCmd.MarkPersistentFlagRequired("name")
	_ = clientItemUpdateCmd.MarkPersistentFlagRequired("value")
}
