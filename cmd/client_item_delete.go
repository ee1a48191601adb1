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
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/itembench/itembench/internal/cli"
)

// clientItemDeleteCmd represents the clientItemDelete command.
var clientItemDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an item",
	Long:  `Deletes a specific item by its identifier via the REST API.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		itemID, _ := cmd.Flags().GetInt64("id")

		if err := apiClient.ItemDelete(ctx, itemID); err != nil {
			cli.LogFatal(logger, "failed to delete item", err)
		}

		if jsonOutput {
			data, _ := json.Marshal(map[string]any{
				"status": "deleted",
				"id":     itemID,
			})
			fmt.Println(string(data))
			return
		}

		fmt.Println()
		cli.PrintKV("ID", strconv.FormatInt(itemID, 10), "Status", "Deleted")

		logger.Info("item deleted successfully",
			slog.Int64("id", itemID),
		)
	},
}

func init() {
	clientItemCmd.AddCommand(clientItemDeleteCmd)

	clientItemDeleteCmd.PersistentFlags().
		Int64P("id", "i", 0, "Item ID to delete")

	_ = clientItemDeleteCmd.MarkPersistentFlagRequired("id")
}
