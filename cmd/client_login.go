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
)

// clientLoginCmd represents the clientLogin command.
var clientLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange credentials for a bearer token",
	Long: `Exchange a username and password for the bearer token used by all
authenticated endpoints.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		token, err := apiClient.Login(ctx, username, password)
		if err != nil {
			cli.LogFatal(logger, "failed to login", err)
		}

		if jsonOutput {
			data, _ := json.Marshal(map[string]string{"token": token})
			fmt.Println(string(data))
			return
		}

		fmt.Println()
		cli.PrintKV("Token", token)
	},
}

func init() {
	clientCmd.AddCommand(clientLoginCmd)

	clientLoginCmd.PersistentFlags().
		StringP("username", "u", "", "Username to authenticate with")
	clientLoginCmd.PersistentFlags().
		StringP("password", "p", "", "Password to authenticate with")

	_ = clientLoginCmd.MarkPersistentFlagRequired("username")
	_ = clientLoginCmd.MarkPersistentFlagRequired("password")
}
