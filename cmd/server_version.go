// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// serverVersionCmd prints the server's version payload. No login is performed.
var serverVersionCmd = &cobra.Command{
	Use:   "server-version",
	Short: "Show the server's version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, creds, err := newService().Client(profileName())
		if err != nil {
			return err
		}
		serverURL = creds.URL
		res, err := client.ServerVersion(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(serverVersionCmd)
}
