// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd logs in with the active credentials and shows the resulting identity.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "👤 %s on %s (uid %d)\n", s.Credentials.Username, s.Identity.Database, s.Identity.UserID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
