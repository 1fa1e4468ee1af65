// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// deleteCmd removes one record.
var deleteCmd = &cobra.Command{
	Use:     "delete <resource> <id>",
	Aliases: []string{"rm"},
	Short:   "Delete one record",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		res, err := s.Client.Delete(cmd.Context(), s.Identity, args[0], args[1])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
