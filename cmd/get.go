// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

var getFields string

// getCmd reads one record.
var getCmd = &cobra.Command{
	Use:   "get <resource> <id>",
	Short: "Read one record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		res, err := s.Client.Get(cmd.Context(), s.Identity, args[0], args[1], splitFields(getFields))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getFields, "fields", "", "Comma-separated fields to return (default all)")
}
