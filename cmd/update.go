// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

var updateSet []string

// updateCmd writes fields to one record.
var updateCmd = &cobra.Command{
	Use:   "update <resource> <id>",
	Short: "Update one record",
	Long: `Write fields to one record of a resource.

` + valueHelp + `

Example:
  odoolink update contact 7 --set phone='"0044 20 7946"' --set active=false`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := parseAssignments("update", updateSet)
		if err != nil {
			return err
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		res, err := s.Client.Update(cmd.Context(), s.Identity, args[0], args[1], fields)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringArrayVar(&updateSet, "set", nil, "Field assignment name=value (repeatable)")
}
