// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// execCmd runs a workflow action on one record.
var execCmd = &cobra.Command{
	Use:   "exec <resource> <id> <method>",
	Short: "Run a workflow action (model method) on one record",
	Long: `Invoke a model method on one record, for example:

  odoolink exec sale.order 42 action_confirm`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		res, err := s.Client.Workflow(cmd.Context(), s.Identity, args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
