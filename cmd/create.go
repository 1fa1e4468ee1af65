// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"odoolink/cli/internal/errors"

	"github.com/spf13/cobra"
)

var createSet []string

// createCmd inserts a record.
var createCmd = &cobra.Command{
	Use:   "create <resource>",
	Short: "Create a record",
	Long: `Create a record of a resource. Resources are model names such as res.partner or
one of the aliases contact, opportunity and note.

` + valueHelp + `

Example:
  odoolink create contact --set name="Acme Corp" --set is_company=true --set zip=01234`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(createSet) == 0 {
			return errors.Invalid("create", "at least one --set name=value is required")
		}
		fields, err := parseAssignments("create", createSet)
		if err != nil {
			return err
		}
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		res, err := s.Client.Create(cmd.Context(), s.Identity, args[0], fields)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringArrayVar(&createSet, "set", nil, "Field assignment name=value (repeatable)")
}
