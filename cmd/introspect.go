// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fieldsCmd prints the field metadata of a resource.
var fieldsCmd = &cobra.Command{
	Use:   "fields <resource>",
	Short: "Show the fields of a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		res, err := s.Client.Fields(cmd.Context(), s.Identity, args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

// methodsCmd lists the methods the server publishes for a resource.
var methodsCmd = &cobra.Command{
	Use:   "methods <resource>",
	Short: "List the callable methods of a resource",
	Long: `List the methods published for a resource in ir.model. This requires a
server-side addon; run 'odoolink probe' to check for it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		methods, err := s.Client.Methods(cmd.Context(), s.Identity, args[0])
		if err != nil {
			return err
		}
		if methods == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "No method listing available for "+args[0])
			return nil
		}
		for _, m := range methods {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd, methodsCmd)
}
