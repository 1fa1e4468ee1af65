// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"sort"

	"odoolink/cli/internal/mapping"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// resourcesCmd lists the resource aliases and filter operators the CLI accepts.
var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List resource aliases and filter operators",
	Long: `Resource arguments accept either a model name (res.partner, sale.order, ...)
or one of the aliases listed here. Filters use the operators listed here.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		aliases := mapping.Aliases()
		names := make([]string, 0, len(aliases))
		for alias := range aliases {
			names = append(names, alias)
		}
		sort.Strings(names)
		rows := [][]string{{"alias", "model"}}
		for _, alias := range names {
			rows = append(rows, []string{alias, aliases[alias]})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
		fmt.Fprintln(out)

		rows = [][]string{{"operator", "token"}}
		for _, op := range mapping.Operators() {
			token, _ := mapping.OperatorToken(op)
			rows = append(rows, []string{string(op), token})
		}
		table, err = pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resourcesCmd)
}
