// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/mapping"
	"odoolink/cli/internal/odoo"

	"github.com/spf13/cobra"
)

var (
	listFilters []string
	listFields  string
	listOffset  int
	listLimit   int
	listOutput  string
)

// listCmd searches records.
var listCmd = &cobra.Command{
	Use:     "list <resource>",
	Aliases: []string{"search"},
	Short:   "Search records",
	Long: `Search records of a resource. Filters take the form "field operator value";
operators are equal (=), notEqual (!=), greaterThen (>), lesserThen (<),
greaterOrEqual (>=), lesserOrEqual (<=), like, in, notIn (not in) and childOf.

` + valueHelp + `

Example:
  odoolink list contact --filter "name like Acme" --filter "id in [1,2,3]" --fields name,email --limit 10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listOutput != "table" && listOutput != "json" {
			return errors.Invalid("getAll", fmt.Sprintf("unknown output format %q (want table or json)", listOutput))
		}
		var filters []mapping.Filter
		for _, f := range listFilters {
			filter, err := parseFilter("getAll", f)
			if err != nil {
				return err
			}
			filters = append(filters, filter)
		}
		fields := splitFields(listFields)

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		res, err := s.Client.GetAll(cmd.Context(), s.Identity, args[0], odoo.ListOptions{
			Filters: filters,
			Fields:  fields,
			Offset:  listOffset,
			Limit:   listLimit,
		})
		if err != nil {
			return err
		}
		if listOutput == "json" {
			return printJSON(cmd.OutOrStdout(), res)
		}
		table, err := recordTable(res, fields)
		if err != nil {
			return printJSON(cmd.OutOrStdout(), res)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), table)
		return err
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	f := listCmd.Flags()
	f.StringArrayVar(&listFilters, "filter", nil, "Filter \"field operator value\" (repeatable, combined with AND)")
	f.StringVar(&listFields, "fields", "", "Comma-separated fields to return (default all)")
	f.IntVar(&listOffset, "offset", 0, "Number of records to skip")
	f.IntVar(&listLimit, "limit", 0, "Maximum number of records (0 = no limit)")
	f.StringVarP(&listOutput, "output", "o", "table", "Output format: table or json")
}
