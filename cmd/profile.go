// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"odoolink/cli/internal/logging"
	"odoolink/cli/internal/session"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// profileCmd shows the active credentials with the password masked, and the
// saved profiles.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the active credentials and saved profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := profileName()
		creds, err := credentialSource().Credentials(name)
		if err != nil {
			return err
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Profile " + name)).
			WithPadding(1).
			WithWriter(cmd.OutOrStdout()).
			Println(describeCredentials(creds))

		if store, err := openStore(); err == nil {
			if names, err := store.List(); err == nil && len(names) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Saved profiles: "+strings.Join(names, ", "))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

// describeCredentials renders creds for display. The password is never shown.
func describeCredentials(creds session.Credentials) string {
	db := creds.Database
	if db == "" {
		db = session.ResolveDatabaseName("", creds.URL) + " (from URL)"
	}
	password := "(not set)"
	if creds.Password != "" {
		password = "***"
	}
	return strings.Join([]string{
		"URL:      " + logging.Mask(creds.URL),
		"Database: " + db,
		"Username: " + creds.Username,
		"Password: " + password,
	}, "\n")
}
