// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"odoolink/cli/internal/auth"
	"odoolink/cli/internal/session"
	"odoolink/cli/internal/terminal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loginCmd prompts for server credentials, verifies them with a login call and
// saves them as a profile in the OS keychain.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify and save server credentials as a profile",
	Long: `The login command asks for the server URL, database, username and password,
verifies them against the server and stores them in the OS keychain under the
selected profile (--profile, $ODOOLINK_PROFILE or the configured default).

Values given with --url, --db and --username are not asked for. The password is
taken from ODOO_PASSWORD when set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "❌ Secure storage is not available on this system.")
			return err
		}
		name := profileName()

		existing, _ := store.Load(name)
		creds, err := promptCredentials(terminal.NewPrompter(), existing)
		if err != nil {
			return err
		}
		serverURL = creds.URL

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout()+5*time.Second)
		defer cancel()
		stop := spin(cmd, "Verifying credentials")
		id, err := auth.NewService(nil, httpClient()).Verify(ctx, creds)
		stop()
		if err != nil {
			return err
		}

		creds.Database = id.Database
		if err := store.Save(name, creds); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "❌ Failed to save credentials securely.")
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged in to %s as %s (uid %d)\n", id.Database, creds.Username, id.UserID)
		fmt.Fprintf(cmd.OutOrStdout(), "   Saved as profile %q\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}

// promptCredentials fills in whatever flags and the environment did not supply.
func promptCredentials(p *terminal.Prompter, existing session.Credentials) (session.Credentials, error) {
	var err error
	creds := session.Credentials{URL: flagURL, Database: flagDatabase, Username: flagUsername}

	if creds.URL == "" {
		if creds.URL, err = p.Ask("Server URL", existing.URL); err != nil {
			return creds, err
		}
	}
	if creds.Database == "" {
		def := existing.Database
		if def == "" {
			def = session.ResolveDatabaseName("", creds.URL)
		}
		if creds.Database, err = p.Ask("Database", def); err != nil {
			return creds, err
		}
	}
	if creds.Username == "" {
		if creds.Username, err = p.Ask("Username", existing.Username); err != nil {
			return creds, err
		}
	}
	if pw := os.Getenv(auth.EnvPassword); pw != "" {
		creds.Password = pw
	} else {
		const label = "Password"
		if creds.Password, err = p.AskSecret(label); err != nil {
			return creds, err
		}
		if f, ok := p.In.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			terminal.ClearPreviousLines(len(label) + 2)
		}
	}
	return creds, creds.Validate()
}
