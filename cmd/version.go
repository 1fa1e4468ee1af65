// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

// versionCmd prints the CLI version only; it never contacts a server.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the CLI version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "odoolink %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// printVersion prints the CLI version and, when credentials resolve, the
// version reported by the server.
func printVersion(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "odoolink %s\n", Version)

	client, creds, err := newService().Client(profileName())
	if err != nil {
		return nil
	}
	serverURL = creds.URL
	raw, err := client.ServerVersion(cmd.Context())
	if err != nil {
		fmt.Fprintln(out, "server unknown")
		return nil
	}
	fmt.Fprintf(out, "server %s\n", serverVersionString(raw))
	return nil
}

// serverVersionString extracts server_version from the version payload.
func serverVersionString(raw json.RawMessage) string {
	var v struct {
		ServerVersion string `json:"server_version"`
	}
	if err := json.Unmarshal(raw, &v); err != nil || v.ServerVersion == "" {
		return "unknown"
	}
	return v.ServerVersion
}
