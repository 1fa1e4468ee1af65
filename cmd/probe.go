// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// probeCmd reports whether the helper addon that publishes method listings is
// installed. It prints true or false and only fails when no credentials exist.
var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Check whether the server publishes model method listings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, creds, err := newService().Client(profileName())
		if err != nil {
			return err
		}
		serverURL = creds.URL
		stop := spin(cmd, "Probing server")
		ok := client.IsAddonInstalled(cmd.Context(), creds)
		stop()
		fmt.Fprintln(cmd.OutOrStdout(), ok)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
