// Package main is the entry point for the odoolink CLI application.
// It runs record operations against an Odoo server over JSON-RPC.
package main

import (
	"odoolink/cli/cmd"
)

// main is the entry point for the odoolink CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
