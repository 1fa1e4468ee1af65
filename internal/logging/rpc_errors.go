// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	stderrors "errors"
	"fmt"
	"strings"

	"odoolink/cli/internal/errors"

	"github.com/pterm/pterm"
)

// FormatRPCError formats an operation error in a user-friendly way.
func FormatRPCError(err error) string {
	if err == nil {
		return ""
	}

	var e *errors.E
	if !stderrors.As(err, &e) {
		e = &errors.E{Kind: errors.API, Message: "request failed", Err: err}
	}

	var builder strings.Builder

	switch e.Kind {
	case errors.Validation:
		builder.WriteString(pterm.NewStyle(pterm.FgYellow, pterm.Bold).Sprint("Invalid input"))
		builder.WriteString("\n\n")
		builder.WriteString(Mask(e.Message))
		builder.WriteString("\n\nNothing was sent to the server.\n")

	case errors.UpstreamRPC:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Server rejected the request"))
		builder.WriteString("\n\n")
		builder.WriteString(Mask(e.Message))
		builder.WriteString("\n")
		if name, ok := e.Data["name"].(string); ok && name != "" {
			builder.WriteString("\n")
			builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Exception: " + name))
			builder.WriteString("\n")
		}

	case errors.Auth:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("No usable credentials"))
		builder.WriteString("\n\n")
		builder.WriteString(Mask(e.Message))
		builder.WriteString("\n\n")
		builder.WriteString(pterm.NewStyle(pterm.FgYellow).Sprint("→ Run 'odoolink login' or set ODOO_URL, ODOO_USERNAME and ODOO_PASSWORD"))
		builder.WriteString("\n")

	default:
		builder.WriteString(pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint("Request failed"))
		builder.WriteString("\n\n")
		builder.WriteString(Mask(e.Message))
		builder.WriteString("\n")
		if e.Err != nil {
			builder.WriteString("\n")
			builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint("Technical details: " + Mask(e.Err.Error())))
			builder.WriteString("\n")
		}
	}

	if e.Op != "" {
		builder.WriteString(pterm.NewStyle(pterm.FgGray).Sprint(fmt.Sprintf("Operation: %s", e.Op)))
		builder.WriteString("\n")
	}

	return builder.String()
}

// PresentRPCError displays a formatted operation error.
func PresentRPCError(err error) {
	pterm.Println()
	pterm.Println(FormatRPCError(err))
}
