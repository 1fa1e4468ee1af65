// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for odoolink. It exposes the
// record operations, introspection calls and credential management of the
// internal packages as Cobra subcommands.
package cmd

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"odoolink/cli/internal/auth"
	"odoolink/cli/internal/config"
	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/httperrors"
	"odoolink/cli/internal/logging"

	"github.com/spf13/cobra"
)

// EnvProfile selects the credential profile when --profile is not given.
const EnvProfile = "ODOOLINK_PROFILE"

var (
	showVersion bool

	flagProfile  string
	flagURL      string
	flagDatabase string
	flagUsername string
	verbose      bool

	cfg = config.Config{
		LogLevel:       config.DefaultLogLevel,
		DefaultProfile: config.DefaultProfile,
		TimeoutSeconds: config.DefaultTimeoutSeconds,
	}

	// serverURL is the URL of the last server contacted, for error messages.
	serverURL string

	// openStore opens the keychain profile store.
	openStore = auth.DefaultStore
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "odoolink",
	Short: "Record operations against an Odoo server over JSON-RPC",
	Long: `odoolink translates generic record operations (create, get, list, update,
delete, workflow actions) into calls against an Odoo server's /jsonrpc endpoint.

Credentials come from ODOO_URL, ODOO_DB, ODOO_USERNAME and ODOO_PASSWORD (a .env
file in the working directory is honored) or from profiles saved with
'odoolink login' in the OS keychain.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			return printVersion(cmd)
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		presentError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and server version information")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagProfile, "profile", "p", "", "Credential profile (default from $"+EnvProfile+" or the config file)")
	pf.StringVar(&flagURL, "url", "", "Server URL, overrides the profile")
	pf.StringVar(&flagDatabase, "db", "", "Database name, overrides the profile")
	pf.StringVar(&flagUsername, "username", "", "Username, overrides the profile")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup loads .env and the config file and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnv(); err != nil {
		logging.L().Warn("could not load .env", logging.L().Args("error", err.Error()))
	}
	c, err := config.Load()
	if err != nil {
		logging.L().Warn("could not read config, using defaults", logging.L().Args("error", err.Error()))
	}
	cfg = c

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logging.SetDefault(logging.New(level, cmd.ErrOrStderr()))
	return nil
}

// profileName returns the profile selected by flag, environment or config.
func profileName() string {
	if flagProfile != "" {
		return flagProfile
	}
	if env := strings.TrimSpace(os.Getenv(EnvProfile)); env != "" {
		return env
	}
	return cfg.DefaultProfile
}

func httpClient() *http.Client {
	return &http.Client{Timeout: cfg.Timeout()}
}

// credentialSource chains the environment and the keychain. An explicit
// --profile puts the keychain first.
func credentialSource() auth.Source {
	var chain auth.Chain
	store, err := openStore()
	if err != nil {
		logging.L().Debug("keychain unavailable", logging.L().Args("error", err.Error()))
	}
	switch {
	case store == nil:
		chain = auth.Chain{auth.EnvSource{}}
	case flagProfile != "":
		chain = auth.Chain{store, auth.EnvSource{}}
	default:
		chain = auth.Chain{auth.EnvSource{}, store}
	}
	return auth.Overrides{Source: chain, URL: flagURL, Database: flagDatabase, Username: flagUsername}
}

func newService() *auth.Service {
	return auth.NewService(credentialSource(), httpClient())
}

// presentError prints err for the user: transport failures get network
// troubleshooting, everything else the error taxonomy rendering.
func presentError(err error) {
	var e *errors.E
	if stderrors.As(err, &e) {
		if e.Kind == errors.API && (httperrors.IsNetworkError(e.Err) || httperrors.Classify(e) == httperrors.Server) {
			_ = httperrors.FormatNetworkError(e, describeOp(e.Op), httperrors.ExtractHostFromURL(errorServerURL()))
			return
		}
		logging.PresentRPCError(e)
		return
	}
	fmt.Fprintln(os.Stderr, logging.PresentError("error", err))
}

// errorServerURL returns the server the failed command talked to. When the
// failure happened before a session existed, the active credentials are looked up.
func errorServerURL() string {
	if serverURL != "" {
		return serverURL
	}
	if creds, err := credentialSource().Credentials(profileName()); err == nil {
		return creds.URL
	}
	return ""
}

func describeOp(op string) string {
	if op == "" {
		return "contacting the server"
	}
	return "running " + op
}

// openSession resolves the selected profile and logs in.
func openSession(cmd *cobra.Command) (*auth.Session, error) {
	stop := spin(cmd, "Logging in")
	s, err := newService().Open(cmd.Context(), profileName())
	stop()
	if err != nil {
		return nil, err
	}
	serverURL = s.Credentials.URL
	logging.L().Debug("logged in", logging.L().Args("profile", profileName(), "db", s.Identity.Database, "uid", s.Identity.UserID))
	return s, nil
}
