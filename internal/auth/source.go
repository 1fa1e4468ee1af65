// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"os"
	"strings"

	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/session"
)

// Environment variables read by EnvSource.
const (
	EnvURL      = "ODOO_URL"
	EnvDatabase = "ODOO_DB"
	EnvUsername = "ODOO_USERNAME"
	EnvPassword = "ODOO_PASSWORD"
)

// Source returns the credentials registered under a name.
type Source interface {
	Credentials(name string) (session.Credentials, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(name string) (session.Credentials, error)

func (f SourceFunc) Credentials(name string) (session.Credentials, error) { return f(name) }

// EnvSource reads credentials from ODOO_* variables. It ignores the name and
// reports an auth error when ODOO_URL is unset.
type EnvSource struct {
	// Getenv defaults to os.Getenv.
	Getenv func(string) string
}

func (e EnvSource) Credentials(string) (session.Credentials, error) {
	get := e.Getenv
	if get == nil {
		get = os.Getenv
	}
	creds := session.Credentials{
		URL:      strings.TrimSpace(get(EnvURL)),
		Database: strings.TrimSpace(get(EnvDatabase)),
		Username: strings.TrimSpace(get(EnvUsername)),
		Password: get(EnvPassword),
	}
	if creds.URL == "" {
		return session.Credentials{}, errors.New(errors.Auth, EnvURL+" is not set")
	}
	return creds, nil
}

// Chain tries each source in order and returns the first success. When all fail,
// the last error is returned.
type Chain []Source

func (c Chain) Credentials(name string) (session.Credentials, error) {
	err := error(errors.New(errors.Auth, "no credential source configured"))
	for _, src := range c {
		creds, srcErr := src.Credentials(name)
		if srcErr == nil {
			return creds, nil
		}
		err = srcErr
	}
	return session.Credentials{}, err
}

// Overrides replaces non-empty fields of the looked-up credentials, e.g. from
// command-line flags.
type Overrides struct {
	Source   Source
	URL      string
	Database string
	Username string
}

func (o Overrides) Credentials(name string) (session.Credentials, error) {
	creds, err := o.Source.Credentials(name)
	if err != nil {
		return creds, err
	}
	if o.URL != "" {
		creds.URL = o.URL
	}
	if o.Database != "" {
		creds.Database = o.Database
	}
	if o.Username != "" {
		creds.Username = o.Username
	}
	return creds, nil
}
