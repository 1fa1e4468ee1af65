// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session resolves credentials into a server identity: it infers the
// database name from the server URL when none is configured and exchanges
// (database, username, password) for a numeric user id through the login call.
//
// Nothing is cached; every resolution performs the login again.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"odoolink/cli/internal/backend"
	"odoolink/cli/internal/errors"
)

// ResolveDatabaseName returns explicit when set, otherwise the first label of the
// URL host ("https://acme.example.com" -> "acme"). Input without a host yields "".
func ResolveDatabaseName(explicit, rawURL string) string {
	if explicit != "" {
		return explicit
	}
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}
	label, _, _ := strings.Cut(host, ".")
	return label
}

// Login calls common.login and returns the user id. The server answers false for
// rejected credentials, which is reported as an upstream error.
func Login(ctx context.Context, caller backend.Caller, db, username, password string) (int64, error) {
	res, err := caller.Call(ctx, backend.ServiceCommon, "login", db, username, password)
	if err != nil {
		return 0, errors.Normalize("login", err)
	}
	uid, err := parseUserID(res)
	if err != nil {
		return 0, errors.Normalize("login", err)
	}
	return uid, nil
}

// Resolve infers the database and logs in.
func Resolve(ctx context.Context, caller backend.Caller, creds Credentials) (Identity, error) {
	if err := creds.Validate(); err != nil {
		return Identity{}, errors.Normalize("login", err)
	}
	db := ResolveDatabaseName(creds.Database, creds.URL)
	uid, err := Login(ctx, caller, db, creds.Username, creds.Password)
	if err != nil {
		return Identity{}, err
	}
	return Identity{Database: db, UserID: uid, Password: creds.Password}, nil
}

func parseUserID(raw json.RawMessage) (int64, error) {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("false")) || bytes.Equal(raw, []byte("null")) {
		return 0, errors.Upstream("authentication failed: wrong login, password or database", nil)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errors.New(errors.API, "unexpected login result: "+string(raw))
	}
	uid, err := n.Int64()
	if err != nil {
		return 0, errors.New(errors.API, "unexpected login result: "+string(raw))
	}
	if uid == 0 {
		return 0, errors.Upstream("authentication failed: wrong login, password or database", nil)
	}
	return uid, nil
}
