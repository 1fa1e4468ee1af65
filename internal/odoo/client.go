// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package odoo implements the record operations (create, read, search, update,
// delete, workflow actions) and the introspection calls on top of the JSON-RPC
// transport. Each data operation takes an explicit session.Identity and performs
// exactly one remote call; inputs are validated before anything is sent.
//
// Every error leaving this package is an *errors.E.
package odoo

import (
	"context"
	"encoding/json"
	"regexp"
	"strconv"

	"odoolink/cli/internal/backend"
	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/mapping"
	"odoolink/cli/internal/session"
)

// Client runs operations through a backend.Caller.
type Client struct {
	caller backend.Caller
}

// New wraps caller.
func New(caller backend.Caller) *Client {
	return &Client{caller: caller}
}

// Dial builds a Client that posts to baseURL through doer.
func Dial(baseURL string, doer backend.Doer) *Client {
	return New(backend.New(baseURL, doer))
}

// Login resolves creds into an identity for the data operations.
func (c *Client) Login(ctx context.Context, creds session.Credentials) (session.Identity, error) {
	return session.Resolve(ctx, c.caller, creds)
}

// execute calls object.execute(db, uid, password, model, method, args...).
func (c *Client) execute(ctx context.Context, id session.Identity, model, method string, args ...any) (json.RawMessage, error) {
	full := make([]any, 0, 5+len(args))
	full = append(full, id.Database, id.UserID, id.Password, model, method)
	full = append(full, args...)
	return c.caller.Call(ctx, backend.ServiceObject, "execute", full...)
}

var digits = regexp.MustCompile(`^\d+$`)

// parseID accepts one or more ASCII digits that parse to a nonzero integer.
func parseID(op, raw string) (int64, error) {
	if !digits.MatchString(raw) {
		return 0, errors.Invalid(op, "invalid id: "+strconv.Quote(raw))
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, errors.Invalid(op, "invalid id: "+strconv.Quote(raw))
	}
	return n, nil
}

// fieldList sends an empty list when no fields were requested; the server
// then returns every field.
func fieldList(fields []string) []string {
	if fields == nil {
		return []string{}
	}
	return fields
}

func remoteMethod(op mapping.Operation) string {
	m, err := mapping.RemoteMethod(op)
	if err != nil {
		panic(err)
	}
	return m
}
