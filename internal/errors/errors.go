// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines the single error shape returned by every odoolink operation.
// Failures are categorized by a machine-readable Kind so callers can tell local
// validation problems from upstream RPC errors and transport failures, while still
// handling one concrete type (*E).
//
// Operation boundaries call Normalize, which keeps an existing *E intact and wraps
// anything else as an api error carrying the original cause.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Validation indicates a local precondition failed before any network call.
	Validation Kind = "validation"
	// UpstreamRPC indicates the server answered with a JSON-RPC error envelope.
	UpstreamRPC Kind = "upstream_rpc"
	// API is the general category for transport, decoding and shape failures.
	API Kind = "api"
	// Auth indicates credentials could not be found or are incomplete.
	Auth Kind = "auth"
)

// E wraps an error with kind and human-friendly message.
// Data holds the server's error data for upstream_rpc errors.
type E struct {
	Kind    Kind
	Op      string
	Message string
	Data    map[string]any
	Err     error
}

func (e *E) Error() string {
	prefix := string(e.Kind)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Invalid builds a validation error for op.
func Invalid(op, msg string) *E { return &E{Kind: Validation, Op: op, Message: msg} }

// Upstream builds an upstream_rpc error from the server's error message and data.
func Upstream(msg string, data map[string]any) *E {
	return &E{Kind: UpstreamRPC, Message: msg, Data: data}
}

// Normalize converts any error into *E, tagging it with op.
// An existing *E anywhere in the chain keeps its kind, message and data.
func Normalize(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *E
	if stderrors.As(err, &e) {
		out := *e
		if out.Op == "" {
			out.Op = op
		}
		return &out
	}
	return &E{Kind: API, Op: op, Message: "request failed", Err: err}
}

// KindOf reports the Kind of err, or "" when err is not an *E.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err is an *E of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
