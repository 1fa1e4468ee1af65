// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the transport to the server's JSON-RPC endpoint.
// It builds the legacy "call" envelope, posts it through an injected HTTP capability
// and unwraps the result or error envelope into a raw value or a normalized error.
// It has no retry, backoff or caching of its own.
package backend

import (
	"context"
	"encoding/json"
	"net/http"
)

// Doer is the HTTP capability the transport depends on.
// *http.Client satisfies it; tests substitute fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Caller issues one JSON-RPC call against a service and returns the raw result.
type Caller interface {
	Call(ctx context.Context, service, method string, args ...any) (json.RawMessage, error)
}

// Services exposed by the server's JSON-RPC dialect.
const (
	ServiceCommon = "common"
	ServiceObject = "object"
)
