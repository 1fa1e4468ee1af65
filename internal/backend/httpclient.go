// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/logging"

	"github.com/gorilla/rpc/v2/json2"
)

// DefaultTimeout bounds requests made through the default client.
const DefaultTimeout = 30 * time.Second

// HTTP implements Caller over the server's /jsonrpc endpoint.
type HTTP struct {
	// baseURL is the server root (e.g., "https://acme.example.com")
	baseURL string
	// client performs the request; connection reuse and TLS are its concern
	client Doer
}

// callParams is the params object of the legacy "call" envelope.
type callParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

// New creates a transport for baseURL. A nil client gets a default
// *http.Client with DefaultTimeout.
func New(baseURL string, client Doer) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTP{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Endpoint returns the full JSON-RPC URL.
func (h *HTTP) Endpoint() string { return h.baseURL + "/jsonrpc" }

// Call posts {"method":"call","params":{service, method, args}} and returns the
// raw result. A JSON-RPC error envelope becomes an upstream_rpc error; anything
// else that goes wrong becomes an api error wrapping the cause.
func (h *HTTP) Call(ctx context.Context, service, method string, args ...any) (json.RawMessage, error) {
	if args == nil {
		args = []any{}
	}
	body, err := json2.EncodeClientRequest("call", callParams{Service: service, Method: method, Args: args})
	if err != nil {
		return nil, errors.Wrap(errors.API, "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.API, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Connection", "keep-alive")

	log := logging.L()
	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		log.Debug("rpc transport failed", log.Args("service", service, "method", method, "url", logging.Mask(h.Endpoint()), "error", logging.Mask(err.Error())))
		return nil, errors.Wrap(errors.API, "send request", err)
	}
	defer resp.Body.Close()

	log.Debug("rpc call", log.Args("service", service, "method", method, "status", resp.StatusCode, "elapsed", time.Since(start).String()))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Wrap(errors.API, fmt.Sprintf("unexpected status %d", resp.StatusCode), stderrors.New(strings.TrimSpace(string(b))))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.API, "read response", err)
	}
	var result json.RawMessage
	if err := json2.DecodeClientResponse(bytes.NewReader(dropFalsyError(raw)), &result); err != nil {
		var rpcErr *json2.Error
		switch {
		case stderrors.As(err, &rpcErr):
			return nil, upstreamError(rpcErr)
		case stderrors.Is(err, json2.ErrNullResult):
			return json.RawMessage("null"), nil
		default:
			return nil, errors.Wrap(errors.API, "decode response", err)
		}
	}
	return result, nil
}

// dropFalsyError removes an "error" member that is false, 0 or "" so the
// envelope decodes by its result. Some servers and proxies send "error": false
// next to a successful result.
func dropFalsyError(raw []byte) []byte {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return raw
	}
	e, ok := envelope["error"]
	if !ok {
		return raw
	}
	switch string(bytes.TrimSpace(e)) {
	case "false", "0", `""`:
	default:
		return raw
	}
	delete(envelope, "error")
	out, err := json.Marshal(envelope)
	if err != nil {
		return raw
	}
	return out
}

// upstreamError keeps the server's error data and prefers data.message, which
// carries the exception text, over the generic envelope message.
func upstreamError(rpcErr *json2.Error) *errors.E {
	data, _ := rpcErr.Data.(map[string]any)
	msg := rpcErr.Message
	if m, ok := data["message"].(string); ok && m != "" {
		msg = m
	}
	if msg == "" {
		msg = "server returned an error"
	}
	return errors.Upstream(msg, data)
}
