// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package odoo

import (
	"context"
	"encoding/json"

	"odoolink/cli/internal/backend"
	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/logging"
	"odoolink/cli/internal/mapping"
	"odoolink/cli/internal/session"
)

// fieldAttributes are the attributes requested from fields_get.
var fieldAttributes = []string{"string", "type", "help", "required", "name"}

// probeModel is the model whose method listing reveals the helper addon.
const probeModel = "base"

// Fields returns the field metadata of a resource.
func (c *Client) Fields(ctx context.Context, id session.Identity, resource string) (json.RawMessage, error) {
	const op = "fields"
	res, err := c.execute(ctx, id, mapping.ResolveModel(resource), "fields_get", []any{}, fieldAttributes)
	if err != nil {
		return nil, errors.Normalize(op, err)
	}
	return res, nil
}

// Methods lists the callable methods the server publishes for a resource in
// ir.model. It returns nil without error when the listing is missing or has an
// unexpected shape.
func (c *Client) Methods(ctx context.Context, id session.Identity, resource string) ([]string, error) {
	const op = "methods"
	domain := [][]any{{"model", "=", mapping.ResolveModel(resource)}}
	res, err := c.execute(ctx, id, "ir.model", remoteMethod(mapping.OpGetAll), domain, []string{"methods"})
	if err != nil {
		return nil, errors.Normalize(op, err)
	}
	raw, ok := singleMethodsField(res)
	if !ok {
		return nil, nil
	}
	return parseMethods(raw), nil
}

// IsAddonInstalled reports whether the server publishes method listings, which
// requires the helper addon. It logs in with creds, then queries the base model.
// Any failure reports false.
func (c *Client) IsAddonInstalled(ctx context.Context, creds session.Credentials) bool {
	id, err := c.Login(ctx, creds)
	if err != nil {
		logging.L().Debug("addon probe: login failed", logging.L().Args("error", logging.Mask(err.Error())))
		return false
	}
	res, err := c.execute(ctx, id, "ir.model", remoteMethod(mapping.OpGetAll),
		[][]any{{"model", "=", probeModel}}, []string{"methods"})
	if err != nil {
		logging.L().Debug("addon probe: query failed", logging.L().Args("error", logging.Mask(err.Error())))
		return false
	}
	_, ok := singleMethodsField(res)
	return ok
}

// ServerVersion returns the server's version payload. No login is needed.
func (c *Client) ServerVersion(ctx context.Context) (json.RawMessage, error) {
	res, err := c.caller.Call(ctx, backend.ServiceCommon, "version")
	if err != nil {
		return nil, errors.Normalize("version", err)
	}
	return res, nil
}

// singleMethodsField returns the "methods" value when res holds exactly one
// record carrying that property.
func singleMethodsField(res json.RawMessage) (json.RawMessage, bool) {
	var records []map[string]json.RawMessage
	if err := json.Unmarshal(res, &records); err != nil || len(records) != 1 {
		return nil, false
	}
	raw, ok := records[0]["methods"]
	return raw, ok
}

// parseMethods accepts the methods property either as a JSON-encoded string or as
// a decoded value, holding a list of names or an object {"methods": [...]}.
func parseMethods(raw json.RawMessage) []string {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		raw = json.RawMessage(encoded)
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err == nil {
		return names
	}
	var wrapped struct {
		Methods []string `json:"methods"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Methods != nil {
		return wrapped.Methods
	}
	return nil
}
