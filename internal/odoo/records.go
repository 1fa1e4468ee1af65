// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package odoo

import (
	"context"
	"encoding/json"

	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/mapping"
	"odoolink/cli/internal/session"
)

// CreateResult is returned by Create.
type CreateResult struct {
	ID int64 `json:"id"`
}

// UpdateResult is returned by Update.
type UpdateResult struct {
	ID int64 `json:"id"`
}

// DeleteResult is returned by Delete.
type DeleteResult struct {
	Success bool `json:"success"`
}

// ListOptions configures GetAll. Zero Offset and Limit mean "from the start" and
// "no limit".
type ListOptions struct {
	Filters []mapping.Filter
	Fields  []string
	Offset  int
	Limit   int
}

// Create inserts a record built from fields.
func (c *Client) Create(ctx context.Context, id session.Identity, resource string, fields []mapping.FieldUpdate) (CreateResult, error) {
	const op = "create"
	res, err := c.execute(ctx, id, mapping.ResolveModel(resource), remoteMethod(mapping.OpCreate), mapping.EncodeFieldUpdates(fields))
	if err != nil {
		return CreateResult{}, errors.Normalize(op, err)
	}
	var n json.Number
	if err := json.Unmarshal(res, &n); err != nil {
		return CreateResult{}, errors.Normalize(op, errors.New(errors.API, "unexpected create result: "+string(res)))
	}
	newID, err := n.Int64()
	if err != nil {
		return CreateResult{}, errors.Normalize(op, errors.New(errors.API, "unexpected create result: "+string(res)))
	}
	return CreateResult{ID: newID}, nil
}

// Get reads one record. A nil fields slice returns every field.
func (c *Client) Get(ctx context.Context, id session.Identity, resource, itemID string, fields []string) (json.RawMessage, error) {
	const op = "get"
	n, err := parseID(op, itemID)
	if err != nil {
		return nil, err
	}
	res, err := c.execute(ctx, id, mapping.ResolveModel(resource), remoteMethod(mapping.OpGet), []int64{n}, fieldList(fields))
	if err != nil {
		return nil, errors.Normalize(op, err)
	}
	return res, nil
}

// GetAll searches records matching opts.Filters.
func (c *Client) GetAll(ctx context.Context, id session.Identity, resource string, opts ListOptions) (json.RawMessage, error) {
	const op = "getAll"
	if opts.Offset < 0 || opts.Limit < 0 {
		return nil, errors.Invalid(op, "offset and limit must not be negative")
	}
	domain, err := mapping.EncodeFilters(opts.Filters)
	if err != nil {
		return nil, errors.Normalize(op, err)
	}
	if domain == nil {
		domain = [][]any{}
	}
	res, err := c.execute(ctx, id, mapping.ResolveModel(resource), remoteMethod(mapping.OpGetAll), domain, fieldList(opts.Fields), opts.Offset, opts.Limit)
	if err != nil {
		return nil, errors.Normalize(op, err)
	}
	return res, nil
}

// Update writes fields to one record.
func (c *Client) Update(ctx context.Context, id session.Identity, resource, itemID string, fields []mapping.FieldUpdate) (UpdateResult, error) {
	const op = "update"
	values := mapping.EncodeFieldUpdates(fields)
	if len(values) == 0 {
		return UpdateResult{}, errors.Invalid(op, "no fields to update")
	}
	n, err := parseID(op, itemID)
	if err != nil {
		return UpdateResult{}, err
	}
	if _, err := c.execute(ctx, id, mapping.ResolveModel(resource), remoteMethod(mapping.OpUpdate), []int64{n}, values); err != nil {
		return UpdateResult{}, errors.Normalize(op, err)
	}
	return UpdateResult{ID: n}, nil
}

// Delete removes one record.
func (c *Client) Delete(ctx context.Context, id session.Identity, resource, itemID string) (DeleteResult, error) {
	const op = "delete"
	n, err := parseID(op, itemID)
	if err != nil {
		return DeleteResult{}, err
	}
	if _, err := c.execute(ctx, id, mapping.ResolveModel(resource), remoteMethod(mapping.OpDelete), []int64{n}); err != nil {
		return DeleteResult{}, errors.Normalize(op, err)
	}
	return DeleteResult{Success: true}, nil
}

// Workflow invokes a model method (e.g. "action_confirm") on one record.
func (c *Client) Workflow(ctx context.Context, id session.Identity, resource, itemID, method string) (json.RawMessage, error) {
	const op = "workflow"
	n, err := parseID(op, itemID)
	if err != nil {
		return nil, err
	}
	if method == "" {
		return nil, errors.Invalid(op, "method name is required")
	}
	res, err := c.execute(ctx, id, mapping.ResolveModel(resource), method, []int64{n})
	if err != nil {
		return nil, errors.Normalize(op, err)
	}
	return res, nil
}
