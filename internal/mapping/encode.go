// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package mapping

import (
	"fmt"

	"odoolink/cli/internal/errors"
)

// Filter is one condition of a search domain.
// Value is a string or number; In and NotIn take a slice.
type Filter struct {
	Field    string         `json:"fieldName"`
	Operator FilterOperator `json:"operator"`
	Value    any            `json:"value"`
}

// FieldUpdate is one field assignment for create or update.
type FieldUpdate struct {
	Name  string `json:"fieldName"`
	Value any    `json:"fieldValue"`
}

// EncodeFilters converts filters into domain triples [field, token, value].
// A nil slice yields nil; an unknown operator is rejected.
func EncodeFilters(filters []Filter) ([][]any, error) {
	if filters == nil {
		return nil, nil
	}
	out := make([][]any, 0, len(filters))
	for i, f := range filters {
		token, ok := OperatorToken(f.Operator)
		if !ok {
			return nil, errors.Invalid("encode filters", fmt.Sprintf("filter %d: unknown operator %q", i, f.Operator))
		}
		out = append(out, []any{f.Field, token, f.Value})
	}
	return out, nil
}

// EncodeFieldUpdates reduces updates into a field map; later duplicates win.
func EncodeFieldUpdates(updates []FieldUpdate) map[string]any {
	out := make(map[string]any, len(updates))
	for _, u := range updates {
		out[u.Name] = u.Value
	}
	return out
}
