// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package mapping holds the static translation tables between odoolink's logical
// vocabulary (operations, resource aliases, filter operators) and the remote server's
// method names, model identifiers and domain operator tokens, plus the encoders that
// turn filter and field descriptions into the positional shapes the RPC expects.
//
// The tables are built once at package initialization and only read afterwards.
package mapping

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// Operation is a logical CRUD operation.
type Operation string

const (
	OpCreate Operation = "create"
	OpGet    Operation = "get"
	OpGetAll Operation = "getAll"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// FilterOperator is a logical filter comparison.
type FilterOperator string

const (
	Equal          FilterOperator = "equal"
	NotEqual       FilterOperator = "notEqual"
	GreaterThen    FilterOperator = "greaterThen"
	LesserThen     FilterOperator = "lesserThen"
	GreaterOrEqual FilterOperator = "greaterOrEqual"
	LesserOrEqual  FilterOperator = "lesserOrEqual"
	Like           FilterOperator = "like"
	In             FilterOperator = "in"
	NotIn          FilterOperator = "notIn"
	ChildOf        FilterOperator = "childOf"
)

var operationMethods = map[Operation]string{
	OpCreate: "create",
	OpGet:    "read",
	OpGetAll: "search_read",
	OpUpdate: "write",
	OpDelete: "unlink",
}

var resourceModels = map[string]string{
	"contact":     "res.partner",
	"opportunity": "crm.lead",
	"note":        "note.note",
}

// operatorOrder fixes the enumeration order for Operators.
var operatorOrder = []FilterOperator{
	Equal, NotEqual, GreaterThen, LesserThen, GreaterOrEqual,
	LesserOrEqual, Like, In, NotIn, ChildOf,
}

var operatorTokens = map[FilterOperator]string{
	Equal:          "=",
	NotEqual:       "!=",
	GreaterThen:    ">",
	LesserThen:     "<",
	GreaterOrEqual: ">=",
	LesserOrEqual:  "<=",
	Like:           "like",
	In:             "in",
	NotIn:          "not in",
	ChildOf:        "child_of",
}

// operatorAliases maps correctly spelled comparisons onto the enumeration.
var operatorAliases = map[string]FilterOperator{
	"greaterThan": GreaterThen,
	"lessThan":    LesserThen,
	"lesserThan":  LesserThen,
}

// RemoteMethod returns the server method implementing op.
func RemoteMethod(op Operation) (string, error) {
	m, ok := operationMethods[op]
	if !ok {
		return "", fmt.Errorf("mapping: no remote method for operation %q", op)
	}
	return m, nil
}

// ResolveModel returns the model identifier for a resource alias.
// Aliases missing from the table are returned unchanged.
func ResolveModel(alias string) string {
	if m, ok := resourceModels[alias]; ok {
		return m
	}
	return alias
}

// Aliases returns the known resource aliases and their models.
func Aliases() map[string]string {
	out := make(map[string]string, len(resourceModels))
	for k, v := range resourceModels {
		out[k] = v
	}
	return out
}

// OperatorToken returns the domain token for op.
func OperatorToken(op FilterOperator) (string, bool) {
	t, ok := operatorTokens[op]
	return t, ok
}

// Operators returns the filter operator enumeration in table order.
func Operators() []FilterOperator {
	out := make([]FilterOperator, len(operatorOrder))
	copy(out, operatorOrder)
	return out
}

// ParseFilterOperator accepts user spellings such as "child_of", "child-of" or
// "ChildOf" and returns the matching operator. Raw domain tokens ("=", "not in")
// are accepted as well.
func ParseFilterOperator(s string) (FilterOperator, error) {
	s = strings.TrimSpace(s)
	for op, token := range operatorTokens {
		if s == token && !isWord(token) {
			return op, nil
		}
	}
	name := strcase.ToLowerCamel(s)
	if _, ok := operatorTokens[FilterOperator(name)]; ok {
		return FilterOperator(name), nil
	}
	if op, ok := operatorAliases[name]; ok {
		return op, nil
	}
	return "", fmt.Errorf("mapping: unknown filter operator %q", s)
}

// isWord reports whether a token is spelled with letters, in which case the
// camel-case lookup already covers it.
func isWord(token string) bool {
	for _, r := range token {
		if (r < 'a' || r > 'z') && r != '_' && r != ' ' {
			return false
		}
	}
	return true
}
