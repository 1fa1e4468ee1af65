// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

package mapping

import (
	"reflect"
	"testing"

	"odoolink/cli/internal/errors"
)

func TestEncodeFilters_OperatorTokens(t *testing.T) {
	tests := []struct {
		op   FilterOperator
		want string
	}{
		{Equal, "="},
		{NotEqual, "!="},
		{GreaterThen, ">"},
		{LesserThen, "<"},
		{GreaterOrEqual, ">="},
		{LesserOrEqual, "<="},
		{Like, "like"},
		{In, "in"},
		{NotIn, "not in"},
		{ChildOf, "child_of"},
	}

	if len(tests) != len(Operators()) {
		t.Fatalf("table covers %d operators, enumeration has %d", len(tests), len(Operators()))
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := EncodeFilters([]Filter{{Field: "x", Operator: tt.op, Value: 1}})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := [][]any{{"x", tt.want, 1}}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("EncodeFilters() = %v, want %v", got, want)
			}
		})
	}
}

func TestEncodeFilters_Absent(t *testing.T) {
	got, err := EncodeFilters(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("EncodeFilters(nil) = %v, want nil", got)
	}

	got, err = EncodeFilters([]Filter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("EncodeFilters([]) = %#v, want empty non-nil", got)
	}
}

func TestEncodeFilters_UnknownOperator(t *testing.T) {
	_, err := EncodeFilters([]Filter{{Field: "name", Operator: "between", Value: 1}})
	if !errors.Is(err, errors.Validation) {
		t.Errorf("EncodeFilters() error = %v, want validation error", err)
	}
}

func TestEncodeFilters_KeepsOrder(t *testing.T) {
	got, err := EncodeFilters([]Filter{
		{Field: "name", Operator: Like, Value: "Acme"},
		{Field: "id", Operator: In, Value: []any{1, 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][]any{{"name", "like", "Acme"}, {"id", "in", []any{1, 2}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EncodeFilters() = %v, want %v", got, want)
	}
}

func TestEncodeFieldUpdates(t *testing.T) {
	tests := []struct {
		name    string
		updates []FieldUpdate
		want    map[string]any
	}{
		{name: "nil", updates: nil, want: map[string]any{}},
		{name: "empty", updates: []FieldUpdate{}, want: map[string]any{}},
		{
			name:    "single",
			updates: []FieldUpdate{{Name: "name", Value: "Acme"}},
			want:    map[string]any{"name": "Acme"},
		},
		{
			name: "last duplicate wins",
			updates: []FieldUpdate{
				{Name: "name", Value: "first"},
				{Name: "email", Value: "a@b.c"},
				{Name: "name", Value: "second"},
			},
			want: map[string]any{"name": "second", "email": "a@b.c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeFieldUpdates(tt.updates)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EncodeFieldUpdates() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"contact", "res.partner"},
		{"opportunity", "crm.lead"},
		{"note", "note.note"},
		{"custom.model", "custom.model"},
		{"sale.order", "sale.order"},
	}
	for _, tt := range tests {
		if got := ResolveModel(tt.alias); got != tt.want {
			t.Errorf("ResolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestRemoteMethod(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpCreate, "create"},
		{OpGet, "read"},
		{OpGetAll, "search_read"},
		{OpUpdate, "write"},
		{OpDelete, "unlink"},
	}
	for _, tt := range tests {
		got, err := RemoteMethod(tt.op)
		if err != nil || got != tt.want {
			t.Errorf("RemoteMethod(%q) = %q, %v; want %q", tt.op, got, err, tt.want)
		}
	}
	if _, err := RemoteMethod("archive"); err == nil {
		t.Error("RemoteMethod(archive) expected error")
	}
}

func TestParseFilterOperator(t *testing.T) {
	tests := []struct {
		in      string
		want    FilterOperator
		wantErr bool
	}{
		{in: "equal", want: Equal},
		{in: "=", want: Equal},
		{in: "!=", want: NotEqual},
		{in: ">=", want: GreaterOrEqual},
		{in: "child_of", want: ChildOf},
		{in: "child-of", want: ChildOf},
		{in: "ChildOf", want: ChildOf},
		{in: "not in", want: NotIn},
		{in: "not_in", want: NotIn},
		{in: "greaterThan", want: GreaterThen},
		{in: "lesser_than", want: LesserThen},
		{in: "like", want: Like},
		{in: "between", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilterOperator(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFilterOperator(%q) expected error, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFilterOperator(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAliasesIsACopy(t *testing.T) {
	a := Aliases()
	a["contact"] = "changed"
	if ResolveModel("contact") != "res.partner" {
		t.Error("mutating Aliases() result changed the table")
	}
}
