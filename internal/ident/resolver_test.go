package ident

import (
	"testing"

	"github.com/semlint/caseful/internal/sem"
)

type handle struct {
	name string
}

func (h *handle) Name() string                  { return h.name }
func (h *handle) IsBoolean() bool               { return false }
func (h *handle) IsNullableBoolean() bool       { return false }
func (h *handle) IsEnum() bool                  { return false }
func (h *handle) IsNullableEnum() bool          { return false }
func (h *handle) EnumMembers() []sem.EnumMember { return nil }

func TestResolve(t *testing.T) {
	severity := &handle{name: "Severity"}

	tests := []struct {
		name string
		expr sem.Expr
		want *Descriptor
	}{
		{
			name: "local variable",
			expr: &sem.LocalRef{Name: "mode", DeclType: severity},
			want: &Descriptor{Name: "mode", DisplayName: "mode", Type: severity, Kind: KindVariable},
		},
		{
			name: "value parameter",
			expr: &sem.ParamRef{Name: "level", Mode: sem.ParamModeValue, DeclType: severity},
			want: &Descriptor{Name: "level", DisplayName: "level", Type: severity, Kind: KindValueParam},
		},
		{
			name: "ref parameter",
			expr: &sem.ParamRef{Name: "level", Mode: sem.ParamModeRef, DeclType: severity},
			want: &Descriptor{Name: "level", DisplayName: "level", Type: severity, Kind: KindRefParam},
		},
		{
			name: "out parameter",
			expr: &sem.ParamRef{Name: "level", Mode: sem.ParamModeOut, DeclType: severity},
			want: &Descriptor{Name: "level", DisplayName: "level", Type: severity, Kind: KindOutParam},
		},
		{
			name: "field member",
			expr: &sem.FieldRef{Recv: "Task", Name: "State", DeclType: severity},
			want: &Descriptor{Name: "State", DisplayName: "Task.State", Type: severity, Kind: KindField},
		},
		{
			name: "event member",
			expr: &sem.EventRef{Recv: "Task", Name: "Changed", DeclType: severity},
			want: &Descriptor{Name: "Changed", DisplayName: "Task.Changed", Type: severity, Kind: KindEvent},
		},
		{
			name: "property member",
			expr: &sem.PropertyRef{Recv: "Task", Name: "State", DeclType: severity},
			want: &Descriptor{Name: "State", DisplayName: "Task.State", Type: severity, Kind: KindProperty},
		},
		{
			name: "indexed property member",
			expr: &sem.IndexedPropertyRef{Recv: "Task", Name: "Items", DeclType: severity},
			want: &Descriptor{Name: "Items", DisplayName: "Task.Items", Type: severity, Kind: KindIndexedProperty},
		},
		{
			name: "method invocation",
			expr: &sem.Invocation{Recv: "Task", Name: "CurrentState", ReturnType: severity},
			want: &Descriptor{Name: "CurrentState", DisplayName: "Task.CurrentState", Type: severity, Kind: KindMethod},
		},
		{
			name: "free routine invocation",
			expr: &sem.Invocation{Name: "CurrentState", ReturnType: severity},
			want: &Descriptor{Name: "CurrentState", DisplayName: "CurrentState", Type: severity, Kind: KindMethod},
		},
		{
			name: "literal is not identifier-shaped",
			expr: &sem.Literal{Kind: sem.LitTrue},
			want: nil,
		},
		{
			name: "conversion is not identifier-shaped",
			expr: &sem.Conversion{To: severity, X: &sem.LocalRef{Name: "x", DeclType: severity}},
			want: nil,
		},
		{
			name: "opaque expression is not identifier-shaped",
			expr: &sem.Opaque{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.expr)

			if tt.want == nil {
				if got != nil {
					t.Fatalf("expected nil descriptor, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected descriptor %+v, got nil", tt.want)
			}

			if got.Name != tt.want.Name {
				t.Errorf("name mismatch: got %q, want %q", got.Name, tt.want.Name)
			}
			if got.DisplayName != tt.want.DisplayName {
				t.Errorf("display name mismatch: got %q, want %q", got.DisplayName, tt.want.DisplayName)
			}
			if got.Type != tt.want.Type {
				t.Errorf("type mismatch: got %v, want %v", got.Type, tt.want.Type)
			}
			if got.Kind != tt.want.Kind {
				t.Errorf("kind mismatch: got %v, want %v", got.Kind, tt.want.Kind)
			}
		})
	}
}

// Resolving a field reference and a property reference of members declared
// with the same type must report that type identically, differing only in
// kind.
func TestResolveMemberTypeAgreement(t *testing.T) {
	state := &handle{name: "TaskState"}

	field := Resolve(&sem.FieldRef{Recv: "Task", Name: "state", DeclType: state})
	prop := Resolve(&sem.PropertyRef{Recv: "Task", Name: "State", DeclType: state})

	if field == nil || prop == nil {
		t.Fatal("both references must resolve")
	}
	if field.Type != prop.Type {
		t.Errorf("declared type must be reported identically: field %v, property %v", field.Type, prop.Type)
	}
	if field.Kind == prop.Kind {
		t.Errorf("kinds must differ: both are %v", field.Kind)
	}
}

func TestKindString(t *testing.T) {
	if got := KindProperty.String(); got != "Property" {
		t.Errorf("unexpected kind string %q", got)
	}
	if got := Kind(999).String(); got != "unknown-kind(999)" {
		t.Errorf("unexpected fallback kind string %q", got)
	}
}
