package gobind

import (
	"go/types"
	"testing"
)

const handleSrc = `package cases

type Level int

const (
	Low Level = iota
	High
)

type Grade string

const GradeA Grade = "A"

type Flag bool

type Plain int

type Box struct{}
`

func TestHandleFor(t *testing.T) {
	_, info := typecheck(t, handleSrc)

	lookup := func(name string) types.Type {
		for _, obj := range info.Defs {
			if obj == nil || obj.Name() != name {
				continue
			}
			if tn, ok := obj.(*types.TypeName); ok {
				return tn.Type()
			}
		}
		t.Fatalf("type %s not found", name)
		return nil
	}

	t.Run("int enum", func(t *testing.T) {
		h := HandleFor(lookup("Level"))
		if !h.IsEnum() {
			t.Fatal("Level must be an enumeration")
		}
		members := h.EnumMembers()
		if len(members) != 2 {
			t.Fatalf("expected 2 members, got %d", len(members))
		}
		// Package scope iterates sorted by name.
		if members[0].Name() != "High" || members[1].Name() != "Low" {
			t.Errorf("unexpected members %v, %v", members[0].Name(), members[1].Name())
		}
	})

	t.Run("string enum", func(t *testing.T) {
		h := HandleFor(lookup("Grade"))
		if !h.IsEnum() {
			t.Fatal("Grade must be an enumeration")
		}
		if got := len(h.EnumMembers()); got != 1 {
			t.Errorf("expected 1 member, got %d", got)
		}
	})

	t.Run("named bool is boolean, not enum", func(t *testing.T) {
		h := HandleFor(lookup("Flag"))
		if !h.IsBoolean() {
			t.Error("Flag must be boolean")
		}
		if h.IsEnum() {
			t.Error("bool-underlying types are not enumerations")
		}
	})

	t.Run("plain bool", func(t *testing.T) {
		h := HandleFor(types.Typ[types.Bool])
		if !h.IsBoolean() {
			t.Error("bool must be boolean")
		}
	})

	t.Run("named type without constants", func(t *testing.T) {
		h := HandleFor(lookup("Plain"))
		if h.IsEnum() || h.IsBoolean() {
			t.Error("Plain has no members and must stay unsupported")
		}
	})

	t.Run("struct type", func(t *testing.T) {
		h := HandleFor(lookup("Box"))
		if h.IsEnum() || h.IsBoolean() {
			t.Error("struct types must stay unsupported")
		}
	})

	t.Run("nullable predicates are never true for go types", func(t *testing.T) {
		for _, name := range []string{"Level", "Flag"} {
			h := HandleFor(lookup(name))
			if h.IsNullableBoolean() || h.IsNullableEnum() {
				t.Errorf("%s must not answer any nullable predicate", name)
			}
		}
	})
}

func TestEnumMemberIdentity(t *testing.T) {
	_, info := typecheck(t, handleSrc)

	var level types.Type
	for _, obj := range info.Defs {
		if obj != nil && obj.Name() == "Level" {
			level = obj.Type()
		}
	}
	if level == nil {
		t.Fatal("Level not found")
	}

	// Two independently built handles must yield equal member values, since
	// the underlying constant objects are canonical.
	a := HandleFor(level).EnumMembers()
	b := HandleFor(level).EnumMembers()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("member %d: handles disagree on member identity", i)
		}
	}
}

func TestReferenceText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Reference
		wantErr bool
	}{
		{
			name: "plain",
			text: `"example.com/project/module".Biome`,
			want: Reference{Package: "example.com/project/module", Type: "Biome"},
		},
		{
			name: "stdlib-like",
			text: `"time".Month`,
			want: Reference{Package: "time", Type: "Month"},
		},
		{name: "empty", text: "", wantErr: true},
		{name: "no quotes", text: "time.Month", wantErr: true},
		{name: "unterminated package", text: `"time.Month`, wantErr: true},
		{name: "missing type", text: `"time"`, wantErr: true},
		{name: "bad identifier", text: `"time".Mon-th`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Reference
			err := r.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected parsing of %q to fail", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %s", tt.text, err)
			}
			if r != tt.want {
				t.Errorf("reference mismatch: got %+v, want %+v", r, tt.want)
			}

			back, err := r.MarshalText()
			if err != nil {
				t.Fatalf("marshal %+v: %s", r, err)
			}
			if string(back) != tt.text {
				t.Errorf("round-trip mismatch: got %q, want %q", back, tt.text)
			}
		})
	}
}
