package gobind

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Reference identifies a named type by its declaring package path and
// package-local name. It keys the configured ignore list of enumeration
// types.
type Reference struct {
	// Package is the import path of the package that declares the type
	// (e.g., "time" or "example.com/project/module").
	Package string

	// Type is the type's package-local name.
	Type string
}

var _ encoding.TextUnmarshaler = (*Reference)(nil)

// UnmarshalText parses the `"pkg/path".Type` form used in configuration
// files.
func (r *Reference) UnmarshalText(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "" {
		return errors.New("empty type reference")
	}

	if !strings.HasPrefix(s, `"`) {
		return fmt.Errorf("type reference must start with quoted package: %q", s)
	}
	end := strings.Index(s[1:], `"`)
	if end < 0 {
		return fmt.Errorf("unterminated quoted package in type reference: %q", s)
	}
	end++ // include the first quote

	pkg := s[1:end]
	if pkg == "" {
		return fmt.Errorf("package cannot be empty in type reference: %q", s)
	}

	rest := s[end+1:]
	if !strings.HasPrefix(rest, ".") {
		return fmt.Errorf("expected '.' after quoted package in type reference: %q", s)
	}
	name := rest[1:]
	if name == "" {
		return fmt.Errorf("type reference must contain a type name: %q", s)
	}
	if !isIdent(name) {
		return fmt.Errorf("invalid type name %q in type reference %q", name, s)
	}

	r.Package = pkg
	r.Type = name

	return nil
}

func (r Reference) MarshalText() ([]byte, error) {
	if r.Package == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Package")
	}
	if r.Type == "" {
		return nil, fmt.Errorf("cannot marshal Reference: empty Type")
	}

	var b strings.Builder
	b.WriteByte('"')
	b.WriteString(r.Package)
	b.WriteByte('"')
	b.WriteByte('.')
	b.WriteString(r.Type)

	return []byte(b.String()), nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
