package naming

import (
	"testing"

	"github.com/semlint/caseful/internal/ident"
)

func TestForbiddenTerms(t *testing.T) {
	f := NewForbiddenTerms([]string{"Data", "  info  ", ""})

	tests := []struct {
		name     string
		display  string
		wantTerm string
		wantHit  bool
	}{
		{name: "clean name", display: "mode", wantHit: false},
		{name: "lower-case hit", display: "dataMode", wantTerm: "data", wantHit: true},
		{name: "mixed-case hit", display: "RawData", wantTerm: "data", wantHit: true},
		{name: "qualified member hit", display: "Task.ExtraInfo", wantTerm: "info", wantHit: true},
		{name: "term inside a word still counts", display: "metadata", wantTerm: "data", wantHit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, ok := f.Check(&ident.Descriptor{DisplayName: tt.display})
			if ok != tt.wantHit {
				t.Fatalf("hit mismatch for %q: got %v, want %v", tt.display, ok, tt.wantHit)
			}
			if ok && term != tt.wantTerm {
				t.Errorf("term mismatch for %q: got %q, want %q", tt.display, term, tt.wantTerm)
			}
		})
	}
}

func TestForbiddenTermsNilDescriptor(t *testing.T) {
	f := NewForbiddenTerms([]string{"data"})
	if _, ok := f.Check(nil); ok {
		t.Error("nil descriptor must never match")
	}
}

func TestForbiddenTermsEmptyList(t *testing.T) {
	f := NewForbiddenTerms(nil)
	if _, ok := f.Check(&ident.Descriptor{DisplayName: "dataMode"}); ok {
		t.Error("empty term list must never match")
	}
}
