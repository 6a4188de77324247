// Package testdata holds self-contained source cases consumed by the
// analyzer tests. Files under cases/ are typechecked one at a time, so they
// may reuse declaration names freely.
package testdata
