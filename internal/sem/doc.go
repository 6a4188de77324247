// Package sem defines the structural types used to describe resolved
// expressions and multi-way branch constructs handed to the analysis core.
//
// The entities in this package provide a consistent vocabulary for the
// referenceable shapes a source expression can take — locals, parameters,
// members, invocations — together with the switch construct built from one
// syntactic branch statement. The caller owns the tree and the symbol table
// behind every TypeHandle; analyzers in this repository only read them.
package sem
