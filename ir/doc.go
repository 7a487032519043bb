// Package ir provides the in memory representation of project files.
//
// # Overview
//
// A project file decodes to a tree of [Node] values.  The tree is a recursive
// tagged union: the [Type] field selects which of the other fields carries
// the value.
//
//   - Scalars: null, bool, string, signed and unsigned 64 bit integers,
//     doubles and arbitrary precision decimals.
//   - Composites: objects (ordered maps with unique string keys) and arrays.
//
// Object keys live in Fields as string nodes and the corresponding values
// live at the same index in Values.  Key order is significant: it is the
// order the encoder falls back to when no policy applies.
//
// # Numbers
//
// Number nodes keep the literal they were decoded from in Number, so the
// class of a value (integer, double, decimal) survives a round trip even
// though consumers read Int64, Uint64, Float64 or Decimal.
//
// # Paths
//
// A [Path] is the sequence of keys and indices from the root to a node.
// The parser and encoder thread paths through their recursion explicitly;
// nodes can also compute their own path from parent links with
// [Node.Path].
//
// # Documents
//
// A [Document] carries a root node together with the formatting facts
// sniffed from the source text: the character set named in the header,
// the indent unit and the list comma style.
package ir
