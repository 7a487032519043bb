// Package parse decodes project files.
//
// A project file starts with a header naming its character set,
//
//	// !$*UTF8*$!
//
// followed by a single brace delimited map.  Maps hold "key = value;"
// entries, lists hold comma separated values, and "/* ... */" comments,
// which may nest, can appear between any two tokens.  Comments carry no
// meaning and are dropped.
//
// Unquoted scalars are classified into bools, nulls and numbers unless
// their position in the document marks them as text; see
// [policy.ForceString].
package parse
