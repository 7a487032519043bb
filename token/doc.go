// Package token holds the lexical pieces of the project file format:
// positions for error reporting, header charset resolution, string
// quoting and unquoting, and classification of unquoted scalars.
package token
