// Package encode writes documents in the project file format.
//
// # Usage
//
//	doc, err := parse.Parse(data)
//	...
//	err = encode.Encode(doc, os.Stdout)
//
//	// with the layout and annotations of a record store
//	err = encode.Encode(doc, w, encode.WithPolicy(policy.New(store)))
//
// # Layout
//
// Without a [Policy] maps keep their key order, every scalar is quoted
// when it needs to be, nothing is annotated and every map and list spans
// multiple lines.  A policy can reorder keys, render maps on one line,
// suppress quoting of references, add "/* ... */" annotations and group
// the entries of a map into "Begin"/"End" sections.
//
// The indent unit and the list comma style default to the ones recorded
// in the document and can be overridden with [Indent] and
// [TrailingCommas].
//
// # Related Packages
//
//   - github.com/signadot/pbxproj/parse - decode text to documents
//   - github.com/signadot/pbxproj/policy - the policy for records
package encode
