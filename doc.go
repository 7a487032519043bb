// Package pbxproj reads, edits and writes Xcode project files.
//
// # Usage
//
//	p, err := pbxproj.Decode(data)
//	...
//	for r := range p.Objects.All() {
//	    fmt.Println(r.Ref, r.Tag, p.Policy().Label(r.Ref))
//	}
//	removed := p.Objects.Remove(targetRef)
//	err = p.Encode(w)
//
// A [Project] pairs the decoded document with the record store over its
// objects map.  Both share one tree: edits through the store are what
// Encode writes.  Encoding lays the document out the way the IDE does,
// with records grouped into sections and references annotated.
//
// # Related Packages
//
//   - github.com/signadot/pbxproj/parse - text to documents
//   - github.com/signadot/pbxproj/encode - documents to text
//   - github.com/signadot/pbxproj/objects - the record store
//   - github.com/signadot/pbxproj/policy - layout and annotation rules
package pbxproj
