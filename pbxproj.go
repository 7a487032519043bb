package pbxproj

import (
	"bytes"
	"io"

	"github.com/signadot/pbxproj/encode"
	"github.com/signadot/pbxproj/ir"
	"github.com/signadot/pbxproj/objects"
	"github.com/signadot/pbxproj/parse"
	"github.com/signadot/pbxproj/policy"
)

type Project struct {
	Doc     *ir.Document
	Objects *objects.Store
}

// Decode parses a project file and indexes its objects.
func Decode(d []byte, opts ...parse.ParseOption) (*Project, error) {
	doc, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

func FromDocument(doc *ir.Document) (*Project, error) {
	store, err := objects.FromRoot(doc.Root)
	if err != nil {
		return nil, err
	}
	return &Project{Doc: doc, Objects: store}, nil
}

// Policy returns a policy table over the current state of the store.
func (p *Project) Policy() *policy.Table {
	return policy.New(p.Objects, policy.ProjectName(p.Doc.ProjectName))
}

// Encode writes the project.  Options are applied after the project's
// own policy, so callers may override it.
func (p *Project) Encode(w io.Writer, opts ...encode.EncodeOption) error {
	all := append([]encode.EncodeOption{encode.WithPolicy(p.Policy())}, opts...)
	return encode.Encode(p.Doc, w, all...)
}

func (p *Project) Bytes(opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := p.Encode(buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
