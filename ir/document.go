package ir

const (
	DefaultEncoding = "UTF8"
	DefaultIndent   = " "
)

type Document struct {
	// Encoding is the charset name exactly as written in the header.
	Encoding string
	// Indent is one level of indentation.
	Indent string
	// TrailingCommas is set when lists terminate every element, the
	// last one included, with a comma.
	TrailingCommas bool
	// ProjectName labels the project configuration list.  The file
	// itself does not store it.
	ProjectName string

	Root *Node
}

func NewDocument(root *Node) *Document {
	return &Document{
		Encoding: DefaultEncoding,
		Indent:   DefaultIndent,
		Root:     root,
	}
}
