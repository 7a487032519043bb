package encode

import (
	"bytes"
	"strings"

	"github.com/signadot/pbxproj/ir"
)

func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
