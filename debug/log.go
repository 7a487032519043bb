package debug

import (
	"fmt"
	"os"

	"github.com/signadot/pbxproj/ir"
)

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			d, err := x.MarshalJSON()
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x.Type)
				continue
			}
			args[i] = string(d)
		case ir.Path:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
