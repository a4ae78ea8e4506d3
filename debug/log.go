package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/toonify/toon-format/go-toon/encode"
	"github.com/toonify/toon-format/go-toon/ir"
)

// Logf writes a debug line to stderr, rendering *ir.Node arguments in
// their textual form.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf); err != nil {
			args[i] = fmt.Sprintf("[raw node] %v", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
}
