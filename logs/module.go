package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives terminal logs. Stdout is reserved for program output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
