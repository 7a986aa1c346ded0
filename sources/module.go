package sources

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
)

type Module struct {
	dscope.Module
	Nets nets.Module
	Logs logs.Module
}

// Stdin is read when the location is "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
