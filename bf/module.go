package bf

import (
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Configs bfconfigs.Module
	Logs    logs.Module
}

type NewEngine func(program Program, stdin io.Reader, stdout io.Writer) *Engine

func (Module) NewEngine(
	tapeSize bfconfigs.TapeSize,
	eof bfconfigs.EOFValue,
	logger logs.Logger,
) NewEngine {
	return func(program Program, stdin io.Reader, stdout io.Writer) *Engine {
		engine := New(program, Options{
			TapeSize: int(tapeSize),
			EOF:      byte(eof),
			Stdin:    stdin,
			Stdout:   stdout,
		})
		logger.Debug("new engine",
			"instructions", len(program),
			"tape_size", engine.TapeSize(),
			"eof", engine.eof,
		)
		return engine
	}
}
