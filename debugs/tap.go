package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin over a snapshot of the engine.
type Tap func(ctx context.Context, what string, state bf.State)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, state bf.State) {
		logger.InfoContext(ctx, "tap: "+what,
			"ip", state.IP,
			"dp", state.DP,
			"halted", state.Halted,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(fileOptions, thread, stateGlobals(state))
	}
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

func stateGlobals(state bf.State) starlark.StringDict {
	tape := state.Tape

	cells := starlark.NewBuiltin("cells", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var from, to int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &from, &to); err != nil {
			return nil, err
		}
		if from < 0 || to > len(tape) || from > to {
			return nil, fmt.Errorf("%s: bad range [%d, %d) for %d cells", fn.Name(), from, to, len(tape))
		}
		return toStarlarkValue(tape[from:to]), nil
	})

	return starlark.StringDict{
		"ip":        toStarlarkValue(state.IP),
		"dp":        toStarlarkValue(state.DP),
		"program":   toStarlarkValue(state.Program),
		"halted":    toStarlarkValue(state.Halted),
		"fault":     toStarlarkValue(state.Fault),
		"tape_size": toStarlarkValue(len(tape)),
		"cell": toStarlarkValue(func(i int) int {
			return int(tape[i])
		}),
		"cells": cells,
	}
}
