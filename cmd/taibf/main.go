package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bf"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/sources"
)

var (
	progFlag = cmds.Var[string]("-prog", "program to run: a file path, an http(s) URL, or - for stdin")
	tapFlag  = cmds.Switch("-tap",
		"open a starlark REPL on the engine state when the run ends;",
		"an interrupt stops the run between instructions but not while it waits for input,",
		"a second interrupt exits")
)

func main() {
	cmds.Execute(os.Args[1:])

	if *progFlag == "" {
		fmt.Fprintln(os.Stderr, "Error: -prog <file> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var code int
	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		open sources.Open,
		newEngine bf.NewEngine,
		tap debugs.Tap,
	) {
		ctx := context.Background()
		if *tapFlag {
			// keep the process alive on interrupt so the state can be inspected
			var stop context.CancelFunc
			ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
			defer stop()
			// restore the default handler so a second interrupt kills a blocked read
			context.AfterFunc(ctx, stop)
		}
		ctx, _ = newSpan(ctx, "")

		source := openProgram(ctx, open, *progFlag, os.Stderr)
		if source == nil {
			code = 1
			return
		}

		engine := newEngine(bf.Load(source.Text), os.Stdin, os.Stdout)
		steps, err := execute(ctx, engine)
		if err != nil {
			logger.ErrorContext(ctx, "run stopped",
				"error", err,
				"steps", steps,
			)
			fmt.Fprintf(os.Stderr, "Execution halted: %v\n", logs.WrapSpan(ctx, err))
			code = 1
		} else {
			logger.InfoContext(ctx, "run complete",
				"steps", steps,
			)
		}

		if *tapFlag {
			tap(context.WithoutCancel(ctx), source.Location, engine.State())
		}
	})

	os.Exit(code)
}

// openProgram reports a failed read to stderr as one line and returns nil.
func openProgram(ctx context.Context, open sources.Open, location string, stderr io.Writer) *sources.Source {
	source, err := open(ctx, location)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read program: %v\n", err)
		return nil
	}
	return source
}

const checkInterval = 1 << 16

// execute runs engine to the end, checking ctx every checkInterval steps.
func execute(ctx context.Context, engine *bf.Engine) (steps int, err error) {
	for _, err := range engine.Steps {
		if err != nil {
			return steps, err
		}
		steps++
		if steps%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return steps, err
			}
		}
	}
	return steps, nil
}
