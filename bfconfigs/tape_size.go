package bfconfigs

import (
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// TapeSize is the number of cells. Zero selects the engine default.
type TapeSize int

var tapeSizeFlag = cmds.CheckedVar("-tape-size", checkTapeSize, "number of tape cells, default 30000")

func checkTapeSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("bad tape size: %d", n)
	}
	return nil
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		configs.First[int](loader, "cells"),
	))
}
