package bfconfigs

import (
	"errors"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
)

// EOFValue is stored in the current cell when input is exhausted.
type EOFValue uint8

var eofFlag = cmds.Var[*uint8]("-eof", "byte stored on end of input, default 0")

func (Module) EOFValue(
	loader configs.Loader,
) EOFValue {
	if *eofFlag != nil {
		return EOFValue(**eofFlag)
	}
	var value uint8
	if err := loader.AssignFirst("eof", &value); err != nil {
		if errors.Is(err, configs.ErrValueNotFound) {
			return 0
		}
		panic(err)
	}
	return EOFValue(value)
}
