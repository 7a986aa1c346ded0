package bf

import (
	"errors"
	"fmt"
)

var (
	ErrDataPointerOutOfRange = errors.New("data pointer out of range")
	ErrUnmatchedBracket      = errors.New("unmatched bracket")
)

// Fault is the terminal error of a run. IP is the faulting instruction.
type Fault struct {
	Err error
	Op  Op
	IP  int
	DP  int
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s at instruction %d (%s), data pointer %d", f.Err.Error(), f.IP, f.Op, f.DP)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
