package bf

// Op is one instruction symbol.
type Op byte

const (
	OpRight     Op = '>'
	OpLeft      Op = '<'
	OpInc       Op = '+'
	OpDec       Op = '-'
	OpOutput    Op = '.'
	OpInput     Op = ','
	OpLoopStart Op = '['
	OpLoopEnd   Op = ']'
)

func (o Op) Valid() bool {
	switch o {
	case OpRight, OpLeft, OpInc, OpDec, OpOutput, OpInput, OpLoopStart, OpLoopEnd:
		return true
	}
	return false
}

func (o Op) String() string {
	return string(rune(o))
}

// Program is a sanitized instruction sequence. It is not modified after Load.
type Program []Op

// Load keeps the eight instruction symbols of text in order and drops everything else.
func Load(text string) Program {
	// instruction symbols are ASCII, so no byte of a multi-byte rune can match
	ret := make(Program, 0, len(text))
	for i := 0; i < len(text); i++ {
		if op := Op(text[i]); op.Valid() {
			ret = append(ret, op)
		}
	}
	return ret
}

func (p Program) String() string {
	buf := make([]byte, len(p))
	for i, op := range p {
		buf[i] = byte(op)
	}
	return string(buf)
}
