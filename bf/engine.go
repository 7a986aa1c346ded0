package bf

import (
	"fmt"
	"io"
	"os"
	"slices"
)

const DefaultTapeSize = 30000

type Options struct {
	TapeSize int       // if zero, default to DefaultTapeSize
	EOF      byte      // stored by ',' when input is exhausted or unreadable
	Stdin    io.Reader // if nil, default to os.Stdin
	Stdout   io.Writer // if nil, default to os.Stdout
}

// Engine runs one program over one tape. It is not safe for concurrent use.
type Engine struct {
	program Program
	tape    []byte
	dp      int
	ip      int
	eof     byte
	stdin   io.Reader
	stdout  io.Writer
	fault   *Fault
	buf     [1]byte
}

func New(program Program, options Options) *Engine {
	size := options.TapeSize
	if size == 0 {
		size = DefaultTapeSize
	}
	if size < 0 {
		panic(fmt.Errorf("bad tape size: %d", size))
	}
	stdin := options.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := options.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	return &Engine{
		program: program,
		tape:    make([]byte, size),
		eof:     options.EOF,
		stdin:   stdin,
		stdout:  stdout,
	}
}

// Step executes the instruction at ip.
// done is true when ip was already at the end of the program, or when the engine has faulted.
// A fault is returned by this and every later call.
func (e *Engine) Step() (done bool, err error) {
	if e.fault != nil {
		return true, e.fault
	}
	if e.ip == len(e.program) {
		return true, nil
	}

	op := e.program[e.ip]
	switch op {

	case OpRight:
		if e.dp+1 >= len(e.tape) {
			return true, e.fail(op, ErrDataPointerOutOfRange)
		}
		e.dp++

	case OpLeft:
		if e.dp == 0 {
			return true, e.fail(op, ErrDataPointerOutOfRange)
		}
		e.dp--

	case OpInc:
		e.tape[e.dp]++

	case OpDec:
		e.tape[e.dp]--

	case OpOutput:
		e.buf[0] = e.tape[e.dp]
		if _, err := e.stdout.Write(e.buf[:]); err != nil {
			return true, e.fail(op, fmt.Errorf("write output: %w", err))
		}

	case OpInput:
		e.tape[e.dp] = e.readByte()

	case OpLoopStart:
		if e.tape[e.dp] == 0 {
			ip, ok := e.matchForward()
			if !ok {
				return true, e.fail(op, ErrUnmatchedBracket)
			}
			e.ip = ip
		}

	case OpLoopEnd:
		if e.tape[e.dp] != 0 {
			ip, ok := e.matchBackward()
			if !ok {
				return true, e.fail(op, ErrUnmatchedBracket)
			}
			e.ip = ip
		}

	}

	e.ip++
	return false, nil
}

// Run steps until the program halts or faults.
func (e *Engine) Run() error {
	for {
		done, err := e.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Steps executes one instruction per iteration and yields it.
// A fault is yielded once and ends the sequence.
func (e *Engine) Steps(yield func(Op, error) bool) {
	for {
		ip := e.ip
		done, err := e.Step()
		if err != nil {
			yield(e.fault.Op, err)
			return
		}
		if done {
			return
		}
		if !yield(e.program[ip], nil) {
			return
		}
	}
}

func (e *Engine) fail(op Op, err error) *Fault {
	e.fault = &Fault{
		Err: err,
		Op:  op,
		IP:  e.ip,
		DP:  e.dp,
	}
	return e.fault
}

func (e *Engine) readByte() byte {
	if r, ok := e.stdin.(io.ByteReader); ok {
		b, err := r.ReadByte()
		if err != nil {
			return e.eof
		}
		return b
	}
	if _, err := io.ReadFull(e.stdin, e.buf[:]); err != nil {
		return e.eof
	}
	return e.buf[0]
}

// matchForward finds the ']' closing the '[' at ip.
func (e *Engine) matchForward() (int, bool) {
	depth := 0
	for ip := e.ip + 1; ip < len(e.program); ip++ {
		switch e.program[ip] {
		case OpLoopStart:
			depth++
		case OpLoopEnd:
			if depth == 0 {
				return ip, true
			}
			depth--
		}
	}
	return 0, false
}

// matchBackward finds the '[' opening the ']' at ip.
func (e *Engine) matchBackward() (int, bool) {
	depth := 0
	for ip := e.ip - 1; ip >= 0; ip-- {
		switch e.program[ip] {
		case OpLoopEnd:
			depth++
		case OpLoopStart:
			if depth == 0 {
				return ip, true
			}
			depth--
		}
	}
	return 0, false
}

func (e *Engine) IP() int {
	return e.ip
}

func (e *Engine) DP() int {
	return e.dp
}

func (e *Engine) Halted() bool {
	return e.fault != nil || e.ip == len(e.program)
}

// Fault returns the fault that stopped the engine, or nil.
func (e *Engine) Fault() error {
	if e.fault == nil {
		return nil
	}
	return e.fault
}

func (e *Engine) TapeSize() int {
	return len(e.tape)
}

// Cell returns the byte at i. Out of range indexes panic.
func (e *Engine) Cell(i int) byte {
	return e.tape[i]
}

type State struct {
	Program Program
	Tape    []byte
	IP      int
	DP      int
	Halted  bool
	Fault   error
}

// State returns a copy of the engine state.
func (e *Engine) State() State {
	return State{
		Program: e.program,
		Tape:    slices.Clone(e.tape),
		IP:      e.ip,
		DP:      e.dp,
		Halted:  e.Halted(),
		Fault:   e.Fault(),
	}
}
