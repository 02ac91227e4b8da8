// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package engine

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/ezrec/ybrainfuck/source"
	"github.com/ezrec/ybrainfuck/tape"
)

// Engine state. Program + tape + interpreter registers.
type Engine struct {
	Verbose bool         // If set, logs every executed command.
	Logger  *slog.Logger // Destination for verbose logging; slog.Default() if nil.

	Program *source.Program // Program being executed.
	Tape    *tape.Tape      // Memory of the program.

	Ip     int   // Offset of the next command in Program.Text.
	Repeat int   // Repeat count for the next command.
	Loops  Stack // Offsets of the '[' of every entered loop.
	Ticks  int   // Commands executed since Reset.

	halted bool
	err    error
}

// NewEngine creates an engine for prog, with a fresh tape.
func NewEngine(prog *source.Program) (eng *Engine) {
	eng = &Engine{
		Program: prog,
		Tape:    tape.NewTape(prog.Symbols),
	}
	eng.Reset()

	return
}

// Reset rewinds the program and clears the tape.
func (eng *Engine) Reset() {
	eng.Tape.Reset()
	eng.Ip = 0
	eng.Repeat = 1
	eng.Loops.Reset()
	eng.Ticks = 0
	eng.halted = false
	eng.err = nil
}

func (eng *Engine) logger() *slog.Logger {
	if eng.Logger == nil {
		return slog.Default()
	}
	return eng.Logger
}

// Done reports whether the program has halted, run off the end of the
// stream, or failed.
func (eng *Engine) Done() bool {
	return eng.halted || eng.err != nil || eng.Ip >= eng.Program.Len()
}

// Tick executes a single command.
func (eng *Engine) Tick() (done bool, err error) {
	if eng.err != nil {
		return true, eng.err
	}

	if eng.Done() {
		done = true
		return
	}

	tok := eng.Program.Token(eng.Ip)

	defer func() {
		if err != nil {
			lineno, column := eng.Program.Position(tok.Offset)
			err = &ErrRuntime{LineNo: lineno, Column: column, Err: err}
			eng.err = err
			done = true
		}
		if done {
			flush_err := eng.Tape.Flush()
			if err == nil {
				err = flush_err
			}
		}
	}()

	if eng.Verbose && tok.Command != source.CMD_NOP {
		eng.logger().Debug("tick",
			"ip", tok.Offset,
			"command", tok.Command,
			"text", tok.Text,
			"repeat", eng.Repeat,
			"position", eng.Tape.Position,
			"value", eng.Tape.Value(),
		)
	}

	next, err := eng.execute(tok)
	if err != nil {
		return
	}

	eng.Ip = next
	eng.Ticks++
	done = eng.Done()

	return
}

func (eng *Engine) execute(tok source.Token) (next int, err error) {
	tp := eng.Tape
	next = tok.Next()

	repeat := eng.Repeat
	eng.Repeat = 1

	switch tok.Command {
	case source.CMD_NOP:
	case source.CMD_HALT:
		eng.halted = true
	case source.CMD_DUMP_RAW:
		err = tp.DumpRaw()
	case source.CMD_DUMP:
		err = tp.DumpStructure()
	case source.CMD_FORWARD:
		err = tp.Move(repeat)
	case source.CMD_BACKWARD:
		err = tp.Move(-repeat)
	case source.CMD_INCREMENT:
		tp.Increment(repeat)
	case source.CMD_DECREMENT:
		tp.Decrement(repeat)
	case source.CMD_OUTPUT:
		err = tp.Write(repeat)
	case source.CMD_INPUT:
		err = tp.Read()
	case source.CMD_CLEAR:
		tp.Clear()
	case source.CMD_REPEAT:
		eng.Repeat, err = strconv.Atoi(tok.Text)
		if err != nil {
			eng.Repeat = 1
			err = ErrRepeat(tok.Text)
		}
	case source.CMD_VARIABLE:
		err = tp.MoveTo(tok.Text)
	case source.CMD_LOOP:
		if tp.Value() != 0 {
			eng.Loops.Push(tok.Offset)
		} else {
			next, err = eng.skip(tok.Offset)
		}
	case source.CMD_END:
		var ok bool
		next, ok = eng.Loops.Pop()
		if !ok {
			err = ErrUnmatchedBracket
		}
	default:
		err = ErrCommand(tok.Text)
	}

	return
}

// skip returns the offset following the ']' matching the '[' at offset.
func (eng *Engine) skip(offset int) (next int, err error) {
	prog := eng.Program

	depth := 1
	for scan := offset + 1; scan < prog.Len(); scan++ {
		switch prog.At(scan) {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				next = scan + 1
				return
			}
		}
	}

	err = ErrUnclosedBracket
	return
}

// Run ticks the engine until the program halts or fails.
func (eng *Engine) Run() (err error) {
	for done := false; !done; {
		done, err = eng.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Run preprocesses and executes yBrainfuck source text.
func Run(text string, input io.Reader, output io.Writer) (err error) {
	prog, err := source.Compile(text)
	if err != nil {
		return
	}

	eng := NewEngine(prog)
	eng.Tape.Input = input
	eng.Tape.Output = output

	return eng.Run()
}
