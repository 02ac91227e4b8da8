// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package codegen translates yBrainfuck programs to C.
//
// The generated program has the same observable behaviour as running the
// program in the engine: runs of '+' '-' and of same-direction moves are
// folded, repeat counts are applied at translation time, and every fault
// the engine would raise (overrun, unknown variable, bad bracket, invalid
// command) becomes a call to fail() at the same point in the program.
package codegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/ybrainfuck/engine"
	"github.com/ezrec/ybrainfuck/source"
	"github.com/ezrec/ybrainfuck/tape"
)

// Generator writes C source for a program.
type Generator struct {
	Name string         // Source name recorded in the header comment.
	Eof  tape.EofPolicy // Behaviour of ',' at end of input.
	Raw  bool           // If set, '.' writes raw bytes instead of UTF-8.
}

// Generate writes a complete C translation of prog to w.
func (gen *Generator) Generate(w io.Writer, prog *source.Program) (err error) {
	data := preludeData{
		Name:       gen.Name,
		TapeSize:   tape.TAPE_SIZE,
		Raw:        gen.Raw,
		Eof:        gen.Eof.String(),
		EofMessage: cString(tape.ErrEndOfInput.Error()),
	}
	for name := range prog.Symbols.All() {
		data.Names = append(data.Names, name)
	}

	err = prelude.Execute(w, data)
	if err != nil {
		return
	}

	em := newEmitter(prog)
	em.translate()

	_, err = io.WriteString(w, em.buf.String())
	if err != nil {
		return
	}

	_, err = io.WriteString(w, postlude)
	return
}

// cString quotes s for use inside a C string literal.
func cString(s string) string {
	var sb strings.Builder
	for _, c := range []byte(s) {
		switch {
		case c == '"' || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c >= 0x20 && c < 0x7f && c != '?':
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, "\\%03o", c)
		}
	}
	return sb.String()
}

type emitter struct {
	prog   *source.Program
	buf    strings.Builder
	indent int

	add  int // Pending cell delta.
	move int // Pending cursor delta, clamped to +/- TAPE_SIZE.

	unclosed  map[int]bool // Offsets of '[' with no matching ']'.
	unmatched map[int]bool // Offsets of ']' with no matching '['.
}

func newEmitter(prog *source.Program) (em *emitter) {
	em = &emitter{
		prog:      prog,
		indent:    1,
		unclosed:  map[int]bool{},
		unmatched: map[int]bool{},
	}

	var open engine.Stack
	for tok := range prog.Tokens() {
		switch tok.Command {
		case source.CMD_LOOP:
			open.Push(tok.Offset)
		case source.CMD_END:
			if _, ok := open.Pop(); !ok {
				em.unmatched[tok.Offset] = true
			}
		}
	}
	for _, offset := range open.Data {
		em.unclosed[offset] = true
	}

	return
}

func (em *emitter) put(format string, args ...any) {
	em.buf.WriteString(strings.Repeat("    ", em.indent))
	fmt.Fprintf(&em.buf, format, args...)
	em.buf.WriteByte('\n')
}

// fault renders err as the engine would report it at tok.
func (em *emitter) fault(tok source.Token, err error) string {
	lineno, column := em.prog.Position(tok.Offset)
	err = &engine.ErrRuntime{LineNo: lineno, Column: column, Err: err}
	return cString(err.Error())
}

func (em *emitter) fail(tok source.Token, err error) {
	em.put(`fail("%s");`, em.fault(tok, err))
}

func clamp(delta int) int {
	return max(-tape.TAPE_SIZE, min(tape.TAPE_SIZE, delta))
}

// flush emits the pending arithmetic or move.
func (em *emitter) flush() {
	add := ((em.add % 256) + 256) % 256
	switch {
	case add == 0:
	case add == 1:
		em.put("++tape[pos];")
	case add == 255:
		em.put("--tape[pos];")
	case add < 128:
		em.put("tape[pos] += %d;", add)
	default:
		em.put("tape[pos] -= %d;", 256-add)
	}

	if em.move != 0 {
		em.put("move(%d);", em.move)
	}

	em.add = 0
	em.move = 0
}

func (em *emitter) translate() {
	repeat := 1

	for tok := range em.prog.Tokens() {
		count := repeat
		repeat = 1

		switch tok.Command {
		case source.CMD_NOP:
		case source.CMD_REPEAT:
			n, err := strconv.Atoi(tok.Text)
			if err != nil {
				em.flush()
				em.fail(tok, engine.ErrRepeat(tok.Text))
				continue
			}
			repeat = n
		case source.CMD_INCREMENT, source.CMD_DECREMENT:
			if em.move != 0 {
				em.flush()
			}
			if tok.Command == source.CMD_DECREMENT {
				count = -count
			}
			em.add = (em.add + count%256) % 256
		case source.CMD_FORWARD, source.CMD_BACKWARD:
			if tok.Command == source.CMD_BACKWARD {
				count = -count
			}
			if em.add != 0 || (em.move < 0) != (count < 0) {
				em.flush()
			}
			em.move = clamp(em.move + clamp(count))
		case source.CMD_OUTPUT:
			em.flush()
			if count > 0 {
				em.put("output(%d);", count)
			}
		case source.CMD_INPUT:
			em.flush()
			em.put("input();")
		case source.CMD_CLEAR:
			em.add = 0
			em.flush()
			em.put("tape[pos] = 0;")
		case source.CMD_VARIABLE:
			em.flush()
			address, ok := em.prog.Symbols.Lookup(tok.Text)
			if !ok {
				em.fail(tok, tape.ErrVariable(tok.Text))
				continue
			}
			em.put("move_to(%d); /* %s */", address, tok.Text)
		case source.CMD_LOOP:
			em.flush()
			if em.unclosed[tok.Offset] {
				em.put("if (!tape[pos])")
				em.put(`    fail("%s");`, em.fault(tok, engine.ErrUnclosedBracket))
				em.put("{")
			} else {
				em.put("while (tape[pos]) {")
			}
			em.indent++
		case source.CMD_END:
			em.flush()
			if em.unmatched[tok.Offset] {
				em.fail(tok, engine.ErrUnmatchedBracket)
				continue
			}
			em.indent--
			em.put("}")
		case source.CMD_HALT:
			em.flush()
			em.put("return 0;")
		case source.CMD_DUMP_RAW:
			em.flush()
			em.put("dump_raw();")
		case source.CMD_DUMP:
			em.flush()
			em.put("dump();")
		default:
			em.flush()
			em.fail(tok, engine.ErrCommand(tok.Text))
		}
	}

	em.flush()
	for em.indent > 1 {
		em.indent--
		em.put("}")
	}
}
