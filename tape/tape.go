// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package tape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"unicode/utf8"

	"github.com/ezrec/ybrainfuck/internal"
)

const (
	TAPE_SIZE = 30000 // Number of cells on the tape.
)

// Tape is the memory of a running program.
type Tape struct {
	Input  io.Reader // Source for the ',' command. nil reads as end of input.
	Output io.Writer // Sink for '.', '?' and '%'; bound at first write. nil discards.

	Eof EofPolicy // Behaviour of a read at end of input.
	Raw bool      // If set, cells are written as bytes rather than UTF-8 characters.

	Symbols *Symbols // Symbol table used by MoveTo and DumpStructure.

	Cell     [TAPE_SIZE]uint8 // Cell values.
	Position int              // Cursor; always within [0, TAPE_SIZE).

	out *bufio.Writer
}

// NewTape creates a zeroed tape addressed through sym.
func NewTape(sym *Symbols) *Tape {
	if sym == nil {
		sym = NewSymbols()
	}

	return &Tape{Symbols: sym}
}

// Reset zeroes every cell and returns the cursor to address 0.
func (tp *Tape) Reset() {
	clear(tp.Cell[:])
	tp.Position = 0
}

// Value returns the current cell value.
func (tp *Tape) Value() uint8 {
	return tp.Cell[tp.Position]
}

// Move shifts the cursor by delta cells. On error the cursor is unchanged.
func (tp *Tape) Move(delta int) (err error) {
	position := tp.Position + delta
	if position < 0 || position >= TAPE_SIZE {
		err = ErrOverrun(position)
		return
	}

	tp.Position = position
	return
}

// MoveTo moves the cursor to the address bound to name.
func (tp *Tape) MoveTo(name string) (err error) {
	address, ok := tp.Symbols.Lookup(name)
	if !ok {
		err = ErrVariable(name)
		return
	}

	return tp.Move(address - tp.Position)
}

// Increment adds n to the current cell, modulo 256.
func (tp *Tape) Increment(n int) {
	tp.Cell[tp.Position] += uint8(n % 256)
}

// Decrement subtracts n from the current cell, modulo 256.
func (tp *Tape) Decrement(n int) {
	tp.Cell[tp.Position] -= uint8(n % 256)
}

// Clear sets the current cell to zero.
func (tp *Tape) Clear() {
	tp.Cell[tp.Position] = 0
}

// Read stores one byte of input in the current cell.
//
// Pending output is flushed first, so prompts are visible before blocking.
func (tp *Tape) Read() (err error) {
	err = tp.Flush()
	if err != nil {
		return
	}

	var one [1]byte
	if tp.Input != nil {
		_, err = io.ReadFull(tp.Input, one[:])
	} else {
		err = io.EOF
	}

	switch {
	case err == nil:
		tp.Cell[tp.Position] = one[0]
	case errors.Is(err, io.EOF):
		err = nil
		switch tp.Eof {
		case EOF_ZERO:
			tp.Cell[tp.Position] = 0
		case EOF_KEEP:
		default:
			err = ErrEndOfInput
		}
	}

	return
}

func (tp *Tape) writer() *bufio.Writer {
	if tp.out == nil {
		dst := tp.Output
		if dst == nil {
			dst = io.Discard
		}
		tp.out = bufio.NewWriter(dst)
	}

	return tp.out
}

// Write emits the current cell as a character, times times.
func (tp *Tape) Write(times int) (err error) {
	var buf [utf8.UTFMax]byte
	var char []byte

	value := tp.Value()
	if tp.Raw || value < utf8.RuneSelf {
		buf[0] = value
		char = buf[:1]
	} else {
		char = utf8.AppendRune(buf[:0], rune(value))
	}

	w := tp.writer()
	for range times {
		_, err = w.Write(char)
		if err != nil {
			return
		}
	}

	return
}

// Flush writes any buffered output.
func (tp *Tape) Flush() (err error) {
	if tp.out == nil {
		return
	}

	return tp.out.Flush()
}

// DumpRaw writes the current cell value as a decimal number.
func (tp *Tape) DumpRaw() (err error) {
	_, err = fmt.Fprintln(tp.writer(), tp.Value())
	return
}

// Nonzero iterates over the symbols whose cells are not zero.
func (tp *Tape) Nonzero() iter.Seq2[string, int] {
	return internal.IterSeq2Filter(tp.Symbols.All(), func(_ string, address int) bool {
		return tp.Cell[address] != 0
	})
}

// DumpStructure writes the cursor, the current value, and every named
// cell holding a nonzero value.
func (tp *Tape) DumpStructure() (err error) {
	w := tp.writer()

	name, ok := tp.Symbols.Name(tp.Position)
	if !ok {
		name = "unnamed"
	}

	fmt.Fprintln(w, "---------- Current Memory Structure ----------")
	fmt.Fprintf(w, "Position: %d (%s)\n", tp.Position, name)
	fmt.Fprintf(w, "   Value: %d\n", tp.Value())
	fmt.Fprint(w, "  Memory: {")
	for name, address := range tp.Nonzero() {
		fmt.Fprintf(w, "'%s': %d, ", name, tp.Cell[address])
	}
	fmt.Fprintln(w, "}")
	_, err = fmt.Fprintln(w, "----------------------------------------------")

	return
}
