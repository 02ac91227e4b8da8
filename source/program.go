package source

import (
	"iter"
	"sort"
	"unicode/utf8"

	"github.com/ezrec/ybrainfuck/tape"
)

const (
	PADDING = 5 // Blank characters appended to the instruction stream.
)

type sourceLine struct {
	Offset int // Offset in Text of the first kept character.
	Indent int // Leading whitespace trimmed from the source line.
}

// Program is a preprocessed instruction stream and its symbol table.
type Program struct {
	Text    string        // Instruction stream, followed by PADDING blanks.
	Symbols *tape.Symbols // Built-in and declared variables.

	lines []sourceLine
}

// Len returns the length of the instruction stream, including padding.
func (prog *Program) Len() int {
	return len(prog.Text)
}

// At returns the character at offset, or a blank past the end of the stream.
func (prog *Program) At(offset int) byte {
	if offset < 0 || offset >= len(prog.Text) {
		return ' '
	}
	return prog.Text[offset]
}

// Token decodes the command starting at offset, which must be inside the stream.
func (prog *Program) Token(offset int) (tok Token) {
	end := offset + 1
	c := prog.At(offset)

	switch {
	case IsDigit(c):
		tok.Command = CMD_REPEAT
		for IsDigit(prog.At(end)) {
			end++
		}
	case IsLetter(c):
		tok.Command = CMD_VARIABLE
		for IsIdentifier(prog.At(end)) {
			end++
		}
	case c == '[' && prog.At(offset+1) == '-' && prog.At(offset+2) == ']':
		tok.Command = CMD_CLEAR
		end = offset + 3
	default:
		cmd, ok := commandOf[c]
		if !ok {
			cmd = CMD_INVALID
			_, size := utf8.DecodeRuneInString(prog.Text[offset:])
			end = offset + size
		}
		tok.Command = cmd
	}

	end = min(end, len(prog.Text))
	tok.Offset = offset
	tok.Text = prog.Text[offset:end]
	return
}

// Tokens iterates over the stream from start to end, in text order.
func (prog *Program) Tokens() iter.Seq[Token] {
	return func(yield func(tok Token) bool) {
		for offset := 0; offset < len(prog.Text); {
			tok := prog.Token(offset)
			if !yield(tok) {
				return
			}
			offset = tok.Next()
		}
	}
}

// Position maps a stream offset back to a 1-based source line and column.
func (prog *Program) Position(offset int) (lineno int, column int) {
	if len(prog.lines) == 0 {
		return 1, offset + 1
	}

	n := sort.Search(len(prog.lines), func(i int) bool {
		return prog.lines[i].Offset > offset
	}) - 1
	n = max(n, 0)

	line := prog.lines[n]
	return n + 1, offset - line.Offset + line.Indent + 1
}
