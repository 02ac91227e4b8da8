// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package source

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/ezrec/ybrainfuck/tape"
)

const (
	MAX_LINE = 16 << 20 // Longest accepted source line, in bytes.
)

// Preprocessor turns yBrainfuck source text into a Program.
type Preprocessor struct {
	Verbose bool         // If set, logs each declaration.
	Logger  *slog.Logger // Destination for verbose logging; slog.Default() if nil.
}

func (pp *Preprocessor) logger() *slog.Logger {
	if pp.Logger == nil {
		return slog.Default()
	}
	return pp.Logger
}

// Parse reads source text and preprocesses it.
func (pp *Preprocessor) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	return pp.Normalize(lines)
}

// Normalize preprocesses source lines.
//
// A first line beginning with '[' is a comment, as is anything following
// a '#'. A line beginning with '!' declares a variable. Every bad
// declaration is reported, as an ErrDeclarations, before giving up.
func (pp *Preprocessor) Normalize(lines []string) (prog *Program, err error) {
	var errs ErrDeclarations
	var text strings.Builder

	prog = &Program{
		Symbols: tape.NewSymbols(),
		lines:   make([]sourceLine, 0, len(lines)),
	}

	for n, raw := range lines {
		lineno := n + 1

		line := strings.TrimSpace(raw)
		indent := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))

		if n == 0 && strings.HasPrefix(line, "[") {
			line = ""
		}

		if comment := strings.IndexByte(line, '#'); comment >= 0 {
			line = line[:comment]
		}

		if strings.HasPrefix(line, "!") {
			name := strings.TrimSpace(line[1:])
			address, decl_err := prog.Symbols.Declare(name)
			if decl_err != nil {
				errs = append(errs, &ErrSyntax{LineNo: lineno, Line: raw, Err: decl_err})
			} else if pp.Verbose {
				pp.logger().Debug("declare", "line", lineno, "name", name, "address", address)
			}
			line = ""
		}

		if n > 0 {
			text.WriteByte(' ')
		}
		prog.lines = append(prog.lines, sourceLine{Offset: text.Len(), Indent: indent})
		text.WriteString(line)
	}

	if len(errs) > 0 {
		prog = nil
		err = errs
		return
	}

	text.WriteString(strings.Repeat(" ", PADDING))
	prog.Text = text.String()

	return
}

// Compile preprocesses a source string.
func Compile(text string) (prog *Program, err error) {
	pp := &Preprocessor{}
	return pp.Parse(strings.NewReader(text))
}
