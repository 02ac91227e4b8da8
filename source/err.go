package source

import (
	"strings"

	"github.com/ezrec/ybrainfuck/translate"
)

var f = translate.From

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrDeclarations collects every rejected declaration in a source file.
type ErrDeclarations []*ErrSyntax

func (errs ErrDeclarations) Error() string {
	lines := make([]string, len(errs))
	for n, err := range errs {
		lines[n] = err.Error()
	}
	return strings.Join(lines, "\n")
}

func (errs ErrDeclarations) Unwrap() []error {
	list := make([]error, len(errs))
	for n, err := range errs {
		list[n] = err
	}
	return list
}
