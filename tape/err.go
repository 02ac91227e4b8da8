package tape

import (
	"errors"

	"github.com/ezrec/ybrainfuck/translate"
)

var f = translate.From

var (
	// Addressing errors
	ErrOutOfRange      = errors.New(f("cursor out of range"))
	ErrUnknownVariable = errors.New(f("variable not defined"))

	// Declaration errors
	ErrVariableName      = errors.New(f("variable name invalid"))
	ErrVariableDuplicate = errors.New(f("variable already defined"))

	// Input errors
	ErrEndOfInput = errors.New(f("input read after end of input"))
	ErrEofPolicy  = errors.New(f("eof policy unknown"))
)

// ErrOverrun is the cursor position a move would have produced.
type ErrOverrun int

func (eo ErrOverrun) Error() string {
	if eo < 0 {
		return f("buffer overrun: position %d is negative", int(eo))
	}
	return f("buffer overrun: position %d exceeds %d", int(eo), TAPE_SIZE-1)
}

func (eo ErrOverrun) Is(err error) bool {
	return err == ErrOutOfRange
}

// ErrVariable is the name of a variable missing from the symbol table.
type ErrVariable string

func (ev ErrVariable) Error() string {
	return f("variable %v is not defined", string(ev))
}

func (ev ErrVariable) Is(err error) bool {
	return err == ErrUnknownVariable
}

// ErrPolicy is an unrecognized EofPolicy name.
type ErrPolicy string

func (ep ErrPolicy) Error() string {
	return f("eof policy %v unknown", string(ep))
}

func (ep ErrPolicy) Is(err error) bool {
	return err == ErrEofPolicy
}

// ErrDeclaration reports a rejected variable declaration.
type ErrDeclaration struct {
	Name string
	Err  error
}

func (err *ErrDeclaration) Error() string {
	return f("variable %v: %v", err.Name, err.Err)
}

func (err *ErrDeclaration) Unwrap() error {
	return err.Err
}
