package engine

import (
	"errors"

	"github.com/ezrec/ybrainfuck/translate"
)

var f = translate.From

var (
	// Structural errors
	ErrUnmatchedBracket = errors.New(f("] without matching ["))
	ErrUnclosedBracket  = errors.New(f("[ without matching ]"))

	// Decode errors
	ErrInvalidCommand = errors.New(f("command invalid"))
	ErrRepeatCount    = errors.New(f("repeat count invalid"))
)

// ErrCommand is an unrecognized command character.
type ErrCommand string

func (ec ErrCommand) Error() string {
	return f("the command %q is invalid", string(ec))
}

func (ec ErrCommand) Is(err error) bool {
	return err == ErrInvalidCommand
}

// ErrRepeat is a repeat count literal too large to represent.
type ErrRepeat string

func (er ErrRepeat) Error() string {
	return f("repeat count %v is too large", string(er))
}

func (er ErrRepeat) Is(err error) bool {
	return err == ErrRepeatCount
}

// ErrRuntime indicates the source location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Column int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d column %d %v", err.LineNo, err.Column, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
