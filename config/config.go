// Package config loads interpreter settings from a Starlark script.
//
// A configuration script assigns any of the following globals:
//
//	eof = "zero"        # "zero", "keep" or "error": ',' at end of input
//	raw_output = False  # write cells as bytes instead of UTF-8 characters
//	verbose = False     # log every executed command
//	trace = ""          # file receiving a JSON log of the run
//
// The names EOF_ZERO, EOF_KEEP, EOF_ERROR and TAPE_SIZE are predeclared.
// Globals starting with '_', and functions, are ignored.
package config

import (
	"log/slog"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ybrainfuck/tape"
)

// Config holds the interpreter settings.
type Config struct {
	Eof       tape.EofPolicy // Behaviour of ',' at end of input.
	RawOutput bool           // If set, '.' writes raw bytes.
	Verbose   bool           // If set, enables verbose logging.
	Trace     string         // Path of a JSON trace log, if any.
}

var predeclared = starlark.StringDict{
	"EOF_ZERO":  starlark.String(tape.EOF_ZERO.String()),
	"EOF_KEEP":  starlark.String(tape.EOF_KEEP.String()),
	"EOF_ERROR": starlark.String(tape.EOF_ERROR.String()),
	"TAPE_SIZE": starlark.MakeInt(tape.TAPE_SIZE),
}

// Load executes a configuration script, updating cfg with the globals it
// assigns. If src is nil, the script is read from filename.
func (cfg *Config) Load(filename string, src any, logger *slog.Logger) (err error) {
	if logger == nil {
		logger = slog.Default()
	}

	defer func() {
		if err != nil {
			err = &ErrConfig{Filename: filename, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: "config",
		Print: func(_ *starlark.Thread, msg string) {
			logger.Info(msg, "config", filename)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	for _, name := range globals.Keys() {
		err = cfg.set(name, globals[name])
		if err != nil {
			err = &ErrSetting{Name: name, Err: err}
			return
		}
	}

	return
}

func (cfg *Config) set(name string, value starlark.Value) (err error) {
	if strings.HasPrefix(name, "_") {
		return
	}
	if _, ok := value.(starlark.Callable); ok {
		return
	}

	switch name {
	case "eof":
		str, ok := starlark.AsString(value)
		if !ok {
			return ErrSettingType
		}
		cfg.Eof, err = tape.ParseEofPolicy(str)
	case "raw_output":
		cfg.RawOutput, err = asBool(value)
	case "verbose":
		cfg.Verbose, err = asBool(value)
	case "trace":
		str, ok := starlark.AsString(value)
		if !ok {
			return ErrSettingType
		}
		cfg.Trace = str
	default:
		err = ErrSettingUnknown
	}

	return
}

func asBool(value starlark.Value) (b bool, err error) {
	sb, ok := value.(starlark.Bool)
	if !ok {
		err = ErrSettingType
		return
	}

	return bool(sb), nil
}
