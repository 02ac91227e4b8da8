// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ezrec/ybrainfuck/codegen"
	"github.com/ezrec/ybrainfuck/config"
	"github.com/ezrec/ybrainfuck/engine"
	"github.com/ezrec/ybrainfuck/internal/logs"
	"github.com/ezrec/ybrainfuck/source"
	"github.com/ezrec/ybrainfuck/tape"
	"github.com/ezrec/ybrainfuck/translate"
)

const VERSION = "2.0.0"

var f = translate.From

// ErrSourceMissing is a source file that does not exist.
type ErrSourceMissing string

func (err ErrSourceMissing) Error() string {
	return f("the input file [ %v ] does not exist", string(err))
}

// ErrUsage is a command line that could not be understood.
type ErrUsage struct {
	Err error
}

func (err *ErrUsage) Error() string {
	return err.Err.Error()
}

func (err *ErrUsage) Unwrap() error {
	return err.Err
}

type options struct {
	config  string
	verbose bool
	input   string
	output  string
	eof     string
	raw     bool
	trace   string
	emitC   string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newCommand(opts *options) (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:           "ybf [flags] <source>.brainf",
		Short:         "Run a yBrainfuck v2 program",
		Version:       VERSION,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) (err error) {
			err = cobra.ExactArgs(1)(cmd, args)
			if err != nil {
				err = &ErrUsage{Err: err}
			}
			return
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(args[0])
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &ErrUsage{Err: err}
	})

	cmd.SetVersionTemplate("yBrainfuck v.{{.Version}}\n")
	cmd.SetIn(opts.stdin)
	cmd.SetOut(opts.stdout)
	cmd.SetErr(opts.stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "Starlark configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose mode")
	flags.StringVarP(&opts.input, "input", "i", "-", "Program input")
	flags.StringVarP(&opts.output, "output", "o", "-", "Program output")
	flags.StringVar(&opts.eof, "eof", "", "Input at end of file: zero, keep or error")
	flags.BoolVar(&opts.raw, "raw", false, "Write cells as bytes, not UTF-8 characters")
	flags.StringVar(&opts.trace, "trace", "", "Write a JSON trace log to this file")
	flags.StringVar(&opts.emitC, "emit-c", "", "Translate to C in this file instead of running")

	return
}

// settings merges the configuration file with the command line flags.
func (opts *options) settings() (cfg *config.Config, err error) {
	cfg = &config.Config{}

	if opts.config != "" {
		bootstrap := slog.New(slog.NewTextHandler(opts.stderr, nil))
		err = cfg.Load(opts.config, nil, bootstrap)
		if err != nil {
			return
		}
	}

	if opts.eof != "" {
		cfg.Eof, err = tape.ParseEofPolicy(opts.eof)
		if err != nil {
			return
		}
	}
	if opts.trace != "" {
		cfg.Trace = opts.trace
	}
	cfg.Verbose = cfg.Verbose || opts.verbose
	cfg.RawOutput = cfg.RawOutput || opts.raw

	return
}

func (opts *options) run(path string) (err error) {
	_, err = os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrSourceMissing(path)
	}
	if err != nil {
		return
	}

	cfg, err := opts.settings()
	if err != nil {
		return
	}

	logger, closer, err := logs.New(logs.Options{
		Verbose: cfg.Verbose,
		Writer:  opts.stderr,
		Trace:   cfg.Trace,
	})
	if err != nil {
		return
	}
	defer closer()

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	pp := &source.Preprocessor{Verbose: cfg.Verbose, Logger: logger}
	prog, err := pp.Parse(inf)
	if err != nil {
		return
	}

	if len(opts.emitC) != 0 {
		gen := &codegen.Generator{
			Name: filepath.Base(path),
			Eof:  cfg.Eof,
			Raw:  cfg.RawOutput,
		}
		return opts.create(opts.emitC, func(w io.Writer) error {
			return gen.Generate(w, prog)
		})
	}

	eng := engine.NewEngine(prog)
	eng.Verbose = cfg.Verbose
	eng.Logger = logger
	eng.Tape.Eof = cfg.Eof
	eng.Tape.Raw = cfg.RawOutput

	if opts.input == "-" {
		eng.Tape.Input = opts.stdin
	} else {
		var inp *os.File
		inp, err = os.Open(opts.input)
		if err != nil {
			return
		}
		defer inp.Close()
		eng.Tape.Input = inp
	}

	return opts.create(opts.output, func(w io.Writer) (err error) {
		eng.Tape.Output = w
		err = eng.Run()
		logger.Debug("halt", "ticks", eng.Ticks, "position", eng.Tape.Position)
		return
	})
}

// create runs write against stdout for "-", or against a newly created file.
func (opts *options) create(path string, write func(w io.Writer) error) (err error) {
	if path == "-" {
		return write(opts.stdout)
	}

	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = write(ouf)
	close_err := ouf.Close()
	if err == nil {
		err = close_err
	}

	return
}

// run executes the command line, returning the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &options{stdin: stdin, stdout: stdout, stderr: stderr}

	cmd := newCommand(opts)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		translate.Fprintln(stderr, "ybf: %v", err)
		var usage *ErrUsage
		if errors.As(err, &usage) {
			io.WriteString(stderr, cmd.UsageString())
		}
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
