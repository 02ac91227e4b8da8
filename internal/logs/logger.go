// Package logs builds the structured logger used by the command line.
package logs

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options selects the log destinations.
type Options struct {
	Verbose bool      // If set, debug records are emitted.
	Writer  io.Writer // Terminal log destination; os.Stderr if nil.
	Trace   string    // If set, every record is also appended to this file as JSON.
}

// New creates a logger fanning out to the terminal and, optionally, a
// JSON trace file. The returned close function releases the trace file.
func New(opts Options) (logger *slog.Logger, closer func() error, err error) {
	closer = func() error { return nil }

	level := new(slog.LevelVar)
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	}

	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level}),
	}

	if opts.Trace != "" {
		var trace *os.File
		trace, err = os.Create(opts.Trace)
		if err != nil {
			return
		}
		closer = trace.Close
		handlers = append(handlers, slog.NewJSONHandler(trace, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	logger = slog.New(slogmulti.Fanout(handlers...))
	return
}
