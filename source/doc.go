// Package source preprocesses yBrainfuck program text.
//
// Preprocessing strips comments, collects variable declarations into a
// tape.Symbols table, and joins the remaining lines into a single padded
// instruction stream. No syntax tree is built: the stream is tokenized
// lazily, one command at a time, by whoever consumes it.
package source
