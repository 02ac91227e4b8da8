// Package engine executes preprocessed yBrainfuck programs.
//
// The engine walks a cursor (Ip) forward over the instruction stream of a
// source.Program, decoding and executing one command per Tick against a
// tape.Tape. Loops are not precomputed: a '[' over a zero cell scans
// forward for its matching ']', and a '[' over a nonzero cell pushes its
// own offset onto the loop stack so the matching ']' can jump back and
// re-test the condition.
//
// A leading run of digits sets the repeat count applied by the next
// command, after which the count returns to 1.
package engine
