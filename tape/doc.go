// Package tape implements the yBrainfuck memory tape.
//
// The tape is a fixed array of TAPE_SIZE byte cells with a single cursor.
// Arithmetic on a cell wraps modulo 256. Cells may be addressed by name
// through a Symbols table: the 52 single letter built-ins a..z and A..Z
// occupy addresses 0..51, and declared variables follow contiguously in
// declaration order.
//
// The tape also owns cell I/O: reading a byte of input into the current
// cell, writing the current cell as a character, and the two diagnostic
// dumps.
package tape
