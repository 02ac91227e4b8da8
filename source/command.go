package source

// Command is the kind of a single instruction in the stream.
type Command int

//go:generate go tool stringer -linecomment -type=Command
const (
	CMD_NOP       = Command(0)  // nop
	CMD_HALT      = Command(1)  // ~
	CMD_DUMP_RAW  = Command(2)  // ?
	CMD_DUMP      = Command(3)  // %
	CMD_FORWARD   = Command(4)  // >
	CMD_BACKWARD  = Command(5)  // <
	CMD_INCREMENT = Command(6)  // +
	CMD_DECREMENT = Command(7)  // -
	CMD_OUTPUT    = Command(8)  // .
	CMD_INPUT     = Command(9)  // ,
	CMD_LOOP      = Command(10) // [
	CMD_END       = Command(11) // ]
	CMD_CLEAR     = Command(12) // [-]
	CMD_REPEAT    = Command(13) // repeat
	CMD_VARIABLE  = Command(14) // variable
	CMD_INVALID   = Command(15) // invalid
)

var commandOf = map[byte]Command{
	' ': CMD_NOP,
	'{': CMD_NOP,
	'}': CMD_NOP,
	'~': CMD_HALT,
	'?': CMD_DUMP_RAW,
	'%': CMD_DUMP,
	'>': CMD_FORWARD,
	'<': CMD_BACKWARD,
	'+': CMD_INCREMENT,
	'-': CMD_DECREMENT,
	'.': CMD_OUTPUT,
	',': CMD_INPUT,
	'[': CMD_LOOP,
	']': CMD_END,
}

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func IsLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func IsIdentifier(c byte) bool {
	return IsLetter(c) || IsDigit(c) || c == '_'
}

// Token is one command in the instruction stream.
type Token struct {
	Command Command
	Offset  int    // Offset of the first character.
	Text    string // Characters making up the command.
}

// Next returns the offset following the token.
func (tok Token) Next() int {
	return tok.Offset + len(tok.Text)
}
