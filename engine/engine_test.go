package engine

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ybrainfuck/source"
	"github.com/ezrec/ybrainfuck/tape"
)

func doRun(text string, input string, t *testing.T) (eng *Engine, output string, err error) {
	prog, err := source.Compile(text)
	if err != nil {
		t.Fatal(err)
	}

	out := &bytes.Buffer{}
	eng = NewEngine(prog)
	eng.Tape.Input = strings.NewReader(input)
	eng.Tape.Output = out

	err = eng.Run()
	output = out.String()
	return
}

func TestEngine(t *testing.T) {
	assert := assert.New(t)

	prog, err := source.Compile("")
	assert.NoError(err)

	eng := NewEngine(prog)
	assert.Equal(1, eng.Repeat)
	assert.Equal(0, eng.Ip)
	assert.True(eng.Loops.Empty())
	assert.False(eng.Done())

	assert.NoError(eng.Run())
	assert.True(eng.Done())
}

func TestEngineOutput(t *testing.T) {
	assert := assert.New(t)

	_, output, err := doRun("+++.", "", t)
	assert.NoError(err)
	assert.Equal("\x03", output)

	_, output, err = doRun("5+.", "", t)
	assert.NoError(err)
	assert.Equal("\x05", output)

	_, output, err = doRun("65+3.", "", t)
	assert.NoError(err)
	assert.Equal("AAA", output)
}

func TestEngineVariables(t *testing.T) {
	assert := assert.New(t)

	eng, output, err := doRun("!counter\n+++counter+.", "", t)
	assert.NoError(err)
	assert.Equal("\x01", output)

	address, ok := eng.Program.Symbols.Lookup("counter")
	assert.True(ok)
	assert.Equal(52, address)
	assert.Equal(52, eng.Tape.Position)
	assert.Equal(uint8(3), eng.Tape.Cell[0])
	assert.Equal(uint8(1), eng.Tape.Cell[52])

	eng, _, err = doRun("c+++ B++ a", "", t)
	assert.NoError(err)
	assert.Equal(uint8(3), eng.Tape.Cell[2])
	assert.Equal(uint8(2), eng.Tape.Cell[27])
	assert.Equal(0, eng.Tape.Position)
}

func TestEngineRepeat(t *testing.T) {
	assert := assert.New(t)

	eng, _, err := doRun("3>", "", t)
	assert.NoError(err)
	assert.Equal(3, eng.Tape.Position)

	// Any command, even a blank, consumes the repeat count.
	eng, _, err = doRun("3 +", "", t)
	assert.NoError(err)
	assert.Equal(uint8(1), eng.Tape.Value())

	eng, _, err = doRun("300+", "", t)
	assert.NoError(err)
	assert.Equal(uint8(300%256), eng.Tape.Value())

	eng, _, err = doRun("0+0>", "", t)
	assert.NoError(err)
	assert.Equal(uint8(0), eng.Tape.Value())
	assert.Equal(0, eng.Tape.Position)

	eng, _, err = doRun("2+3-", "", t)
	assert.NoError(err)
	assert.Equal(uint8(255), eng.Tape.Value())

	eng, _, err = doRun("10>4<", "", t)
	assert.NoError(err)
	assert.Equal(6, eng.Tape.Position)
}

func TestEngineRepeatMoves(t *testing.T) {
	assert := assert.New(t)

	for _, n := range []int{1, 2, 9, 10, 123, 29999} {
		jumped, _, err := doRun(fmt.Sprintf("%d>", n), "", t)
		assert.NoError(err)
		stepped, _, err := doRun(strings.Repeat(">", n), "", t)
		assert.NoError(err)
		assert.Equal(stepped.Tape.Position, jumped.Tape.Position, n)

		jumped, _, err = doRun(fmt.Sprintf("%d>%d<", n, n), "", t)
		assert.NoError(err)
		stepped, _, err = doRun(strings.Repeat(">", n)+strings.Repeat("<", n), "", t)
		assert.NoError(err)
		assert.Equal(stepped.Tape.Position, jumped.Tape.Position, n)
	}
}

func TestEngineRepeatIgnoredByInput(t *testing.T) {
	assert := assert.New(t)

	_, output, err := doRun("3,.,.", "abc", t)
	assert.NoError(err)
	assert.Equal("ab", output)
}

func TestEngineClear(t *testing.T) {
	assert := assert.New(t)

	for _, value := range []uint8{0, 1, 2, 127, 128, 255} {
		for _, text := range []string{"[-]", "[ -]", "[-+-]"} {
			prog, err := source.Compile(text)
			assert.NoError(err)

			out := &bytes.Buffer{}
			eng := NewEngine(prog)
			eng.Tape.Output = out
			eng.Tape.Cell[0] = value

			assert.NoError(eng.Run())
			assert.Equal(uint8(0), eng.Tape.Value(), text)
			assert.Equal(0, eng.Tape.Position, text)
			assert.Equal(0, out.Len(), text)
			assert.True(eng.Loops.Empty(), text)
		}
	}
}

func TestEngineLoopSkip(t *testing.T) {
	assert := assert.New(t)

	_, output, err := doRun("[+++.]+.", "", t)
	assert.NoError(err)
	assert.Equal("\x01", output)

	eng, output, err := doRun("[[-]+[+]>]++.", "", t)
	assert.NoError(err)
	assert.Equal("\x02", output)
	assert.True(eng.Loops.Empty())
}

func TestEngineLoop(t *testing.T) {
	assert := assert.New(t)

	eng, output, err := doRun("+++[>++<-]>.", "", t)
	assert.NoError(err)
	assert.Equal("\x06", output)
	assert.Equal(uint8(0), eng.Tape.Cell[0])
	assert.True(eng.Loops.Empty())

	// Condition is re-tested after every pass.
	_, output, err = doRun("5+[-.]", "", t)
	assert.NoError(err)
	assert.Equal("\x04\x03\x02\x01\x00", output)

	// Nested loops: 3 * 4 * 5 = 60
	eng, _, err = doRun("3+[>4+[>5+<-]<-]>>", "", t)
	assert.NoError(err)
	assert.Equal(uint8(60), eng.Tape.Value())
}

func TestEngineHelloWorld(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"[ Hello World! with repeat counts and variables",
		"!letter",
		"letter 72+. 29+. 7+2. 3+. # Hello",
		"a 32+.                    # space",
		"letter 24-. 24+. 3+. 6-. 8-. # World",
		"a+.                       # !",
		"~ this is never reached",
	}

	_, output, err := doRun(strings.Join(program, "\n"), "", t)
	assert.NoError(err)
	assert.Equal("Hello World!", output)
}

func TestEngineHalt(t *testing.T) {
	assert := assert.New(t)

	eng, output, err := doRun("+.~+.", "", t)
	assert.NoError(err)
	assert.Equal("\x01", output)
	assert.Equal(uint8(1), eng.Tape.Value())
	assert.True(eng.Done())

	done, err := eng.Tick()
	assert.True(done)
	assert.NoError(err)
}

func TestEngineDump(t *testing.T) {
	assert := assert.New(t)

	_, output, err := doRun("3+?", "", t)
	assert.NoError(err)
	assert.Equal("3\n", output)

	_, output, err = doRun("!total\ntotal 2+ a+%", "", t)
	assert.NoError(err)
	assert.Contains(output, "Position: 0 (a)\n")
	assert.Contains(output, "   Value: 1\n")
	assert.Contains(output, "  Memory: {'a': 1, 'total': 2, }\n")
}

func TestEngineInput(t *testing.T) {
	assert := assert.New(t)

	_, output, err := doRun(",+.,+.,+.", "HA", t)
	assert.NoError(err)
	assert.Equal("IB\x01", output)

	prog, err := source.Compile("5+,")
	assert.NoError(err)
	eng := NewEngine(prog)
	eng.Tape.Eof = tape.EOF_ERROR
	err = eng.Run()
	assert.ErrorIs(err, tape.ErrEndOfInput)
}

func TestEngineUnknownVariable(t *testing.T) {
	assert := assert.New(t)

	eng, _, err := doRun("+nope+", "", t)
	assert.ErrorIs(err, tape.ErrUnknownVariable)
	assert.Equal(uint8(1), eng.Tape.Value())
	assert.Equal(0, eng.Tape.Position)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(1, rt.LineNo)
	assert.Equal(2, rt.Column)
	assert.Equal(tape.ErrVariable("nope"), rt.Err)
}

func TestEngineOutOfRange(t *testing.T) {
	assert := assert.New(t)

	eng, _, err := doRun("+<", "", t)
	assert.ErrorIs(err, tape.ErrOutOfRange)
	assert.Equal(0, eng.Tape.Position)

	eng, _, err = doRun("29999>", "", t)
	assert.NoError(err)
	assert.Equal(tape.TAPE_SIZE-1, eng.Tape.Position)

	eng, _, err = doRun("29999>\n\n  >", "", t)
	assert.ErrorIs(err, tape.ErrOutOfRange)
	assert.Equal(tape.TAPE_SIZE-1, eng.Tape.Position)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(3, rt.LineNo)
	assert.Equal(3, rt.Column)
}

func TestEngineBrackets(t *testing.T) {
	assert := assert.New(t)

	_, _, err := doRun("+]", "", t)
	assert.ErrorIs(err, ErrUnmatchedBracket)

	_, _, err = doRun("]", "", t)
	assert.ErrorIs(err, ErrUnmatchedBracket)

	_, _, err = doRun("[+", "", t)
	assert.ErrorIs(err, ErrUnclosedBracket)

	// An entered loop that is never closed simply runs off the end.
	eng, _, err := doRun("+[+", "", t)
	assert.NoError(err)
	assert.Equal(uint8(2), eng.Tape.Value())
	assert.Equal(1, eng.Loops.Depth())
}

func TestEngineInvalidCommand(t *testing.T) {
	assert := assert.New(t)

	eng, output, err := doRun("+.*+.", "", t)
	assert.ErrorIs(err, ErrInvalidCommand)
	assert.Equal(ErrCommand("*"), errors.Unwrap(err))
	assert.Contains(err.Error(), "*")
	assert.Equal("\x01", output)
	assert.Equal(uint8(1), eng.Tape.Value())

	// The engine stays failed.
	done, again := eng.Tick()
	assert.True(done)
	assert.Equal(err, again)
}

func TestEngineRepeatOverflow(t *testing.T) {
	assert := assert.New(t)

	_, _, err := doRun("99999999999999999999999+", "", t)
	assert.ErrorIs(err, ErrRepeatCount)
}

func TestEngineTick(t *testing.T) {
	assert := assert.New(t)

	prog, err := source.Compile("2+ .")
	assert.NoError(err)

	out := &bytes.Buffer{}
	eng := NewEngine(prog)
	eng.Tape.Output = out

	done, err := eng.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(2, eng.Repeat)
	assert.Equal(1, eng.Ip)

	done, err = eng.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(1, eng.Repeat)
	assert.Equal(uint8(2), eng.Tape.Value())

	for !done {
		done, err = eng.Tick()
		assert.NoError(err)
	}
	assert.Equal("\x02", out.String())
	assert.Equal(prog.Len(), eng.Ticks)

	eng.Reset()
	assert.Equal(0, eng.Ip)
	assert.Equal(0, eng.Ticks)
	assert.Equal(uint8(0), eng.Tape.Value())
	assert.False(eng.Done())
}

func TestEngineVerbose(t *testing.T) {
	assert := assert.New(t)

	prog, err := source.Compile("+>")
	assert.NoError(err)

	logged := &bytes.Buffer{}
	eng := NewEngine(prog)
	eng.Verbose = true
	eng.Logger = slog.New(slog.NewTextHandler(logged, &slog.HandlerOptions{Level: slog.LevelDebug}))

	assert.NoError(eng.Run())
	assert.Contains(logged.String(), "command=+")
	assert.Contains(logged.String(), "command=>")
	assert.NotContains(logged.String(), "command=nop")
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	assert.NoError(Run(",+.", strings.NewReader("a"), out))
	assert.Equal("b", out.String())

	err := Run("!x\n", nil, out)
	assert.ErrorIs(err, tape.ErrVariableName)
}
