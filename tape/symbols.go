package tape

import (
	"iter"
	"regexp"

	"github.com/ezrec/ybrainfuck/internal"
)

const (
	BUILTIN_NAMES = "abcdefghijklmnopqrstuvwxyz" + "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	BUILTIN_COUNT = len(BUILTIN_NAMES) // Addresses 0..51
)

var variableName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]+$`)

// Symbols maps variable names to fixed tape addresses.
//
// Addresses are assigned in insertion order: names[n] is bound to address n.
type Symbols struct {
	names   []string
	address map[string]int
}

// NewSymbols returns a table holding only the built-in names.
func NewSymbols() (sym *Symbols) {
	sym = &Symbols{
		names:   make([]string, 0, BUILTIN_COUNT),
		address: make(map[string]int, BUILTIN_COUNT),
	}

	for n := range BUILTIN_COUNT {
		sym.bind(BUILTIN_NAMES[n : n+1])
	}

	return
}

func (sym *Symbols) bind(name string) (address int) {
	address = len(sym.names)
	sym.names = append(sym.names, name)
	sym.address[name] = address
	return
}

// Declare binds name to the next free address.
func (sym *Symbols) Declare(name string) (address int, err error) {
	if !variableName.MatchString(name) {
		err = &ErrDeclaration{Name: name, Err: ErrVariableName}
		return
	}

	if _, ok := sym.address[name]; ok {
		err = &ErrDeclaration{Name: name, Err: ErrVariableDuplicate}
		return
	}

	address = sym.bind(name)
	return
}

// Lookup returns the address bound to name.
func (sym *Symbols) Lookup(name string) (address int, ok bool) {
	address, ok = sym.address[name]
	return
}

// Name returns the name bound to an address.
func (sym *Symbols) Name(address int) (name string, ok bool) {
	if address < 0 || address >= len(sym.names) {
		return
	}

	return sym.names[address], true
}

// Len returns the number of bound names.
func (sym *Symbols) Len() int {
	return len(sym.names)
}

func (sym *Symbols) span(from, to int) iter.Seq2[string, int] {
	return func(yield func(name string, address int) bool) {
		for address := from; address < to; address++ {
			if !yield(sym.names[address], address) {
				return
			}
		}
	}
}

// Builtins iterates over the built-in names.
func (sym *Symbols) Builtins() iter.Seq2[string, int] {
	return sym.span(0, BUILTIN_COUNT)
}

// Declared iterates over the declared variables, in declaration order.
func (sym *Symbols) Declared() iter.Seq2[string, int] {
	return sym.span(BUILTIN_COUNT, len(sym.names))
}

// All iterates over every name, built-ins first.
func (sym *Symbols) All() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(sym.Builtins(), sym.Declared())
}
