package tape

// EofPolicy selects what reading past the end of input does.
type EofPolicy int

//go:generate go tool stringer -linecomment -type=EofPolicy
const (
	EOF_ZERO  = EofPolicy(0) // zero
	EOF_KEEP  = EofPolicy(1) // keep
	EOF_ERROR = EofPolicy(2) // error
)

// ParseEofPolicy converts a policy name to an EofPolicy.
func ParseEofPolicy(name string) (policy EofPolicy, err error) {
	for policy = EOF_ZERO; policy <= EOF_ERROR; policy++ {
		if policy.String() == name {
			return
		}
	}

	policy = EOF_ZERO
	err = ErrPolicy(name)
	return
}
