package engine

// Stack holds the stream offsets of the '[' commands of entered loops.
type Stack struct {
	Data []int
}

func (s *Stack) Push(offset int) {
	s.Data = append(s.Data, offset)
}

func (s *Stack) Pop() (offset int, ok bool) {
	offset, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

// Depth is the current loop nesting level.
func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Peek() (offset int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
