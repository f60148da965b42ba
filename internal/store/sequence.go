package store

// sequence issues strictly increasing record ids. It is seeded from
// the highest id seen at load time, so ids stay unique across restarts
// without depending on the wall clock.
type sequence struct {
	last int64
}

func newSequence() *sequence {
	return &sequence{}
}

// observe raises the floor to an id loaded from persistence.
func (s *sequence) observe(id int64) {
	if id > s.last {
		s.last = id
	}
}

// next issues the following id.
func (s *sequence) next() int64 {
	s.last++
	return s.last
}
