package dodgeball

// scriptedSource returns queued values in order, reduced modulo n. When the
// queue is empty it returns 0. Every requested bound is recorded.
type scriptedSource struct {
	values []int
	bounds []int
}

func (s *scriptedSource) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}
