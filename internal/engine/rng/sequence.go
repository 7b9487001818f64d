package rng

// Sequence повторяет заданные значения по кругу. Нужен для реплея раундов
type Sequence struct {
	vals []float64
	pos  int
}

func NewSequence(vals ...float64) *Sequence {
	return &Sequence{vals: vals}
}

func (s *Sequence) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}
