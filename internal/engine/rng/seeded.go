package rng

import (
	"sync"

	"golang.org/x/exp/rand"
)

// Seeded - PRNG с фиксированным сидом. Безопасен для конкурентного использования
type Seeded struct {
	mtx sync.Mutex
	r   *rand.Rand
}

func NewSeeded(seed uint64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) Float64() float64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.Float64()
}

// SeededFactory раздаёт один общий Seeded всем раундам
type SeededFactory struct {
	src *Seeded
}

func NewSeededFactory(seed uint64) *SeededFactory {
	return &SeededFactory{src: NewSeeded(seed)}
}

func (f *SeededFactory) SourceFor(_, _ string, _ int64) Source {
	return f.src
}
