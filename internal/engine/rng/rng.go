// Package rng содержит источники случайности для игровых движков.
// Движки получают Source снаружи, поэтому раунд можно воспроизвести по сиду.
package rng

import "math"

// Source выдаёт равномерно распределённые числа в [0,1)
type Source interface {
	Float64() float64
}

// Factory выдаёт источник на один раунд игрока
type Factory interface {
	SourceFor(username, game string, nonce int64) Source
}

// Intn возвращает floor(u*n) в диапазоне [0,n)
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Floor(src.Float64() * float64(n)))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Pick возвращает значение u, для которого Intn вернёт k из n.
// Удобно для сборки Sequence под заранее известный исход
func Pick(k, n int) float64 {
	return (float64(k) + 0.5) / float64(n)
}
