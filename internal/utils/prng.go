// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"prize-wheel/internal/defs"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всём приложении.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное целое в [lo, hi], включая обе границы.
func (s *PRNGService) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// ChooseWeighted выполняет взвешенный выбор среди активных призов, которые
// можно выиграть и у которых вероятность больше нуля. Число тянется из
// [1, сумма весов], и побеждает первый приз, чья накопленная сумма его
// достигла. ok = false, если выбирать не из чего: игрок остаётся без приза.
func (s *PRNGService) ChooseWeighted(prizes []defs.Prize) (defs.Prize, bool) {
	totalWeight := 0
	for _, p := range prizes {
		if eligible(p) {
			totalWeight += p.Probability
		}
	}
	if totalWeight <= 0 {
		return defs.Prize{}, false
	}

	r := s.Range(1, totalWeight)
	upto := 0
	for _, p := range prizes {
		if !eligible(p) {
			continue
		}
		upto += p.Probability
		if r <= upto {
			return p, true
		}
	}
	return defs.Prize{}, false
}

// ChooseWinnable выбирает равновероятно индекс среди призов с CanWin.
func (s *PRNGService) ChooseWinnable(prizes []defs.Prize) (int, bool) {
	var idx []int
	for i, p := range prizes {
		if p.CanWin {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return 0, false
	}
	return idx[s.Intn(len(idx))], true
}

func eligible(p defs.Prize) bool {
	return p.Active && p.CanWin && p.Probability > 0
}
