package utils

import (
	"math/rand"

	"github.com/google/uuid"
)

// NewEntityID создает уникальный ID сущности.
// Если передан rng, ID детерминирован сидом (одинаковые сиды дают одинаковые уровни).
func NewEntityID(rng *rand.Rand) string {
	if rng == nil {
		return uuid.NewString()
	}
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// math/rand никогда не возвращает ошибку из Read
		return uuid.NewString()
	}
	return id.String()
}

// RandRange возвращает случайное число в диапазоне [from, to] включительно.
func RandRange(rng *rand.Rand, from, to int) int {
	if to < from {
		from, to = to, from
	}
	return rng.Intn(to-from+1) + from
}

// Chance возвращает true с вероятностью percent/100.
func Chance(rng *rand.Rand, percent int) bool {
	return rng.Intn(100) < percent
}
