package snake

import "math/rand"

// FoodSource places food in the arena.
type FoodSource interface {
	Sample(a Arena) Cell
}

// RandomFood draws food uniformly from the arena interior.
// It does not look at the snake: food may land under the body and stay
// uncollectible until the snake moves away.
type RandomFood struct {
	rng *rand.Rand
}

// NewRandomFood creates a food source seeded with seed.
func NewRandomFood(seed int64) *RandomFood {
	return &RandomFood{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns a cell with 1 <= Row <= Height-2 and 1 <= Col <= Width-2.
// Arenas too small to have an interior yield (1, 1).
func (f *RandomFood) Sample(a Arena) Cell {
	rows := a.Height - 2
	cols := a.Width - 2
	if rows < 1 || cols < 1 {
		return Cell{Row: 1, Col: 1}
	}
	return Cell{
		Row: 1 + f.rng.Intn(rows),
		Col: 1 + f.rng.Intn(cols),
	}
}
