package snake

// Snapshot captures the observable game state for determinism tests and
// structured logging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadRow  int
	HeadCol  int
	Dir      Direction
	FoodRow  int
	FoodCol  int
	Status   Status
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.state.Head()
	return Snapshot{
		Tick:     g.tick,
		Score:    g.state.Score,
		SnakeLen: g.state.Len(),
		HeadRow:  head.Row,
		HeadCol:  head.Col,
		Dir:      g.state.Direction,
		FoodRow:  g.state.Food.Row,
		FoodCol:  g.state.Food.Col,
		Status:   g.state.Status,
	}
}

// KeyVals flattens the snapshot into key/value pairs for a structured logger.
func (s Snapshot) KeyVals() []any {
	return []any{
		"tick", s.Tick,
		"score", s.Score,
		"len", s.SnakeLen,
		"head", [2]int{s.HeadRow, s.HeadCol},
		"dir", s.Dir.String(),
		"food", [2]int{s.FoodRow, s.FoodCol},
		"status", s.Status.String(),
	}
}
