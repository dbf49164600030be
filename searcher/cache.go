package searcher

import "tictactoe/game"

type cacheKey struct {
	hash game.StateHash
	side game.Symbol
}

// transpositions maps a position and the side to move to its proven value.
// Values never change once stored, so the cache is safe to keep across games.
type transpositions struct {
	values map[cacheKey]float64
}

func newTranspositions() *transpositions {
	return &transpositions{values: make(map[cacheKey]float64)}
}

func (t *transpositions) get(hash game.StateHash, side game.Symbol) (float64, bool) {
	v, ok := t.values[cacheKey{hash, side}]
	return v, ok
}

func (t *transpositions) put(hash game.StateHash, side game.Symbol, value float64) {
	t.values[cacheKey{hash, side}] = value
}

func (t *transpositions) len() int {
	return len(t.values)
}
