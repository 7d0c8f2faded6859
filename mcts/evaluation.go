// Package mcts implements PUCT-guided Monte Carlo Tree Search over
// game.GameState: a tree of TreeNodes grown by repeated calls to
// Search.Expand, with lazy batched child evaluation via the Evaluator
// interface.
package mcts

import "github.com/parabul/scout/game"

// StateEvaluation is the neural oracle's (or a baseline evaluator's) output
// for one game state: a scalar value in [-1, 1] plus a 9-move policy. A
// freshly constructed StateEvaluation is all zero; only an Evaluator sets it.
type StateEvaluation struct {
	Value  float32
	Policy [game.NumMoves]float32
}
