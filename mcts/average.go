package mcts

import (
	"fmt"

	"github.com/parabul/scout/game"
)

// AverageValue is a running mean of observed values, always stored in Player
// ONE's perspective so that merging values from nodes with different movers
// is a plain sum.
type AverageValue struct {
	playerOneValue float64
	support        int
}

// FromEvaluation builds an AverageValue from a single neural evaluation made
// from currentPlayer's perspective. It panics if currentPlayer is PlayerNone.
func FromEvaluation(currentPlayer game.Player, evaluatedValue float64) AverageValue {
	switch currentPlayer {
	case game.PlayerOne:
		return AverageValue{playerOneValue: evaluatedValue, support: 1}
	case game.PlayerTwo:
		return AverageValue{playerOneValue: -evaluatedValue, support: 1}
	default:
		panic("mcts: cannot evaluate for Player NONE")
	}
}

// ValueFor returns the average value from player's perspective. It returns 0
// when there is no support yet, and panics for PlayerNone once support > 0 —
// a draw has no directional value to query.
func (a AverageValue) ValueFor(player game.Player) float64 {
	if a.support == 0 {
		return 0
	}
	switch player {
	case game.PlayerOne:
		return a.playerOneValue / float64(a.support)
	case game.PlayerTwo:
		return -a.playerOneValue / float64(a.support)
	default:
		panic(fmt.Sprintf("mcts: Player NONE has no value (support=%d)", a.support))
	}
}

// AddWinner folds in one terminal outcome: +1/-1/0 to playerOneValue for
// ONE/TWO/NONE, and one more unit of support.
func (a *AverageValue) AddWinner(winner game.Player) {
	a.support++
	switch winner {
	case game.PlayerOne:
		a.playerOneValue++
	case game.PlayerTwo:
		a.playerOneValue--
	}
}

// Merge adds other's totals into a, elementwise.
func (a *AverageValue) Merge(other AverageValue) {
	a.playerOneValue += other.playerOneValue
	a.support += other.support
}

// Support is the number of samples backing this average.
func (a AverageValue) Support() int { return a.support }

func (a AverageValue) String() string {
	return fmt.Sprintf("AverageValue{playerOneValue=%v, support=%d}", a.playerOneValue, a.support)
}
