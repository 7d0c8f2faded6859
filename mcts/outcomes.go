package mcts

import (
	"fmt"

	"github.com/parabul/scout/game"
)

// OutcomeCounter tallies terminal-or-backprop outcomes recorded at a node:
// how many resolved to Player ONE, Player TWO, or a tie.
type OutcomeCounter struct {
	winsOne int
	winsTwo int
	ties    int
}

// AddWinner increments the tally for winner (PlayerNone counts as a tie).
func (o *OutcomeCounter) AddWinner(winner game.Player) {
	switch winner {
	case game.PlayerOne:
		o.winsOne++
	case game.PlayerTwo:
		o.winsTwo++
	default:
		o.ties++
	}
}

// Total returns the number of outcomes recorded so far.
func (o OutcomeCounter) Total() int {
	return o.winsOne + o.winsTwo + o.ties
}

// WinRateFor returns player's win rate, counting a tie as half a win. For
// PlayerNone it returns the tie rate. Returns 0 if nothing has been recorded.
func (o OutcomeCounter) WinRateFor(player game.Player) float64 {
	total := o.Total()
	if total == 0 {
		return 0
	}
	switch player {
	case game.PlayerOne:
		return (float64(o.winsOne) + 0.5*float64(o.ties)) / float64(total)
	case game.PlayerTwo:
		return (float64(o.winsTwo) + 0.5*float64(o.ties)) / float64(total)
	default:
		return float64(o.ties) / float64(total)
	}
}

func (o OutcomeCounter) String() string {
	return fmt.Sprintf("OutcomeCounter{winsOne=%d, winsTwo=%d, ties=%d}", o.winsOne, o.winsTwo, o.ties)
}
