package mcts

import "github.com/parabul/scout/game"

// MaxDescents bounds how far a single Expand call will walk down the tree
// before giving up, so a cyclic or pathological ExpansionStrategy can never
// hang a search.
const MaxDescents = 200

// Search grows a tree one simulation at a time: descend via Strategy until
// hitting an uninitialized node or a terminal state, evaluate it, and
// backpropagate the result to every node visited along the way.
type Search struct {
	Evaluator Evaluator
	Strategy  ExpansionStrategy
}

// NewSearch pairs an Evaluator with an ExpansionStrategy.
func NewSearch(evaluator Evaluator, strategy ExpansionStrategy) *Search {
	return &Search{Evaluator: evaluator, Strategy: strategy}
}

// Expand runs a single simulation from root: select children via Strategy
// until an unexpanded node or a terminal state is reached, evaluate it (via
// InitChildren, or the game's own result if terminal), and backpropagate
// the resulting (winner, value) pair to every node on the path, including
// the node that was just expanded.
func (s *Search) Expand(root *TreeNode) error {
	if root == nil {
		return nil
	}

	var path []*TreeNode
	var expandedValue AverageValue
	expandedAt := -1

	current := root
	for descents := 0; !current.state.IsGameOver() && descents < MaxDescents; descents++ {
		path = append(path, current)

		childValue, expanded, err := current.InitChildren(s.Evaluator)
		if err != nil {
			return err
		}
		if expanded {
			expandedValue = childValue
			expandedAt = len(path) - 1
			break
		}

		current = current.Child(s.Strategy.Select(current))
	}

	var accumulated AverageValue
	var winner game.Player

	switch {
	case expandedAt >= 0:
		// The simulation result is the combined evaluation of the node's new
		// children (in Player ONE's perspective, like every AverageValue),
		// recorded with the expanded node's mover as the winner label.
		accumulated = expandedValue
		winner = path[expandedAt].state.CurrentPlayer()
	case current.state.IsGameOver():
		winner = current.state.Winner()
		accumulated.AddWinner(winner)
		current.Update(winner, accumulated)
	}

	for _, node := range path {
		node.Update(winner, accumulated)
	}

	return nil
}
