package mcts

import (
	"fmt"

	"github.com/parabul/scout/game"
)

// TreeNode is a single node of the search tree: a game state, the oracle's
// evaluation of it, accumulated statistics, and up to NumMoves children.
// Children are created lazily, in a single batch, by InitChildren.
type TreeNode struct {
	state       *game.GameState
	eval        StateEvaluation
	average     AverageValue
	outcomes    OutcomeCounter
	children    [game.NumMoves]*TreeNode
	initialized bool
}

// NewTreeNode wraps state in a fresh, uninitialized node.
func NewTreeNode(state *game.GameState) *TreeNode {
	return &TreeNode{state: state}
}

// State returns the game state this node represents.
func (n *TreeNode) State() *game.GameState { return n.state }

// Evaluation returns a mutable pointer to this node's StateEvaluation, so an
// Evaluator (in any package) can set its Value and Policy fields directly.
func (n *TreeNode) Evaluation() *StateEvaluation { return &n.eval }

// Visits is the total number of simulations backpropagated through this
// node, terminal or not.
func (n *TreeNode) Visits() int { return n.outcomes.Total() }

// IsInitialized reports whether InitChildren has successfully run.
func (n *TreeNode) IsInitialized() bool { return n.initialized }

// IsLeaf reports whether this node has no usable children yet: either it was
// never initialized, or its state is terminal (Search never calls
// InitChildren on a terminal node).
func (n *TreeNode) IsLeaf() bool { return !n.initialized || n.state.IsGameOver() }

// Child returns the child reached by move, or nil if move was illegal at
// this node (or the node is not yet initialized).
func (n *TreeNode) Child(move int) *TreeNode { return n.children[move] }

// Update folds one simulation's outcome into this node's statistics: winner
// (for the outcome tally) and avg (for the running value average, already
// expressed in Player ONE's perspective).
func (n *TreeNode) Update(winner game.Player, avg AverageValue) {
	n.outcomes.AddWinner(winner)
	n.average.Merge(avg)
}

// ValueFor returns this node's running average value from player's
// perspective.
func (n *TreeNode) ValueFor(player game.Player) float64 {
	return n.average.ValueFor(player)
}

// InitChildren creates a child node for every legal move, batches them
// through evaluator, and seeds each child's average value from the
// evaluator's output. It returns the combined AverageValue of the new
// children (useful as the value to backpropagate for the simulation that
// triggered this expansion), and whether an expansion actually happened —
// false, with a zero AverageValue and nil error, if the node was already
// initialized.
//
// The initialized flag is only set after the evaluator succeeds, so a
// failed batch leaves the node eligible for another expansion attempt
// rather than permanently stuck half-initialized.
func (n *TreeNode) InitChildren(evaluator Evaluator) (AverageValue, bool, error) {
	if n.initialized {
		return AverageValue{}, false, nil
	}

	for move := 0; move < game.NumMoves; move++ {
		if !n.state.IsMoveAllowed(move) {
			continue
		}
		n.children[move] = NewTreeNode(n.state.Apply(move))
	}

	if err := evaluator.Evaluate(n.children[:]); err != nil {
		n.children = [game.NumMoves]*TreeNode{}
		return AverageValue{}, false, err
	}
	n.initialized = true

	var childrenAverage AverageValue
	for _, child := range n.children {
		if child == nil {
			continue
		}
		child.average = FromEvaluation(child.state.CurrentPlayer(), float64(child.eval.Value))
		childrenAverage.Merge(child.average)
	}

	return childrenAverage, true, nil
}

// Encode returns this node's training target: the node's value (from the
// mover's perspective) followed by the normalized visit counts of its
// children, i.e. the empirical policy induced by search. It panics on a
// leaf, and on an initialized node whose children have not yet accumulated
// any visits — both are caller bugs, not recoverable conditions.
func (n *TreeNode) Encode() []float32 {
	if n.IsLeaf() {
		panic("mcts: cannot encode a leaf node")
	}

	out := make([]float32, game.NumMoves+1)
	out[0] = float32(n.average.ValueFor(n.state.CurrentPlayer()))

	var totalVisits float32
	for move, child := range n.children {
		if child == nil {
			continue
		}
		out[move+1] = float32(child.Visits())
		totalVisits += out[move+1]
	}
	if totalVisits == 0 {
		panic(fmt.Sprintf("mcts: no visits found for non-leaf node: %s", n))
	}
	for move := range n.children {
		out[move+1] /= totalVisits
	}

	return out
}

func (n *TreeNode) String() string {
	return fmt.Sprintf("TreeNode{state=%s, eval={value=%v}, average=%s, outcomes=%s, initialized=%t}",
		n.state, n.eval.Value, n.average, n.outcomes, n.initialized)
}
