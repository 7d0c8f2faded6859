package mcts

import "github.com/parabul/scout/game"

// Evaluator assigns a StateEvaluation to a batch of freshly created child
// nodes. Implementations must tolerate nil slots (illegal moves at the
// parent) and must not touch a node whose state is already terminal — a
// terminal node's value comes from the game result, not an oracle.
type Evaluator interface {
	Evaluate(nodes []*TreeNode) error
}

// UniformEvaluator is the zero-value baseline: every non-terminal node gets
// value 0 and a policy of 1/9 on each of the 9 moves, legal or not. It never
// errors, and is mainly useful for exercising search without a trained
// model.
type UniformEvaluator struct{}

// Evaluate implements Evaluator.
func (UniformEvaluator) Evaluate(nodes []*TreeNode) error {
	const uniform = float32(1) / float32(game.NumMoves)

	for _, node := range nodes {
		if node == nil || node.state.IsGameOver() {
			continue
		}
		node.eval.Value = 0
		for i := range node.eval.Policy {
			node.eval.Policy[i] = uniform
		}
	}
	return nil
}
