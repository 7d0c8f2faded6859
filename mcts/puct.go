package mcts

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/parabul/scout/game"
)

// ExpansionStrategy picks which child of an initialized, non-leaf node to
// descend into next.
type ExpansionStrategy interface {
	Select(node *TreeNode) int
}

const (
	// ExplorationWeight scales the exploration term of the PUCT score.
	ExplorationWeight = 4.0
	// NoiseWeight is how much of the prior probability is replaced by
	// Dirichlet noise at each selection, for exploration at the root and
	// throughout the tree.
	NoiseWeight = 0.25
)

// PUCT implements the Predictor + Upper Confidence bounds for Trees
// formula: exploitation (the child's average value) plus an exploration
// term driven by the oracle's prior policy, blended with Dirichlet noise,
// and decayed by the child's visit count.
type PUCT struct {
	rng *rand.Rand
}

// NewPUCT returns a PUCT strategy seeded from seed.
func NewPUCT(seed int64) *PUCT {
	return &PUCT{rng: rand.New(rand.NewSource(seed))}
}

// Select implements ExpansionStrategy. It panics if node is not initialized
// or is a leaf — callers must only select on initialized, non-leaf nodes —
// and if, somehow, no child is eligible.
func (p *PUCT) Select(node *TreeNode) int {
	if !node.IsInitialized() {
		panic("mcts: cannot select on an uninitialized node")
	}
	if node.IsLeaf() {
		panic("mcts: cannot select on a leaf node")
	}

	noise := p.sampleDirichlet()
	parentVisitsSqrt := math.Sqrt(1.0 + float64(node.Visits()))
	mover := node.state.CurrentPlayer()

	bestIndex := -1
	bestValue := -math.MaxFloat64
	for move := 0; move < game.NumMoves; move++ {
		child := node.children[move]
		if child == nil {
			continue
		}

		priorProbability := float64(node.eval.Policy[move])
		adjustedProbability := priorProbability*(1-NoiseWeight) + NoiseWeight*noise[move]
		exploration := adjustedProbability * parentVisitsSqrt / (1.0 + float64(child.Visits()))
		exploitation := child.ValueFor(mover)
		estimatedValue := exploitation + ExplorationWeight*exploration

		if estimatedValue > bestValue {
			bestValue = estimatedValue
			bestIndex = move
		}
	}

	if bestIndex == -1 {
		panic(fmt.Sprintf("mcts: no valid child to select from: %s", node))
	}
	return bestIndex
}

// sampleDirichlet draws a symmetric Dirichlet(1, ..., 1) sample over the
// NumMoves simplex. A Gamma(1, 1) variate is an Exp(1) variate, which
// rand.ExpFloat64 gives directly; normalizing i.i.d. Gamma(1,1) draws by
// their sum yields the Dirichlet sample.
func (p *PUCT) sampleDirichlet() [game.NumMoves]float64 {
	var sample [game.NumMoves]float64
	var sum float64
	for i := range sample {
		sample[i] = p.rng.ExpFloat64()
		sum += sample[i]
	}
	if sum > 0 {
		for i := range sample {
			sample[i] /= sum
		}
	}
	return sample
}
