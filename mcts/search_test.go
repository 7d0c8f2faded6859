package mcts

import (
	"testing"

	"github.com/parabul/scout/game"
)

func TestExpandGrowsRootVisits(t *testing.T) {
	root := NewTreeNode(game.NewGameState())
	search := NewSearch(UniformEvaluator{}, NewPUCT(1))

	const simulations = 30
	for i := 0; i < simulations; i++ {
		if err := search.Expand(root); err != nil {
			t.Fatalf("Expand failed at iteration %d: %v", i, err)
		}
	}

	if root.Visits() != simulations {
		t.Fatalf("root.Visits() = %d, want %d", root.Visits(), simulations)
	}
	if !root.IsInitialized() {
		t.Fatalf("root should be initialized after at least one Expand call")
	}

	totalChildVisits := 0
	for m := 0; m < game.NumMoves; m++ {
		if child := root.Child(m); child != nil {
			totalChildVisits += child.Visits()
		}
	}
	if totalChildVisits != simulations-1 {
		t.Fatalf("sum of child visits = %d, want %d (one simulation is consumed expanding the root)", totalChildVisits, simulations-1)
	}
}

func TestExpandOnAlreadyTerminalRoot(t *testing.T) {
	terminal := game.NewSparseGameState(game.PlayerTwo, map[int]int{}, 81, 81, game.SpecialNotSet, game.SpecialNotSet)
	root := NewTreeNode(terminal)
	search := NewSearch(UniformEvaluator{}, NewPUCT(1))

	if err := search.Expand(root); err != nil {
		t.Fatalf("Expand on a terminal root failed: %v", err)
	}
	if root.Visits() != 1 {
		t.Fatalf("root.Visits() = %d, want 1", root.Visits())
	}
}

func TestExpandPropagatesEvaluatorError(t *testing.T) {
	root := NewTreeNode(game.NewGameState())
	search := NewSearch(erroringEvaluator{}, NewPUCT(1))

	if err := search.Expand(root); err == nil {
		t.Fatalf("expected Expand to surface the evaluator's error")
	}
}

func TestExpandManySimulationsWithoutPanicking(t *testing.T) {
	root := NewTreeNode(game.NewGameState())
	search := NewSearch(UniformEvaluator{}, NewPUCT(3))

	for i := 0; i < 4000; i++ {
		if err := search.Expand(root); err != nil {
			t.Fatalf("Expand failed at iteration %d: %v", i, err)
		}
	}

	// 4000 expansions must complete without error or panic, each one
	// recorded as a visit at the root.
	if root.Visits() != 4000 {
		t.Fatalf("root.Visits() = %d, want 4000", root.Visits())
	}
}
