package mcts

import (
	"testing"

	"github.com/parabul/scout/game"
)

func TestPUCTSelectPanicsOnUninitialized(t *testing.T) {
	n := NewTreeNode(game.NewGameState())
	p := NewPUCT(1)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Select to panic on an uninitialized node")
		}
	}()
	p.Select(n)
}

func TestPUCTSelectPanicsOnTerminal(t *testing.T) {
	terminal := game.NewSparseGameState(game.PlayerTwo, map[int]int{}, 81, 81, game.SpecialNotSet, game.SpecialNotSet)
	n := NewTreeNode(terminal)
	p := NewPUCT(1)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Select to panic on a terminal (leaf) node")
		}
	}()
	p.Select(n)
}

func TestPUCTSelectReturnsLegalMove(t *testing.T) {
	n := NewTreeNode(game.NewGameState().Apply(8)) // move 7 disallowed
	if _, _, err := n.InitChildren(UniformEvaluator{}); err != nil {
		t.Fatalf("InitChildren failed: %v", err)
	}

	p := NewPUCT(42)
	for i := 0; i < 50; i++ {
		move := p.Select(n)
		if n.Child(move) == nil {
			t.Fatalf("Select returned illegal move %d", move)
		}
	}
}

func TestPUCTSelectDeterministicForSameSeed(t *testing.T) {
	setup := func(seed int64) (*TreeNode, *PUCT) {
		n := NewTreeNode(game.NewGameState())
		if _, _, err := n.InitChildren(UniformEvaluator{}); err != nil {
			t.Fatalf("InitChildren failed: %v", err)
		}
		return n, NewPUCT(seed)
	}

	n1, p1 := setup(7)
	n2, p2 := setup(7)

	for i := 0; i < 10; i++ {
		m1 := p1.Select(n1)
		m2 := p2.Select(n2)
		if m1 != m2 {
			t.Fatalf("same-seed PUCT diverged at step %d: %d vs %d", i, m1, m2)
		}
	}
}
