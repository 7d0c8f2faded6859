package oracle

import (
	"os"
	"testing"

	"github.com/parabul/scout/game"
	"github.com/parabul/scout/mcts"
)

func findModel(t *testing.T) string {
	candidates := []string{
		"../models/nine_pebbles.onnx",
		"../models/scout.onnx",
	}
	if p := os.Getenv("SCOUT_ONNX_MODEL"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	t.Skip("no ONNX model found; set SCOUT_ONNX_MODEL to run this test")
	return ""
}

func TestNeuralOracleEvaluateFillsEveryLegalChild(t *testing.T) {
	modelPath := findModel(t)

	oracle, err := NewNeuralOracle(modelPath)
	if err != nil {
		t.Fatalf("NewNeuralOracle failed: %v", err)
	}
	defer oracle.Close()

	root := mcts.NewTreeNode(game.NewGameState())
	if _, expanded, err := root.InitChildren(oracle); err != nil {
		t.Fatalf("InitChildren failed: %v", err)
	} else if !expanded {
		t.Fatalf("expected the root to expand")
	}

	for m := 0; m < game.NumMoves; m++ {
		child := root.Child(m)
		if child == nil {
			t.Fatalf("move %d should be legal on the opening position", m)
		}
		policy := child.Evaluation().Policy
		var sum float32
		for _, p := range policy {
			sum += p
		}
		if sum <= 0 {
			t.Errorf("move %d: expected a non-degenerate policy, got all zero", m)
		}
	}
}

func TestNeuralOracleEvaluateEmptyBatchIsNoop(t *testing.T) {
	modelPath := findModel(t)

	oracle, err := NewNeuralOracle(modelPath)
	if err != nil {
		t.Fatalf("NewNeuralOracle failed: %v", err)
	}
	defer oracle.Close()

	if err := oracle.Evaluate(nil); err != nil {
		t.Fatalf("Evaluate(nil) should be a no-op, got: %v", err)
	}
}
