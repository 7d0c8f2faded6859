package game

// HeuristicMoveValuator scores each of the 9 moves by how much it shifts
// the mover's score advantage, independent of any learned model. Its output
// is appended to GameState.Encode as a cheap auxiliary signal.
type HeuristicMoveValuator struct{}

// Estimate returns, for each move, the normalized change in the mover's
// score-minus-opponent-score caused by playing it. Disallowed moves score 0.
func (HeuristicMoveValuator) Estimate(s *GameState) [NumMoves]float32 {
	var values [NumMoves]float32

	parentDiff := scoreDiffFor(s, s.currentPlayer)

	for move := 0; move < NumMoves; move++ {
		if !s.IsMoveAllowed(move) {
			continue
		}
		child := s.Apply(move)
		childDiff := scoreDiffFor(child, s.currentPlayer)
		values[move] = (childDiff - parentDiff) / maxScore
	}

	return values
}

// scoreDiffFor returns scoreOne-scoreTwo (or its negation for Player TWO) of
// s, evaluated from mover's perspective rather than s's own current player.
func scoreDiffFor(s *GameState, mover Player) float32 {
	if mover == PlayerOne {
		return float32(s.scoreOne - s.scoreTwo)
	}
	return float32(s.scoreTwo - s.scoreOne)
}
