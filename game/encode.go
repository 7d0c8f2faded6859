package game

// Encode returns the 47-float feature vector for this state, from the
// perspective of currentPlayer:
//
//	[0:9)   mover's special cell, one-hot by column
//	[9:18)  opponent's special cell, one-hot by column
//	[18:27) mover's row pebble counts / 81
//	[27:36) opponent's row pebble counts / 81
//	[36]    mover's score / 81
//	[37]    opponent's score / 81
//	[38:47) HeuristicMoveValuator per-move estimates, in [-1, 1]
func (s *GameState) Encode() [NumFeatures]float32 {
	var out [NumFeatures]float32

	mover := s.currentPlayer
	opponent := mover.Opponent()

	if special := s.specialFor(mover); special != SpecialNotSet {
		out[moveByCell(special)] = 1
	}
	if special := s.specialFor(opponent); special != SpecialNotSet {
		out[9+moveByCell(special)] = 1
	}

	if mover == PlayerOne {
		for i := 0; i < NumMoves; i++ {
			out[18+i] = float32(s.cells[8-i]) / maxScore
			out[27+i] = float32(s.cells[9+i]) / maxScore
		}
		out[36] = float32(s.scoreOne) / maxScore
		out[37] = float32(s.scoreTwo) / maxScore
	} else {
		for i := 0; i < NumMoves; i++ {
			out[18+i] = float32(s.cells[9+i]) / maxScore
			out[27+i] = float32(s.cells[8-i]) / maxScore
		}
		out[36] = float32(s.scoreTwo) / maxScore
		out[37] = float32(s.scoreOne) / maxScore
	}

	moveValues := HeuristicMoveValuator{}.Estimate(s)
	copy(out[38:], moveValues[:])

	return out
}
