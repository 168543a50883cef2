package janggi

func soldierForward(side Side) direction {
	if side == Red {
		return Above
	}
	return Below
}

// advances reports whether to is nearer the opponent's back rank than from.
func advances(side Side, from, to Square) bool {
	if side == Red {
		return to.Rank() > from.Rank()
	}
	return to.Rank() < from.Rank()
}

// Soldier: one step forward or sideways, never backward. Inside a palace
// it may also follow a diagonal line, forward only.
func genSoldierMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, dir := range [3]direction{soldierForward(side), LeftOf, RightOf} {
		if to, ok := dir(from); ok && b.available(to, side) {
			*moves = append(*moves, to)
		}
	}
	for _, to := range palaceDiagonals[from] {
		if advances(side, from, to) && b.available(to, side) {
			*moves = append(*moves, to)
		}
	}
}
