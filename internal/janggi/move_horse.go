package janggi

// Horse: one orthogonal step that must land on an empty square, then one
// diagonal step outward. Up to 8 targets.
func genHorseMoves(b *Board, from Square, side Side, moves *[]Square) {
	genLeaperMoves(b, from, side, 1, moves)
}

// Elephant: like the horse but with two diagonal steps; the orthogonal
// square and the first diagonal square must both be empty.
func genElephantMoves(b *Board, from Square, side Side, moves *[]Square) {
	genLeaperMoves(b, from, side, 2, moves)
}

func genLeaperMoves(b *Board, from Square, side Side, diagonals int, moves *[]Square) {
	for i, dir := range orthogonalDirs {
		leg, ok := dir(from)
		if !ok || !b.Empty(leg) {
			continue
		}
		for _, perp := range perpendiculars(i) {
			to, ok := leg, true
			for n := 0; n < diagonals && ok; n++ {
				if n > 0 && !b.Empty(to) {
					ok = false
					break
				}
				to, ok = diagonalStep(to, dir, perp)
			}
			if ok && b.available(to, side) {
				*moves = append(*moves, to)
			}
		}
	}
}

// diagonalStep composes one step along a and one along b. No occupancy is
// checked on the corner square between them.
func diagonalStep(sq Square, a, b direction) (Square, bool) {
	mid, ok := a(sq)
	if !ok {
		return NoSquare, false
	}
	return b(mid)
}
