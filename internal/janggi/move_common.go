package janggi

// General and guard: one step along the palace lines of their own palace.
func genPalaceMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, to := range palaceMoves[side][from] {
		if b.available(to, side) {
			*moves = append(*moves, to)
		}
	}
}

// Chariot: any distance orthogonally, plus the palace diagonals.
func genChariotMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, dir := range orthogonalDirs {
		for to, ok := dir(from); ok; to, ok = dir(to) {
			if b.Empty(to) {
				*moves = append(*moves, to)
				continue
			}
			if b.holdsOpponent(to, side) {
				*moves = append(*moves, to)
			}
			break
		}
	}

	for _, to := range palaceDiagonals[from] {
		if b.available(to, side) {
			*moves = append(*moves, to)
		}
	}
	if isPalaceCorner(from) && b.Empty(palaceDiagonals[from][0]) {
		if far := oppositeCorner(from); b.available(far, side) {
			*moves = append(*moves, far)
		}
	}
}

// Cannon: jumps exactly one non-cannon screen.
func genCannonMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, dir := range orthogonalDirs {
		to, ok := dir(from)
		for ok && b.Empty(to) {
			to, ok = dir(to)
		}
		if !ok || isCannon(b, to) {
			continue // no screen, or a cannon in the way
		}
		for to, ok = dir(to); ok; to, ok = dir(to) {
			if b.Empty(to) {
				*moves = append(*moves, to)
				continue
			}
			if b.holdsOpponent(to, side) {
				*moves = append(*moves, to)
			}
			break
		}
	}

	if isPalaceCorner(from) {
		center := palaceDiagonals[from][0]
		if b.Empty(center) || isCannon(b, center) {
			return
		}
		far := oppositeCorner(from)
		if b.available(far, side) {
			*moves = append(*moves, far)
		}
	}
}

func isCannon(b *Board, sq Square) bool {
	p, ok := b.At(sq)
	return ok && p.Rank == Cannon
}
