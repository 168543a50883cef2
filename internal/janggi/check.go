package janggi

// IsAttacked reports whether any piece of bySide could legally move to sq.
func (b *Board) IsAttacked(sq Square, bySide Side) bool {
	for s := Square(0); s < NumSquares; s++ {
		p, ok := b.At(s)
		if !ok || p.Owner != bySide {
			continue
		}
		if IsLegal(p, s, sq, b) {
			return true
		}
	}
	return false
}

// GeneralSquare returns the square of side's general, or NoSquare when
// the side has none.
func (b *Board) GeneralSquare(side Side) Square {
	for s := Square(0); s < NumSquares; s++ {
		if p, ok := b.At(s); ok && p.Owner == side && p.Rank == General {
			return s
		}
	}
	return NoSquare
}

// IsInCheck reports whether side's general is attacked. A board without
// that general is malformed; it is reported as not in check.
func (b *Board) IsInCheck(side Side) bool {
	gen := b.GeneralSquare(side)
	if gen == NoSquare {
		return false
	}
	return b.IsAttacked(gen, side.Opponent())
}

// IsInCheckmate reports whether side, already in check, has no move that
// ends the check. b itself is never modified: every hypothesis is played
// on a fresh copy of the unmodified position.
func (b *Board) IsInCheckmate(side Side) bool {
	gen := b.GeneralSquare(side)
	if gen == NoSquare {
		return false
	}

	// 1. general relocation
	for _, to := range Destinations(b, gen) {
		if !b.exposesGeneral(side, Move{From: gen, To: to}) {
			return false
		}
	}

	// 2. capture or interposition by any other piece
	for _, mv := range b.MovesFor(side) {
		if mv.From == gen {
			continue
		}
		if !b.exposesGeneral(side, mv) {
			return false
		}
	}
	return true
}
