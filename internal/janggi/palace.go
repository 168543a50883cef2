package janggi

// Palace squares are files d-f; RED holds ranks 1-3, BLUE ranks 8-10.
var palaceCenter = [2]Square{
	Red:  indexOf(4, 2),
	Blue: indexOf(4, 9),
}

var (
	palaceOwner [NumSquares]Side
	inPalace    [NumSquares]bool

	// palaceDiagonals holds the diagonal links of every palace square:
	// centre -> four corners, corner -> centre. Edge midpoints have none.
	palaceDiagonals [NumSquares][]Square

	// palaceMoves[side][sq] is the GENERAL/GUARD neighbour set inside
	// side's own palace.
	palaceMoves [2][NumSquares][]Square
)

func init() {
	initPalaceTables()
}

func initPalaceTables() {
	for _, side := range []Side{Red, Blue} {
		center := palaceCenter[side]
		cf, cr := center.File(), center.Rank()
		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				sq := indexOf(cf+df, cr+dr)
				inPalace[sq] = true
				palaceOwner[sq] = side
			}
		}
		for df := -1; df <= 1; df += 2 {
			for dr := -1; dr <= 1; dr += 2 {
				corner := indexOf(cf+df, cr+dr)
				palaceDiagonals[center] = append(palaceDiagonals[center], corner)
				palaceDiagonals[corner] = []Square{center}
			}
		}
	}

	for sq := Square(0); sq < NumSquares; sq++ {
		if !inPalace[sq] {
			continue
		}
		side := palaceOwner[sq]
		var moves []Square
		for _, dir := range orthogonalDirs {
			if to, ok := dir(sq); ok && inPalace[to] && palaceOwner[to] == side {
				moves = append(moves, to)
			}
		}
		moves = append(moves, palaceDiagonals[sq]...)
		palaceMoves[side][sq] = moves
	}
}

// PalaceOf reports which side's palace contains sq.
func PalaceOf(sq Square) (Side, bool) {
	if !sq.Valid() || !inPalace[sq] {
		return Red, false
	}
	return palaceOwner[sq], true
}

func isPalaceCorner(sq Square) bool {
	return inPalace[sq] && len(palaceDiagonals[sq]) == 1
}

// oppositeCorner mirrors a palace corner through its centre.
func oppositeCorner(corner Square) Square {
	center := palaceCenter[palaceOwner[corner]]
	f := 2*center.File() - corner.File()
	r := 2*center.Rank() - corner.Rank()
	return indexOf(f, r)
}
