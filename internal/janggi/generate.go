package janggi

import "fmt"

// genMoves appends every square p could move to from `from`. Squares held
// by p's own side are never produced.
func genMoves(b *Board, from Square, p Piece, moves *[]Square) {
	switch p.Rank {
	case General, Guard:
		genPalaceMoves(b, from, p.Owner, moves)
	case Horse:
		genHorseMoves(b, from, p.Owner, moves)
	case Elephant:
		genElephantMoves(b, from, p.Owner, moves)
	case Chariot:
		genChariotMoves(b, from, p.Owner, moves)
	case Cannon:
		genCannonMoves(b, from, p.Owner, moves)
	case Soldier:
		genSoldierMoves(b, from, p.Owner, moves)
	default:
		panic(fmt.Sprintf("janggi: unhandled rank %d", p.Rank))
	}
}

// IsLegal is the move oracle: whether p, standing on from, may move to to
// on b by the rules of its rank. It does not consider whether the move
// leaves p's own general in check.
func IsLegal(p Piece, from, to Square, b *Board) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	var buf [40]Square
	moves := buf[:0]
	genMoves(b, from, p, &moves)
	for _, sq := range moves {
		if sq == to {
			return true
		}
	}
	return false
}

// Destinations lists the squares the piece on from may move to. It is
// empty when from is empty.
func Destinations(b *Board, from Square) []Square {
	p, ok := b.At(from)
	if !ok {
		return nil
	}
	var moves []Square
	genMoves(b, from, p, &moves)
	return moves
}

// MovesFor lists the rank-legal moves of every piece side owns, without
// filtering moves that leave side's general in check.
func (b *Board) MovesFor(side Side) []Move {
	var moves []Move
	var dests []Square
	for sq := Square(0); sq < NumSquares; sq++ {
		p, ok := b.At(sq)
		if !ok || p.Owner != side {
			continue
		}
		dests = dests[:0]
		genMoves(b, sq, p, &dests)
		for _, to := range dests {
			moves = append(moves, Move{From: sq, To: to})
		}
	}
	return moves
}

// LegalMovesFor is MovesFor minus the moves after which side would stand
// in check.
func (b *Board) LegalMovesFor(side Side) []Move {
	pseudo := b.MovesFor(side)
	out := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		if !b.exposesGeneral(side, mv) {
			out = append(out, mv)
		}
	}
	return out
}

// exposesGeneral plays mv on a copy of b and reports whether side is then
// in check.
func (b *Board) exposesGeneral(side Side, mv Move) bool {
	next := *b
	next.Move(mv.From, mv.To)
	return next.IsInCheck(side)
}
