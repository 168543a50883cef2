package janggi

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	Files      = 9
	Ranks      = 10
	NumSquares = Files * Ranks
)

// Square is a linearized (file, rank) index: (rank-1)*Files + file.
type Square int8

const NoSquare Square = -1

func indexOf(file, rank int) Square { return Square((rank-1)*Files + file) }

// File is 0-based: a=0 .. i=8.
func (s Square) File() int { return int(s) % Files }

// Rank is 1-based: 1 .. 10.
func (s Square) Rank() int { return int(s)/Files + 1 }

func (s Square) Valid() bool { return s >= 0 && s < NumSquares }

func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string(rune('a'+s.File())) + strconv.Itoa(s.Rank())
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("square %d out of range", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 1 && rank <= Ranks
}

// ParseSquare reads a file letter a-i followed by a rank number 1-10.
func ParseSquare(text string) (Square, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if len(text) < 2 || len(text) > 3 {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	file := int(text[0] - 'a')
	rank, err := strconv.Atoi(text[1:])
	if err != nil || text[1] < '1' || text[1] > '9' || !onBoard(file, rank) {
		return NoSquare, fmt.Errorf("invalid square %q", text)
	}
	return indexOf(file, rank), nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

func step(s Square, df, dr int) (Square, bool) {
	f, r := s.File()+df, s.Rank()+dr
	if !onBoard(f, r) {
		return NoSquare, false
	}
	return indexOf(f, r), true
}

func Above(s Square) (Square, bool)   { return step(s, 0, +1) }
func Below(s Square) (Square, bool)   { return step(s, 0, -1) }
func LeftOf(s Square) (Square, bool)  { return step(s, -1, 0) }
func RightOf(s Square) (Square, bool) { return step(s, +1, 0) }

type direction func(Square) (Square, bool)

// Orthogonal steps in rotational order; the neighbours of orthogonalDirs[i]
// in this slice are its two perpendiculars.
var orthogonalDirs = [4]direction{Above, RightOf, Below, LeftOf}

func perpendiculars(i int) [2]direction {
	return [2]direction{orthogonalDirs[(i+1)%4], orthogonalDirs[(i+3)%4]}
}

type cell struct {
	piece    Piece
	occupied bool
}

// Board is a plain value: copying it is a snapshot, assigning it back is a
// restore.
type Board struct {
	cells [NumSquares]cell
}

func (b *Board) At(sq Square) (Piece, bool) {
	c := b.cells[sq]
	return c.piece, c.occupied
}

func (b *Board) Empty(sq Square) bool { return !b.cells[sq].occupied }

func (b *Board) Put(sq Square, p Piece) { b.cells[sq] = cell{piece: p, occupied: true} }

func (b *Board) Clear(sq Square) { b.cells[sq] = cell{} }

// Move relocates whatever stands on from to to, discarding the previous
// occupant of to.
func (b *Board) Move(from, to Square) {
	if from == to {
		return
	}
	b.cells[to] = b.cells[from]
	b.cells[from] = cell{}
}

// holdsOpponent reports whether sq holds a piece not owned by side.
func (b *Board) holdsOpponent(sq Square, side Side) bool {
	c := b.cells[sq]
	return c.occupied && c.piece.Owner != side
}

// available reports whether side may finish a move on sq.
func (b *Board) available(sq Square, side Side) bool {
	c := b.cells[sq]
	return !c.occupied || c.piece.Owner != side
}

var backRank = [Files]Rank{Chariot, Elephant, Horse, Guard, Rank(-1), Guard, Horse, Elephant, Chariot}

// InitialBoard returns the standard starting array.
func InitialBoard() Board {
	var b Board
	setup := func(side Side, back, general, cannons, soldiers int) {
		for f, r := range backRank {
			if r >= 0 {
				b.Put(indexOf(f, back), Piece{Owner: side, Rank: r})
			}
		}
		b.Put(indexOf(4, general), Piece{Owner: side, Rank: General})
		b.Put(indexOf(1, cannons), Piece{Owner: side, Rank: Cannon})
		b.Put(indexOf(7, cannons), Piece{Owner: side, Rank: Cannon})
		for f := 0; f < Files; f += 2 {
			b.Put(indexOf(f, soldiers), Piece{Owner: side, Rank: Soldier})
		}
	}
	setup(Red, 1, 2, 3, 4)
	setup(Blue, 10, 9, 8, 7)
	return b
}
