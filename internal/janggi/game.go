package janggi

import "fmt"

// Game is the turn controller. It owns the live board; nothing else
// mutates it.
type Game struct {
	board   Board
	toMove  Side
	outcome Outcome
	history []Move
}

// NewGame sets up the starting array with BLUE to move.
func NewGame() *Game {
	return &Game{board: InitialBoard(), toMove: Blue}
}

// NewGameFrom starts a game from an arbitrary position. If toMove is
// already checkmated the game starts decided.
func NewGameFrom(b Board, toMove Side) *Game {
	g := &Game{board: b, toMove: toMove}
	if b.IsInCheck(toMove) && b.IsInCheckmate(toMove) {
		g.outcome = winFor(toMove.Opponent())
	}
	return g
}

// Board returns a copy of the live position.
func (g *Game) Board() Board { return g.board }

func (g *Game) ToMove() Side { return g.toMove }

func (g *Game) Outcome() Outcome { return g.outcome }

func (g *Game) IsInCheck(side Side) bool { return g.board.IsInCheck(side) }

// History returns the moves applied so far, passes included.
func (g *Game) History() []Move {
	out := make([]Move, len(g.history))
	copy(out, g.history)
	return out
}

// LegalMoves lists the moves ApplyMove would accept now, excluding passes.
func (g *Game) LegalMoves() []Move {
	if g.outcome != Unfinished {
		return nil
	}
	return g.board.LegalMovesFor(g.toMove)
}

// CanPass reports whether the side on move may pass.
func (g *Game) CanPass() bool {
	return g.outcome == Unfinished && !g.board.IsInCheck(g.toMove)
}

// ApplyMove validates and plays from->to for the side on move. from == to
// is a pass. A rejected move leaves the game untouched.
func (g *Game) ApplyMove(from, to Square) error {
	if g.outcome != Unfinished {
		return ErrGameAlreadyOver
	}
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: square off the board", ErrIllegalForRank)
	}
	p, ok := g.board.At(from)
	if !ok {
		return fmt.Errorf("%w: %s", ErrEmptySource, from)
	}
	if p.Owner != g.toMove {
		return fmt.Errorf("%w: %s on %s, %s to move", ErrWrongSideToMove, p, from, g.toMove)
	}

	mv := Move{From: from, To: to}
	if mv.IsPass() {
		if g.board.IsInCheck(g.toMove) {
			return ErrCannotPassWhileInCheck
		}
		g.finishTurn(mv)
		return nil
	}

	if target, ok := g.board.At(to); ok && target.Owner == g.toMove {
		return fmt.Errorf("%w: %s on %s", ErrFriendlyFireTarget, target, to)
	}
	if !IsLegal(p, from, to, &g.board) {
		return fmt.Errorf("%w: %s %s", ErrIllegalForRank, p, mv)
	}
	if g.board.exposesGeneral(g.toMove, mv) {
		return fmt.Errorf("%w: %s leaves the %s general in check", ErrIllegalForRank, mv, g.toMove)
	}

	g.board.Move(from, to)
	g.finishTurn(mv)
	return nil
}

func (g *Game) finishTurn(mv Move) {
	mover := g.toMove
	g.history = append(g.history, mv)
	g.toMove = mover.Opponent()
	if g.board.IsInCheck(g.toMove) && g.board.IsInCheckmate(g.toMove) {
		g.outcome = winFor(mover)
	}
}
