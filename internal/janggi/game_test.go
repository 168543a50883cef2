package janggi

import (
	"errors"
	"testing"
)

func mustMove(t *testing.T, g *Game, from, to string) {
	t.Helper()
	if err := g.ApplyMove(MustSquare(from), MustSquare(to)); err != nil {
		t.Fatalf("%s->%s: %v", from, to, err)
	}
}

func TestNewGame(t *testing.T) {
	g := NewGame()
	if g.ToMove() != Blue {
		t.Fatalf("first mover = %s want blue", g.ToMove())
	}
	if g.Outcome() != Unfinished {
		t.Fatalf("outcome = %s want ongoing", g.Outcome())
	}
	if g.IsInCheck(Red) || g.IsInCheck(Blue) {
		t.Fatalf("no check at the start")
	}
}

func TestGeneralStepFlipsTurn(t *testing.T) {
	g := NewGame()
	mustMove(t, g, "e9", "e8")
	if g.ToMove() != Red {
		t.Fatalf("side to move = %s want red", g.ToMove())
	}
	b := g.Board()
	if p, ok := b.At(MustSquare("e8")); !ok || p != blue(General) {
		t.Fatalf("e8 holds %v,%v", p, ok)
	}
	if !b.Empty(MustSquare("e9")) {
		t.Fatalf("e9 should be empty")
	}
	mustMove(t, g, "e2", "e3")
	if got := len(g.History()); got != 2 {
		t.Fatalf("history length = %d want 2", got)
	}
}

func TestCannonWithoutScreenIsRejected(t *testing.T) {
	g := NewGame()
	mustMove(t, g, "e9", "e8")
	err := g.ApplyMove(MustSquare("h3"), MustSquare("e3"))
	if !errors.Is(err, ErrIllegalForRank) {
		t.Fatalf("h3->e3: got %v want %v", err, ErrIllegalForRank)
	}
}

func TestApplyMoveRejections(t *testing.T) {
	cases := []struct {
		name     string
		from, to string
		want     error
	}{
		{"empty source", "e5", "e6", ErrEmptySource},
		{"wrong side", "a1", "a2", ErrWrongSideToMove},
		{"friendly fire", "a10", "a7", ErrFriendlyFireTarget},
		{"illegal geometry", "c10", "c9", ErrIllegalForRank},
		{"general leaves palace", "e9", "e6", ErrIllegalForRank},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame()
			before := g.Encode()
			err := g.ApplyMove(MustSquare(tc.from), MustSquare(tc.to))
			if !errors.Is(err, tc.want) {
				t.Fatalf("got=%v want=%v", err, tc.want)
			}
			if g.Encode() != before || len(g.History()) != 0 {
				t.Fatalf("rejected move changed the game")
			}
		})
	}
}

func TestPass(t *testing.T) {
	g := NewGame()
	mustMove(t, g, "e9", "e9")
	if g.ToMove() != Red {
		t.Fatalf("pass did not flip the turn")
	}
	if g.Board() != InitialBoard() {
		t.Fatalf("pass touched the board")
	}
	if err := g.ApplyMove(MustSquare("e5"), MustSquare("e5")); !errors.Is(err, ErrEmptySource) {
		t.Fatalf("pass from an empty square: %v", err)
	}
}

func TestCannotPassWhileInCheck(t *testing.T) {
	b := boardOf(t, map[string]Piece{
		"e2": red(General),
		"e1": blue(Chariot),
		"e9": blue(General),
	})
	g := NewGameFrom(b, Red)
	if g.CanPass() {
		t.Fatalf("CanPass while in check")
	}
	if err := g.ApplyMove(MustSquare("e2"), MustSquare("e2")); !errors.Is(err, ErrCannotPassWhileInCheck) {
		t.Fatalf("got %v want %v", err, ErrCannotPassWhileInCheck)
	}
	mustMove(t, g, "e2", "e1")
	if g.Outcome() != Unfinished {
		t.Fatalf("outcome = %s", g.Outcome())
	}
}

func TestMoveIntoSelfCheckIsRejected(t *testing.T) {
	b := boardOf(t, map[string]Piece{
		"e2":  red(General),
		"e3":  red(Guard),
		"e6":  blue(Chariot),
		"f10": blue(General),
	})
	g := NewGameFrom(b, Red)
	err := g.ApplyMove(MustSquare("e3"), MustSquare("d3"))
	if !errors.Is(err, ErrIllegalForRank) {
		t.Fatalf("pinned guard move: got %v want %v", err, ErrIllegalForRank)
	}
	if g.Board() != b {
		t.Fatalf("rejected move changed the board")
	}
	for _, mv := range g.LegalMoves() {
		if mv.From == MustSquare("e3") && mv.To == MustSquare("d3") {
			t.Fatalf("LegalMoves offers the self-check move %s", mv)
		}
	}
}

func TestCheckmateEndsGame(t *testing.T) {
	b := boardOf(t, map[string]Piece{
		"e2": red(General),
		"a1": blue(Chariot),
		"c2": blue(Horse),
		"d7": blue(Chariot),
		"f7": blue(Chariot),
		"e9": blue(General),
	})
	g := NewGameFrom(b, Blue)
	if g.Outcome() != Unfinished {
		t.Fatalf("game decided before the mating move")
	}
	mustMove(t, g, "a1", "e1")
	if !g.IsInCheck(Red) {
		t.Fatalf("red should be in check")
	}
	if g.Outcome() != BlueWon {
		t.Fatalf("outcome = %s want blue_won", g.Outcome())
	}
	if len(g.LegalMoves()) != 0 || g.CanPass() {
		t.Fatalf("a decided game still offers moves")
	}
	err := g.ApplyMove(MustSquare("e2"), MustSquare("e3"))
	if !errors.Is(err, ErrGameAlreadyOver) {
		t.Fatalf("got %v want %v", err, ErrGameAlreadyOver)
	}
}

func TestCheckWithoutMateKeepsGameOpen(t *testing.T) {
	b := boardOf(t, map[string]Piece{
		"e2": red(General),
		"a1": blue(Chariot),
		"e9": blue(General),
	})
	g := NewGameFrom(b, Blue)
	mustMove(t, g, "a1", "e1")
	if !g.IsInCheck(Red) || g.Outcome() != Unfinished {
		t.Fatalf("check=%v outcome=%s, want check and ongoing", g.IsInCheck(Red), g.Outcome())
	}
}

func TestNewGameFromMatedPosition(t *testing.T) {
	g := NewGameFrom(matedRed(t), Red)
	if g.Outcome() != BlueWon {
		t.Fatalf("outcome = %s want blue_won", g.Outcome())
	}
}

func TestInitialLegalMoveCount(t *testing.T) {
	g := NewGame()
	moves := g.LegalMoves()
	counts := map[Rank]int{}
	b := g.Board()
	for _, mv := range moves {
		p, _ := b.At(mv.From)
		if p.Owner != Blue {
			t.Fatalf("red move %s offered on blue's turn", mv)
		}
		counts[p.Rank]++
	}
	if counts[Cannon] != 0 {
		t.Fatalf("cannons have no screens at the start, got %d moves", counts[Cannon])
	}
	// d10 and f10 hold guards
	if counts[General] != 6 {
		t.Fatalf("general moves = %d want 6", counts[General])
	}
}
