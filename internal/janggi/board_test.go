package janggi

import (
	"errors"
	"strings"
	"testing"
)

// boardOf builds a board from square notation to piece.
func boardOf(t *testing.T, pieces map[string]Piece) Board {
	t.Helper()
	var b Board
	for name, p := range pieces {
		sq, err := ParseSquare(name)
		if err != nil {
			t.Fatalf("bad square in fixture: %v", err)
		}
		b.Put(sq, p)
	}
	return b
}

func red(r Rank) Piece  { return Piece{Owner: Red, Rank: r} }
func blue(r Rank) Piece { return Piece{Owner: Blue, Rank: r} }

func TestAdjacencyIsItsOwnInverse(t *testing.T) {
	for s := Square(0); s < NumSquares; s++ {
		if b, ok := Below(s); ok {
			if back, ok := Above(b); !ok || back != s {
				t.Fatalf("above(below(%s)) = %s,%v want %s", s, back, ok, s)
			}
		}
		if a, ok := Above(s); ok {
			if back, ok := Below(a); !ok || back != s {
				t.Fatalf("below(above(%s)) = %s,%v want %s", s, back, ok, s)
			}
		}
		if l, ok := LeftOf(s); ok {
			if back, ok := RightOf(l); !ok || back != s {
				t.Fatalf("right_of(left_of(%s)) = %s,%v want %s", s, back, ok, s)
			}
		}
		if r, ok := RightOf(s); ok {
			if back, ok := LeftOf(r); !ok || back != s {
				t.Fatalf("left_of(right_of(%s)) = %s,%v want %s", s, back, ok, s)
			}
		}
	}
}

func TestAdjacencyStopsAtEdges(t *testing.T) {
	cases := []struct {
		name string
		dir  direction
		from string
	}{
		{"above", Above, "e10"},
		{"below", Below, "e1"},
		{"left", LeftOf, "a5"},
		{"right", RightOf, "i5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if sq, ok := tc.dir(MustSquare(tc.from)); ok {
				t.Fatalf("%s of %s = %s, want off board", tc.name, tc.from, sq)
			}
		})
	}
}

func TestSquareNotationRoundTrip(t *testing.T) {
	for s := Square(0); s < NumSquares; s++ {
		got, err := ParseSquare(s.String())
		if err != nil {
			t.Fatalf("parse %q: %v", s.String(), err)
		}
		if got != s {
			t.Fatalf("parse %q = %d want %d", s.String(), got, s)
		}
	}
	if got := MustSquare("d10"); got.File() != 3 || got.Rank() != 10 {
		t.Fatalf("d10 = file %d rank %d", got.File(), got.Rank())
	}
}

func TestParseSquareRejectsBadNotation(t *testing.T) {
	for _, text := range []string{"", "e", "j1", "a0", "a11", "e+1", "1e", "e-1", "ee", "e09", "a010", "e 9"} {
		if sq, err := ParseSquare(text); err == nil {
			t.Fatalf("ParseSquare(%q) = %s, want error", text, sq)
		}
	}
}

func TestInitialBoardLayout(t *testing.T) {
	b := InitialBoard()
	want := map[string]Piece{
		"a1": red(Chariot), "b1": red(Elephant), "c1": red(Horse), "d1": red(Guard),
		"f1": red(Guard), "g1": red(Horse), "h1": red(Elephant), "i1": red(Chariot),
		"e2": red(General), "b3": red(Cannon), "h3": red(Cannon),
		"a4": red(Soldier), "c4": red(Soldier), "e4": red(Soldier), "g4": red(Soldier), "i4": red(Soldier),
		"a10": blue(Chariot), "b10": blue(Elephant), "c10": blue(Horse), "d10": blue(Guard),
		"f10": blue(Guard), "g10": blue(Horse), "h10": blue(Elephant), "i10": blue(Chariot),
		"e9": blue(General), "b8": blue(Cannon), "h8": blue(Cannon),
		"a7": blue(Soldier), "c7": blue(Soldier), "e7": blue(Soldier), "g7": blue(Soldier), "i7": blue(Soldier),
	}
	count := 0
	for s := Square(0); s < NumSquares; s++ {
		p, ok := b.At(s)
		w, expected := want[s.String()]
		if ok != expected || (ok && p != w) {
			t.Fatalf("%s: got %v,%v want %v,%v", s, p, ok, w, expected)
		}
		if ok {
			count++
		}
	}
	if count != 32 {
		t.Fatalf("piece count = %d want 32", count)
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := InitialBoard()
	snapshot := b
	b.Move(MustSquare("e9"), MustSquare("e8"))
	if snapshot == b {
		t.Fatalf("snapshot changed together with the board")
	}
	b = snapshot
	if p, ok := b.At(MustSquare("e9")); !ok || p != blue(General) {
		t.Fatalf("restore lost the general: %v,%v", p, ok)
	}
}

func TestPalaceOf(t *testing.T) {
	for _, name := range []string{"d1", "e2", "f3"} {
		if side, ok := PalaceOf(MustSquare(name)); !ok || side != Red {
			t.Fatalf("%s: got %v,%v want red palace", name, side, ok)
		}
	}
	for _, name := range []string{"d8", "e9", "f10"} {
		if side, ok := PalaceOf(MustSquare(name)); !ok || side != Blue {
			t.Fatalf("%s: got %v,%v want blue palace", name, side, ok)
		}
	}
	for _, name := range []string{"c2", "g9", "e4", "e7"} {
		if _, ok := PalaceOf(MustSquare(name)); ok {
			t.Fatalf("%s should be outside both palaces", name)
		}
	}
}

func TestEncodeInitialPosition(t *testing.T) {
	g := NewGame()
	want := "reha1aher/4k4/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/4K4/REHA1AHER b"
	if got := g.Encode(); got != want {
		t.Fatalf("encode:\n got=%s\nwant=%s", got, want)
	}
	b, side, err := DecodePosition(want)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if side != Blue || b != InitialBoard() {
		t.Fatalf("decoded position differs from the initial board")
	}
}

func TestDecodePositionRejectsMalformed(t *testing.T) {
	for _, fen := range []string{
		"",
		"reha1aher/4k4 b",
		strings.Repeat("9/", 9) + "9 x",
		strings.Repeat("9/", 9) + "8 b",
		strings.Repeat("9/", 9) + "4z4 r",
		strings.Repeat("9/", 9) + "55 r",
	} {
		if _, _, err := DecodePosition(fen); err == nil {
			t.Fatalf("DecodePosition(%q) succeeded, want error", fen)
		}
	}
}

func TestDecodePositionRejectsUnplayable(t *testing.T) {
	cases := map[string]string{
		"no red general":          "4k4/9/9/9/9/9/9/9/9/9 b",
		"two blue generals":       "3kk4/9/9/9/9/9/9/9/4K4/9 b",
		"general off palace":      "9/9/9/9/9/4k4/9/9/4K4/9 b",
		"general in enemy palace": "4K4/4k4/9/9/9/9/9/9/9/9 b",
		"mover left in check":     "9/4k4/9/9/9/4R4/9/9/4K4/9 r",
	}
	for name, fen := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := DecodePosition(fen); !errors.Is(err, ErrInvalidFEN) {
				t.Fatalf("DecodePosition(%q): got=%v want=%v", fen, err, ErrInvalidFEN)
			}
		})
	}

	// the same check is fine when the checked side is on move
	if _, side, err := DecodePosition("9/4k4/9/9/9/4R4/9/9/4K4/9 b"); err != nil || side != Blue {
		t.Fatalf("blue to move in check: side=%s err=%v", side, err)
	}
}

func TestParseMove(t *testing.T) {
	cases := map[string]string{
		"e9e8":   "e9e8",
		"e9 e8":  "e9e8",
		"d10-e9": "d10e9",
		"e10e9":  "e10e9",
		"a1a10":  "a1a10",
	}
	for in, want := range cases {
		mv, err := ParseMove(in)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", in, err)
		}
		if mv.String() != want {
			t.Fatalf("ParseMove(%q) = %s want %s", in, mv, want)
		}
	}
	for _, in := range []string{"", "e9", "e9 e8 e7", "z1a1"} {
		if _, err := ParseMove(in); err == nil {
			t.Fatalf("ParseMove(%q) succeeded, want error", in)
		}
	}
}
