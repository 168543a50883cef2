package janggi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var rankLetters = [...]rune{
	General:  'k',
	Guard:    'a',
	Horse:    'h',
	Elephant: 'e',
	Chariot:  'r',
	Cannon:   'c',
	Soldier:  'p',
}

func letterToRank(ch rune) (Rank, bool) {
	for r, l := range rankLetters {
		if l == ch {
			return Rank(r), true
		}
	}
	return 0, false
}

// PieceLetter is K A H E R C P, uppercase for RED and lowercase for BLUE.
func PieceLetter(p Piece) rune {
	ch := rankLetters[p.Rank]
	if p.Owner == Red {
		return unicode.ToUpper(ch)
	}
	return ch
}

// Encode writes rows from rank 10 down to rank 1 separated by '/', empty
// runs compressed to digits, then " r" or " b" for the side to move.
func Encode(b *Board, toMove Side) string {
	var sb strings.Builder
	for r := Ranks; r >= 1; r-- {
		if r < Ranks {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			p, ok := b.At(indexOf(f, r))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(PieceLetter(p))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == Red {
		sb.WriteByte('r')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// Encode is the notation of the live position.
func (g *Game) Encode() string { return Encode(&g.board, g.toMove) }

var ErrInvalidFEN = errors.New("invalid position notation")

func DecodePosition(fen string) (Board, Side, error) {
	var b Board
	parts := strings.Fields(fen)
	if len(parts) != 2 {
		return b, Blue, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Ranks {
		return b, Blue, ErrInvalidFEN
	}
	for i, row := range rows {
		r := Ranks - i
		f := 0
		for _, ch := range row {
			if f >= Files {
				return b, Blue, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				f += int(ch - '0')
				continue
			}
			rank, ok := letterToRank(unicode.ToLower(ch))
			if !ok {
				return b, Blue, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			owner := Blue
			if unicode.IsUpper(ch) {
				owner = Red
			}
			b.Put(indexOf(f, r), Piece{Owner: owner, Rank: rank})
			f++
		}
		if f != Files {
			return b, Blue, ErrInvalidFEN
		}
	}
	var toMove Side
	switch parts[1] {
	case "r":
		toMove = Red
	case "b":
		toMove = Blue
	default:
		return b, Blue, ErrInvalidFEN
	}
	if err := checkPlayable(&b, toMove); err != nil {
		return b, Blue, err
	}
	return b, toMove, nil
}

// checkPlayable requires one general per side inside its own palace, and
// the side that just moved must not be left in check.
func checkPlayable(b *Board, toMove Side) error {
	var generals [2]int
	for sq := Square(0); sq < NumSquares; sq++ {
		p, ok := b.At(sq)
		if !ok || p.Rank != General {
			continue
		}
		if owner, in := PalaceOf(sq); !in || owner != p.Owner {
			return fmt.Errorf("%w: %s general on %s is outside its palace", ErrInvalidFEN, p.Owner, sq)
		}
		generals[p.Owner]++
	}
	for _, side := range [2]Side{Red, Blue} {
		if generals[side] != 1 {
			return fmt.Errorf("%w: %s has %d generals", ErrInvalidFEN, side, generals[side])
		}
	}
	if b.IsInCheck(toMove.Opponent()) {
		return fmt.Errorf("%w: %s is in check but not on move", ErrInvalidFEN, toMove.Opponent())
	}
	return nil
}

// ParseMove accepts "e9e8", "e9 e8" or "e9-e8".
func ParseMove(text string) (Move, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	if len(fields) == 1 {
		fields = splitSquares(fields[0])
	}
	if len(fields) != 2 {
		return Move{}, fmt.Errorf("invalid move %q", text)
	}
	from, err := ParseSquare(fields[0])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(fields[1])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// splitSquares cuts "e10e9" before its second file letter.
func splitSquares(s string) []string {
	for i := 1; i < len(s); i++ {
		if unicode.IsLetter(rune(s[i])) {
			return []string{s[:i], s[i:]}
		}
	}
	return []string{s}
}
