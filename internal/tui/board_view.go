package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"janggi/internal/janggi"
)

var (
	redPieceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	bluePieceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	palaceStyle    = lipgloss.NewStyle().Background(lipgloss.Color("236"))
	lastMoveStyle  = lipgloss.NewStyle().Underline(true)
)

// RenderBoard draws rank 10 at the top, files a..i left to right.
// Uppercase letters are RED, lowercase BLUE.
func RenderBoard(b *janggi.Board, last *janggi.Move) string {
	var sb strings.Builder
	sb.WriteString("     a  b  c  d  e  f  g  h  i\n")
	for r := janggi.Ranks; r >= 1; r-- {
		label := strconv.Itoa(r)
		if r < 10 {
			label = " " + label
		}
		sb.WriteString(" " + label + " ")
		for f := 0; f < janggi.Files; f++ {
			sq := janggi.MustSquare(string(rune('a'+f)) + strconv.Itoa(r))
			sb.WriteString(cell(b, sq, last))
		}
		sb.WriteString(" " + label + "\n")
	}
	sb.WriteString("     a  b  c  d  e  f  g  h  i\n")
	return sb.String()
}

// cell returns a fixed-width 3-char cell.
func cell(b *janggi.Board, sq janggi.Square, last *janggi.Move) string {
	s := " . "
	if p, ok := b.At(sq); ok {
		glyph := string(janggi.PieceLetter(p))
		if p.Owner == janggi.Red {
			glyph = redPieceStyle.Render(glyph)
		} else {
			glyph = bluePieceStyle.Render(glyph)
		}
		s = " " + glyph + " "
	}
	if last != nil && (sq == last.From || sq == last.To) {
		s = lastMoveStyle.Render(s)
	}
	if _, ok := janggi.PalaceOf(sq); ok {
		s = palaceStyle.Render(s)
	}
	return s
}
