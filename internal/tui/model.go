package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"janggi/internal/janggi"
)

type Model struct {
	game     *janggi.Game
	input    textinput.Model
	logLines []string

	width  int
	height int
}

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "e9 e8 | pass | new | moves | fen"
	ti.Prompt = "> "
	ti.CharLimit = 80
	ti.Width = 40
	ti.Focus()

	return Model{
		game:     janggi.NewGame(),
		input:    ti,
		logLines: []string{"blue to move; enter a move like \"e9 e8\""},
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = min(60, max(20, m.width-4))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line == "quit" || line == "q" {
				return m, tea.Quit
			}
			if line != "" {
				m.execCommand(line)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) execCommand(line string) {
	m.appendLog("> " + line)

	switch strings.ToLower(line) {
	case "new", "reset":
		m.game = janggi.NewGame()
		m.appendLog("new game; blue to move")
		return
	case "fen":
		m.appendLog(m.game.Encode())
		return
	case "moves":
		moves := m.game.LegalMoves()
		names := make([]string, len(moves))
		for i, mv := range moves {
			names[i] = mv.String()
		}
		m.appendLog(fmt.Sprintf("%d moves: %s", len(moves), strings.Join(names, " ")))
		return
	case "pass":
		b := m.game.Board()
		gen := b.GeneralSquare(m.game.ToMove())
		m.play(janggi.Move{From: gen, To: gen})
		return
	}

	mv, err := janggi.ParseMove(line)
	if err != nil {
		m.appendLog(fmt.Sprintf("cannot read move: %v", err))
		return
	}
	m.play(mv)
}

func (m *Model) play(mv janggi.Move) {
	mover := m.game.ToMove()
	if err := m.game.ApplyMove(mv.From, mv.To); err != nil {
		m.appendLog(rejection(err))
		return
	}
	if mv.IsPass() {
		m.appendLog(fmt.Sprintf("%s passes", mover))
	} else {
		m.appendLog(fmt.Sprintf("%s plays %s", mover, mv))
	}

	switch {
	case m.game.Outcome() != janggi.Unfinished:
		m.appendLog(fmt.Sprintf("checkmate: %s", m.game.Outcome()))
	case m.game.IsInCheck(m.game.ToMove()):
		m.appendLog(fmt.Sprintf("%s is in check", m.game.ToMove()))
	}
}

func rejection(err error) string {
	switch {
	case errors.Is(err, janggi.ErrGameAlreadyOver):
		return "the game is over; type new to start again"
	case errors.Is(err, janggi.ErrCannotPassWhileInCheck):
		return "you are in check and cannot pass"
	default:
		return "rejected: " + err.Error()
	}
}

func (m *Model) appendLog(s string) {
	m.logLines = append(m.logLines, s)
	if len(m.logLines) > 200 {
		m.logLines = m.logLines[len(m.logLines)-200:]
	}
}

func (m Model) status() string {
	switch m.game.Outcome() {
	case janggi.RedWon:
		return "RED WINS"
	case janggi.BlueWon:
		return "BLUE WINS"
	}
	s := fmt.Sprintf("%s to move", strings.ToUpper(m.game.ToMove().String()))
	if m.game.IsInCheck(m.game.ToMove()) {
		s += "  CHECK"
	}
	return s
}

func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	header := titleStyle.Render("janggi  [" + m.status() + "]")

	var last *janggi.Move
	if h := m.game.History(); len(h) > 0 {
		last = &h[len(h)-1]
	}
	b := m.game.Board()
	board := boxStyle.Render(RenderBoard(&b, last))

	logHeight := max(5, m.height-20)
	logStart := max(0, len(m.logLines)-logHeight)
	logBox := boxStyle.Width(max(20, m.width-40)).Height(logHeight).
		Render(strings.Join(m.logLines[logStart:], "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, board, logBox)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.input.View())
}
