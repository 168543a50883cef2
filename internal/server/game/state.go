package game

import (
	"time"

	"janggi/internal/janggi"
)

type GameState struct {
	ID        string
	Game      *janggi.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is a read-only view of a game taken under the manager lock.
type Snapshot struct {
	ID         string
	Position   string
	ToMove     janggi.Side
	Outcome    janggi.Outcome
	InCheck    bool
	CanPass    bool
	LegalMoves []janggi.Move
	History    []janggi.Move
	UpdatedAt  time.Time
}

func (g *GameState) snapshot() Snapshot {
	return Snapshot{
		ID:         g.ID,
		Position:   g.Game.Encode(),
		ToMove:     g.Game.ToMove(),
		Outcome:    g.Game.Outcome(),
		InCheck:    g.Game.IsInCheck(g.Game.ToMove()),
		CanPass:    g.Game.CanPass(),
		LegalMoves: g.Game.LegalMoves(),
		History:    g.Game.History(),
		UpdatedAt:  g.UpdatedAt,
	}
}
