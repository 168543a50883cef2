package game

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"janggi/internal/archive"
	"janggi/internal/janggi"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	now   func() time.Time
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState), now: time.Now}
}

func (m *Manager) NewGame() Snapshot {
	return m.add(janggi.NewGame())
}

// NewGameFrom starts a game from position notation.
func (m *Manager) NewGameFrom(position string) (Snapshot, error) {
	b, toMove, err := janggi.DecodePosition(position)
	if err != nil {
		return Snapshot{}, err
	}
	return m.add(janggi.NewGameFrom(b, toMove)), nil
}

func (m *Manager) add(g *janggi.Game) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	gs := &GameState{
		ID:        uuid.NewString(),
		Game:      g,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[gs.ID] = gs
	return gs.snapshot()
}

func (m *Manager) Get(id string) (Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return Snapshot{}, ErrGameNotFound
	}
	return g.snapshot(), nil
}

// Play applies mv to game id. Rule rejections come back as the janggi
// sentinel errors and leave the game unchanged.
func (m *Manager) Play(id string, mv janggi.Move) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return Snapshot{}, ErrGameNotFound
	}
	if err := g.Game.ApplyMove(mv.From, mv.To); err != nil {
		return Snapshot{}, err
	}
	g.UpdatedAt = m.now()
	return g.snapshot(), nil
}

// Finished returns archive records for every decided game, oldest first.
func (m *Manager) Finished() []archive.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []archive.Record
	for _, g := range m.games {
		if g.Game.Outcome() == janggi.Unfinished {
			continue
		}
		out = append(out, archive.NewRecord(g.ID, g.Game, g.UpdatedAt))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FinishedAt != out[j].FinishedAt {
			return out[i].FinishedAt < out[j].FinishedAt
		}
		return out[i].GameID < out[j].GameID
	})
	return out
}
