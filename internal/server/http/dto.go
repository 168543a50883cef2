package httpserver

import (
	"janggi/internal/janggi"
	"janggi/internal/server/game"
)

// Squares travel as notation: "e9", "d10".
type MoveDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func dtoToMove(m MoveDTO) (janggi.Move, error) {
	from, err := janggi.ParseSquare(m.From)
	if err != nil {
		return janggi.Move{}, err
	}
	to, err := janggi.ParseSquare(m.To)
	if err != nil {
		return janggi.Move{}, err
	}
	return janggi.Move{From: from, To: to}, nil
}

func moveToDTO(m janggi.Move) MoveDTO {
	return MoveDTO{From: m.From.String(), To: m.To.String()}
}

func movesToDTO(ms []janggi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// NewGameRequest may carry a starting position; empty means the standard
// array.
type NewGameRequest struct {
	Position string `json:"position,omitempty"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// GameResponse answers new_game, play and state alike.
type GameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`
	ToMove     string    `json:"to_move"` // "red" / "blue"
	InCheck    bool      `json:"in_check"`
	CanPass    bool      `json:"can_pass"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	History    []MoveDTO `json:"history"`
	Status     string    `json:"status"` // "ongoing" / "red_won" / "blue_won"
}

func snapshotToResponse(s game.Snapshot) GameResponse {
	return GameResponse{
		GameID:     s.ID,
		Position:   s.Position,
		ToMove:     s.ToMove.String(),
		InCheck:    s.InCheck,
		CanPass:    s.CanPass,
		LegalMoves: movesToDTO(s.LegalMoves),
		History:    movesToDTO(s.History),
		Status:     s.Outcome.String(),
	}
}
