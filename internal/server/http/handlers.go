package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"janggi/internal/janggi"
	"janggi/internal/server/game"
)

// Handler serves the /api/* routes.
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
	}

	if req.Position == "" {
		writeJSON(w, snapshotToResponse(h.games.NewGame()))
		return
	}
	s, err := h.games.NewGameFrom(req.Position)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, snapshotToResponse(s))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	mv, err := dtoToMove(req.Move)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.games.Play(req.GameID, mv)
	if err != nil {
		log.Printf("play %s %s rejected: %v", req.GameID, mv, err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, snapshotToResponse(s))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	s, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, snapshotToResponse(s))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, janggi.ErrGameAlreadyOver):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
