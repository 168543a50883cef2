package httpserver

import (
	"net/http"

	"janggi/internal/server/game"
)

// Server mounts the API handler under /api/.
type Server struct {
	mux *http.ServeMux
}

func NewServer(games *game.Manager) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(games))
	return &Server{mux: mux}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
