package mobile

import (
	"log"
	"net/http"

	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
)

// StartServer serves the game API on 127.0.0.1:port, e.g. "2888".
// It returns immediately.
func StartServer(port string) {
	srv := httpserver.NewServer(game.NewManager())

	// the caller is the Android UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
