package main

import (
	"flag"
	"fmt"
	"log"

	"janggi/internal/janggi"
)

func main() {
	position := flag.String("position", "", "position notation; empty for the starting array")
	flag.Parse()

	g := janggi.NewGame()
	if *position != "" {
		b, toMove, err := janggi.DecodePosition(*position)
		if err != nil {
			log.Fatalf("decode: %v", err)
		}
		g = janggi.NewGameFrom(b, toMove)
	}
	b := g.Board()
	fmt.Println("FEN:", g.Encode())
	fmt.Println("Pseudo legal moves:", len(b.MovesFor(g.ToMove())))
	fmt.Println("Legal moves:", len(g.LegalMoves()))
	fmt.Println("In check:", g.IsInCheck(g.ToMove()))
	fmt.Println("Outcome:", g.Outcome())
}
