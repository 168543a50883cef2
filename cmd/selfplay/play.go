package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"janggi/internal/archive"
	"janggi/internal/janggi"
)

func run(ctx context.Context, totalGames, workers, maxPlies int, seed uint64) ([]archive.Record, error) {
	if workers <= 0 {
		workers = 1
	}
	g, ctx := errgroup.WithContext(ctx)

	gameIDs := make(chan int)
	results := make(chan archive.Record)

	g.Go(func() error {
		defer close(gameIDs)
		for i := 0; i < totalGames; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case gameIDs <- i:
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for id := range gameIDs {
				rng := rand.New(rand.NewPCG(seed, uint64(id)))
				game := playGame(rng, maxPlies)
				rec := archive.NewRecord(fmt.Sprintf("selfplay-%06d", id), game, time.Now())
				select {
				case <-ctx.Done():
					return ctx.Err()
				case results <- rec:
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	var records []archive.Record
	for rec := range results {
		records = append(records, rec)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(records, func(i, j int) bool { return records[i].GameID < records[j].GameID })
	return records, nil
}

// playGame picks uniformly among legal moves, passing only when nothing
// else is left.
func playGame(rng *rand.Rand, maxPlies int) *janggi.Game {
	g := janggi.NewGame()
	for ply := 0; ply < maxPlies && g.Outcome() == janggi.Unfinished; ply++ {
		moves := g.LegalMoves()
		var mv janggi.Move
		switch {
		case len(moves) > 0:
			mv = moves[rng.IntN(len(moves))]
		case g.CanPass():
			b := g.Board()
			gen := b.GeneralSquare(g.ToMove())
			mv = janggi.Move{From: gen, To: gen}
		default:
			return g
		}
		if err := g.ApplyMove(mv.From, mv.To); err != nil {
			// LegalMoves only offers moves ApplyMove accepts.
			panic(fmt.Sprintf("selfplay: generated move %s rejected: %v", mv, err))
		}
	}
	return g
}
