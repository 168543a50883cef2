package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"janggi/internal/archive"
)

func main() {
	totalGames := flag.Int("games", 100, "number of games to play")
	maxPlies := flag.Int("maxplies", 300, "stop a game unfinished after this many plies")
	workers := flag.Int("workers", runtime.NumCPU(), "games played concurrently")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	outputPath := flag.String("output", "selfplay.parquet", "output parquet file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	records, err := run(ctx, *totalGames, *workers, *maxPlies, *seed)
	if err != nil {
		log.Fatalf("selfplay: %v", err)
	}

	results := map[string]int{}
	for _, r := range records {
		results[r.Result]++
	}
	log.Printf("played %d games in %v: %v", len(records), time.Since(start), results)

	if err := archive.Write(*outputPath, records, int64(*workers)); err != nil {
		log.Fatalf("write archive: %v", err)
	}
	log.Printf("wrote %s", *outputPath)
}
