package main

import (
	"context"
	"math/rand/v2"
	"testing"
)

func TestPlayGameIsDeterministicPerSeed(t *testing.T) {
	a := playGame(rand.New(rand.NewPCG(7, 1)), 60)
	b := playGame(rand.New(rand.NewPCG(7, 1)), 60)
	if a.Encode() != b.Encode() || len(a.History()) != len(b.History()) {
		t.Fatalf("same seed produced different games")
	}
	if len(a.History()) == 0 || len(a.History()) > 60 {
		t.Fatalf("history length %d out of range", len(a.History()))
	}
}

func TestRunCollectsEveryGame(t *testing.T) {
	records, err := run(context.Background(), 6, 3, 40, 1)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(records) != 6 {
		t.Fatalf("got %d records want 6", len(records))
	}
	for i, r := range records {
		if _, err := r.Replay(); err != nil {
			t.Fatalf("record %d does not replay: %v", i, err)
		}
	}
}
