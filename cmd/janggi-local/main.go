package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"janggi/internal/archive"
	"janggi/internal/server/game"
	httpserver "janggi/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	archivePath := flag.String("archive", "", "write finished games to this parquet file on shutdown")
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	if *configPath != "" {
		cfg, err := LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if cfg.Addr != "" && !set["addr"] {
			*addr = cfg.Addr
		}
		if cfg.Archive != "" && !set["archive"] {
			*archivePath = cfg.Archive
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	games := game.NewManager()
	srv := &http.Server{Addr: *addr, Handler: httpserver.NewServer(games)}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	if *archivePath != "" {
		records := games.Finished()
		if err := archive.Write(*archivePath, records, 1); err != nil {
			log.Fatalf("write archive: %v", err)
		}
		log.Printf("archived %d finished games to %s", len(records), *archivePath)
	}
}
