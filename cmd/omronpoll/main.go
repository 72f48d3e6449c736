// cmd/omronpoll/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/knikolaus-pice/omron-load-display/internal/config"
	"github.com/knikolaus-pice/omron-load-display/internal/poller"
	"github.com/knikolaus-pice/omron-load-display/internal/writer"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: omronpoll <config.yaml>")
	}

	// Everything lives in run so the deferred closers fire on every
	// exit path, including link failures.
	if err := run(os.Args[1]); err != nil {
		log.Fatalf("omronpoll: %v", err)
	}
}

func run(cfgPath string) error {
	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --------------------
	// Build link + sink
	// --------------------

	p, closeLink, err := poller.Build(cfg.Poller)
	if err != nil {
		return fmt.Errorf("poller build failed: %w", err)
	}
	defer func() {
		if err := closeLink(); err != nil {
			log.Printf("link close failed: %v", err)
		}
	}()

	sink, closeSink, err := writer.Build(cfg.Poller.Sink)
	if err != nil {
		return fmt.Errorf("writer build failed: %w", err)
	}
	defer func() {
		if err := closeSink(); err != nil {
			log.Printf("sink close failed: %v", err)
		}
	}()

	// --------------------
	// Poll until signal or link death
	// --------------------

	out := make(chan poller.PollResult)
	runErr := make(chan error, 1)
	go func() { runErr <- p.Run(ctx, out) }()

	log.Printf("polling %s (node %s) every %dms, sink=%s",
		cfg.Poller.Link.Device, cfg.Poller.Node, cfg.Poller.Poll.IntervalMs, cfg.Poller.Sink.Kind)

	for {
		select {
		case res := <-out:
			// Frame errors are per-cycle: log and keep polling.
			if res.Err != nil {
				log.Printf("response discarded: %v", res.Err)
				continue
			}
			if err := sink.Write(res); err != nil {
				log.Printf("writer error: %v", err)
			}

		case err := <-runErr:
			if err != nil {
				return err
			}
			log.Println("exiting...")
			return nil
		}
	}
}
