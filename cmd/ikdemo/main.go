// Command ikdemo shows chains chasing the mouse pointer in a window.
//
// With -headless it runs without a window, moving the target around an orbit
// and logging progress once a second.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"honnef.co/go/ik/internal/config"
	"honnef.co/go/ik/internal/scene"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	s, err := scene.New(cfg)
	if err != nil {
		log.Fatal("Failed to build scene: ", err)
	}
	log.Printf("%d chains in %s mode", len(s.Chains()), cfg.Mode)

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		hc := scene.HeadlessConfig{
			Hz:      cfg.TPS,
			Ticks:   cfg.Ticks,
			OnFrame: logEvery(cfg.TPS),
		}
		// one orbit every four seconds
		path := scene.Orbit(s.Anchor(), cfg.Orbit, 4*cfg.TPS)
		if err := scene.RunHeadless(ctx, s, hc, path); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		log.Printf("Stopped after %d frames", s.Frame())
		return
	}

	if err := runWindow(s, cfg); err != nil {
		log.Fatal(err)
	}
}

// logEvery returns a frame callback that logs the scene every n frames.
func logEvery(n int) func(*scene.Scene) {
	return func(s *scene.Scene) {
		if s.Frame()%n != 0 {
			return
		}
		target := s.Target()
		for i, c := range s.Chains() {
			log.Printf("frame %d: chain %d head %s is %.3f from target %s", s.Frame(), i, c.Head(), c.Head().Distance(target), target)
		}
	}
}
