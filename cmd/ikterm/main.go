// Command ikterm shows chains chasing the mouse pointer in a terminal.
//
// The configured world is stretched over the whole terminal. Esc, Ctrl-C or q
// quits.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"honnef.co/go/ik/internal/config"
	"honnef.co/go/ik/internal/scene"
	"honnef.co/go/ik/internal/term"
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.NewView(screen, s, cfg).Run(ctx, cfg.TPS)
	stop()
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("Stopped after %d frames", s.Frame())
}
