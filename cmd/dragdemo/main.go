package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/dragdrop"
	"github.com/esimov/dragdrop/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┬─┐┌─┐┌─┐┌┬┐┌─┐┌┬┐┌─┐
 ││├┬┘├─┤│ ┬ ││├┤ ││││ │
─┴┘┴└─┴ ┴└─┘─┴┘└─┘┴ ┴└─┘

Drag and drop session engine demo.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	layoutFile = flag.String("layout", "", "TOML layout file")
	headless   = flag.Bool("headless", false, "Replay the layout script without a window")
	output     = flag.String("out", "frames", "Destination directory of the headless frames")
	timeout    = flag.Duration("timeout", time.Minute, "Headless replay timeout")
	debug      = flag.Bool("debug", false, "Trace the drag sessions")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	deco := utils.Decorator{Enabled: term.IsTerminal(int(os.Stderr.Fd()))}
	fatal := func(msg string, err error) {
		log.Fatalf("%s %s",
			deco.Text(msg, utils.ErrorMessage),
			deco.Text(err.Error(), utils.DefaultMessage),
		)
	}

	cfg, err := dragdrop.ConfigFromEnv()
	if err != nil {
		fatal("Invalid configuration:", err)
	}
	lay, err := LoadLayout(*layoutFile)
	if err != nil {
		fatal("Failed to load the layout:", err)
	}

	var snapshot image.Image
	if lay.Snapshot != "" {
		s, err := dragdrop.LoadSnapshot(lay.Snapshot)
		if err != nil {
			fatal("Failed to load the snapshot image:", err)
		}
		snapshot = s.Image
	}

	loop := dragdrop.NewLoop()
	m := dragdrop.NewManager(loop, cfg)
	m.Debug = *debug

	b, err := newBoard(m, loop, lay, snapshot)
	if err != nil {
		fatal("Failed to create the board:", err)
	}
	b.logf = func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			deco.Text("⇢ DRAGDEMO", utils.StatusMessage),
			deco.Text(fmt.Sprintf(format, args...), utils.DefaultMessage),
		)
	}

	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithTimeout(ctx, *timeout)
		defer cancel()

		if err := newReplay(b, loop, *output, deco).Run(ctx, lay.Script); err != nil {
			fatal("Replay failed:", err)
		}
		return
	}

	go func() {
		if err := runWindow(b, loop, "Drag and drop"); err != nil {
			fatal("Window closed:", err)
		}
		os.Exit(0)
	}()
	app.Main()
}
