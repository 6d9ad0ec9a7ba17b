package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/wickus/pongo/internal/app"
	"github.com/wickus/pongo/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pongo [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  mouse            Move the left paddle")
	fmt.Fprintln(os.Stderr, "  w / s            Nudge the left paddle")
	fmt.Fprintln(os.Stderr, "  up / down        Nudge the right paddle")
	fmt.Fprintln(os.Stderr, "  enter            Start a rematch after game over")
	fmt.Fprintln(os.Stderr, "  q / esc          Quit")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --points <n>        Points to win, 0 plays forever (default: 10)")
	fmt.Fprintln(os.Stderr, "  --ball-speed <px>   Ball speed in pixels per second (default: 400)")
	fmt.Fprintln(os.Stderr, "  --serve-delay <d>   Pause before each serve (default: 1s)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Random seed for reproducible serves")
	fmt.Fprintln(os.Stderr, "  --mute              Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <file>        Write a log to this file")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Every option can also be set with a PONGO_* environment variable,")
	fmt.Fprintln(os.Stderr, "for example PONGO_POINTS=5. Run with -h for the full list.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pongo --points 5")
	fmt.Fprintln(os.Stderr, "  pongo --seed 42 --mute --log pongo.log")
}
