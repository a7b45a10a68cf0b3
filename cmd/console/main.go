package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/console"
)

func main() {
	debug := flag.Bool("debug", false, "log ignored moves to stderr")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	out := termenv.NewOutput(os.Stdout)

	if err := console.New(logger, out).Run(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "console failed: %v\n", err)
		os.Exit(1)
	}
}
