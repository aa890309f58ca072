// Package main is the entry point for the keyglow simulator.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keyglow/internal/app"
	"github.com/dshills/keyglow/internal/config"
	"github.com/dshills/keyglow/internal/sim"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "keyglow.toml", "path to the config file")
	logDir := flag.String("logdir", "sessions", "directory for session event logs")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("keyglow %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	eventLog, err := sim.NewEventLog(*logDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening event log: %v\n", err)
		return 1
	}
	defer eventLog.Close()

	application, err := app.New(cfg, sim.NewHID(eventLog), sim.NewPlatform(eventLog))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer application.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	simulator := sim.New(application, screen, eventLog)

	// Live-reload only adjusts the idle timeout; structural changes need
	// a restart. A broken watcher is not fatal.
	watcher, err := config.NewWatcher(*configPath, simulator.QueueReload)
	if err == nil {
		defer watcher.Close()
	}

	if err := simulator.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
