package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-crossroad/internal/config"
	"github.com/amalg/go-crossroad/internal/game"
	"github.com/amalg/go-crossroad/internal/ui"
)

func main() {
	seed := flag.Int64("seed", 0, "Map seed (default: current time)")
	configFile := flag.String("config", "", "YAML file overriding the default tables")
	logFile := flag.String("log", "", "Log file path (default: discard logs)")
	fps := flag.Int("fps", 0, "Ticks per second (default: from config)")
	headless := flag.Bool("headless", false, "Run without a terminal UI and print the result")
	moves := flag.String("moves", "", "Headless: comma-separated moves, e.g. forward,forward,left")
	ticks := flag.Int("ticks", 600, "Headless: number of ticks to simulate")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
	}
	if *fps > 0 {
		cfg.TickRate = *fps
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	// Redirect log output before the engine starts. Any stderr output
	// corrupts Bubbletea's terminal rendering.
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[MAIN] Seed %d", *seed)
	engine := game.NewEngine(cfg, rand.New(rand.NewSource(*seed)))

	if *headless {
		if err := runHeadless(engine, *moves, *ticks); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	p := tea.NewProgram(ui.NewModel(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless queues the scripted moves, steps the engine at a fixed rate
// and prints the outcome.
func runHeadless(engine *game.Engine, script string, ticks int) error {
	dirs, err := parseMoves(script)
	if err != nil {
		return err
	}

	accepted := 0
	for _, d := range dirs {
		if engine.QueueMove(d) {
			accepted++
		}
	}

	dt := time.Second / time.Duration(engine.Config.TickRate)
	for i := 0; i < ticks && engine.Status() == game.StatusRunning; i++ {
		engine.Tick(dt)
	}

	snap := engine.Snapshot()
	fmt.Printf("moves accepted: %d/%d\n", accepted, len(dirs))
	fmt.Printf("position: row %d tile %d\n", snap.Player.Row, snap.Player.Tile)
	fmt.Printf("status: %s\n", snap.Status)
	fmt.Printf("score: %d\n", snap.Score)
	return nil
}

// parseMoves splits a comma-separated list of direction tokens.
func parseMoves(script string) ([]game.Direction, error) {
	script = strings.TrimSpace(script)
	if script == "" {
		return nil, nil
	}

	var dirs []game.Direction
	for _, tok := range strings.Split(script, ",") {
		d, err := game.ParseDirection(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("parse moves: %w", err)
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}
