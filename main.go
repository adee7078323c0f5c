package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"hypersnake/game"
	"hypersnake/game/score"
	"hypersnake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keymap = map[int32]game.Command{
	rl.KeyUp:    game.MoveUp,
	rl.KeyDown:  game.MoveDown,
	rl.KeyLeft:  game.MoveLeft,
	rl.KeyRight: game.MoveRight,
	rl.KeyK:     game.MoveUp,
	rl.KeyJ:     game.MoveDown,
	rl.KeyH:     game.MoveLeft,
	rl.KeyL:     game.MoveRight,
	rl.KeyP:     game.TogglePause,
	rl.KeySpace: game.TogglePause,
	rl.KeyEnter: game.ConfirmName,
}

func main() {
	backend := flag.String("store", "file", "High score backend: file or sqlite")
	scoresPath := flag.String("scores", "", "High score file (default in the user config dir)")
	dbPath := flag.String("db", "", "SQLite database for -store=sqlite (default next to the score file)")
	seed := flag.Uint64("seed", 0, "RNG seed, 0 for a random one")
	realtime := flag.Bool("realtime", false, "Fire timed modifiers from runtime timers")
	flag.Parse()

	logger := log.New(os.Stderr, "[snake] ", log.LstdFlags)

	if *scoresPath == "" {
		p, err := score.DefaultPath()
		if err != nil {
			logger.Fatalf("locate high score file: %v", err)
		}
		*scoresPath = p
	}

	var store score.Store
	switch *backend {
	case "file":
		store = score.NewFileStore(*scoresPath)
	case "sqlite":
		if *dbPath == "" {
			*dbPath = filepath.Join(filepath.Dir(*scoresPath), "highscores.db")
		}
		if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
			logger.Fatalf("create score dir: %v", err)
		}
		db, err := score.NewSQLiteStore(*dbPath)
		if err != nil {
			logger.Fatalf("open high score db: %v", err)
		}
		defer db.Close()
		store = db
	default:
		logger.Fatalf("unknown -store %q", *backend)
	}

	rl.InitWindow(1280, 800, "Hyper Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(120)

	start := time.Now()
	g := game.New(game.Config{
		Seed:     *seed,
		Logger:   logger,
		Store:    store,
		RealTime: *realtime,
	}, 0)
	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) && g.State() != game.StateScoreEntry {
			break
		}

		for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
			cmd, ok := keymap[key]
			if !ok {
				if g.State() != game.StateScoreDisplay {
					continue
				}
				cmd = game.ConfirmName
			}
			if err := g.Command(time.Since(start), cmd); err != nil {
				logger.Fatalf("%v", err)
			}
		}

		g.Tick(time.Since(start))
		renderer.Draw(g.Snapshot())
	}
}
