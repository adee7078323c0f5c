package game

import (
	"time"

	"hypersnake/game/entity"
	"hypersnake/game/score"
	"hypersnake/game/types"
)

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State     State
	Session   string
	Grid      types.Grid
	Snake     []types.Point // tail to head
	Berries   []entity.Berry
	Missiles  []types.Point
	Score     int
	Eaten     int
	Delay     time.Duration
	Warp      bool
	Hyper     bool
	HyperLeft time.Duration
	Collision string // what ended the round, empty while alive

	HighScores []score.Entry
	Name       string // name being typed, empty outside score entry
	NameCursor int
	Rank       int // rank the typed name will take, zero-based
}

func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Snapshot{
		State:      g.state,
		Session:    g.UUID,
		Grid:       g.Grid,
		Snake:      g.snake.Body(),
		Berries:    g.berries.Berries(),
		Missiles:   g.missiles.Positions(),
		Score:      g.points,
		Eaten:      g.snake.Eaten(),
		Delay:      g.snakeInterval(),
		Warp:       g.warpOn,
		Hyper:      g.hyperOn,
		HyperLeft:  g.hyper.Remaining(g.now),
		HighScores: g.scores.Entries(),
	}
	if g.state == StateGameOver || g.state == StateScoreEntry || g.state == StateScoreDisplay {
		s.Collision = g.collision.String()
	}
	if g.name != nil {
		s.Name = g.name.String()
		s.NameCursor = g.name.Cursor()
		s.Rank = g.rank
	}
	return s
}

// State returns the current phase.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Score returns the points scored this round.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.points
}
