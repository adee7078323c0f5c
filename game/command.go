package game

import (
	"time"

	"hypersnake/game/score"
	"hypersnake/game/timer"
)

// Command applies one input at time now. The only error is a failure to
// save the high-score table after a name is confirmed; the host should treat
// it as fatal.
func (g *Game) Command(now time.Duration, cmd Command) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.advanceClock(now)
	switch g.state {
	case StateRunning:
		g.commandRunning(cmd)
	case StatePaused:
		if cmd == TogglePause {
			g.resume()
		}
	case StateScoreEntry:
		return g.commandScoreEntry(cmd)
	case StateScoreDisplay:
		g.reset(g.now)
	}
	return nil
}

func (g *Game) commandRunning(cmd Command) {
	var dx, dy int
	switch cmd {
	case MoveUp:
		dy = -1
	case MoveDown:
		dy = 1
	case MoveLeft:
		dx = -1
	case MoveRight:
		dx = 1
	case TogglePause:
		g.pause()
		return
	default:
		return
	}

	pending := g.snake.TurnPending()
	if !g.snake.ChangeDirection(dx, dy) && pending {
		g.logger.Printf("warn: turn %s ignored, previous turn not applied yet", cmd)
	}
}

func (g *Game) commandScoreEntry(cmd Command) error {
	switch cmd {
	case MoveUp, NameCharNext:
		g.name.NextChar()
	case MoveDown, NameCharPrev:
		g.name.PrevChar()
	case MoveRight, NameSlotNext:
		g.name.NextSlot()
	case MoveLeft, NameSlotPrev:
		g.name.PrevSlot()
	case ConfirmName:
		e := score.Entry{Name: g.name.String(), Points: g.points, Session: g.UUID}
		if err := g.scores.Submit(e, g.rank); err != nil {
			return err
		}
		g.logger.Printf("%s entered the table at rank %d with %d points", e.Name, g.rank+1, e.Points)
		g.state = StateScoreDisplay
	}
	return nil
}

func (g *Game) pause() {
	g.state = StatePaused
	for _, m := range []*timer.Modifier{g.warp, g.hyper} {
		if m.State() != timer.Running {
			continue
		}
		if err := m.Pause(g.now); err != nil {
			g.logger.Printf("warn: %v", err)
		}
	}
}

func (g *Game) resume() {
	g.state = StateRunning
	for _, m := range []*timer.Modifier{g.warp, g.hyper} {
		if !m.Active() {
			continue
		}
		if err := m.Resume(g.now); err != nil {
			g.logger.Printf("warn: %v", err)
		}
	}
	// steps are timed from the moment play resumes
	g.lastSnake = g.now
	g.lastMissile = g.now
}
