package game

import (
	"log"
	"os"
	"sync"
	"time"

	"hypersnake/game/entity"
	"hypersnake/game/manager"
	"hypersnake/game/score"
	"hypersnake/game/timer"
	"hypersnake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Config carries the knobs a host can set; the board itself is fixed.
type Config struct {
	Seed     uint64      // RNG seed, 0 picks one from the clock
	Logger   *log.Logger // nil logs to stderr
	Store    score.Store // nil keeps high scores in memory only
	RealTime bool        // fire timer completions from runtime timers instead of Tick
}

func DefaultConfig() Config {
	return Config{}
}

// Game is one play session: the snake, berries, missiles, the two timed
// modifiers, and the high-score table. Every exported method takes mu, so a
// Game may be shared with a RealTime scheduler goroutine.
type Game struct {
	mu sync.Mutex

	UUID   string // current round
	Grid   types.Grid
	rng    *rand.Rand
	logger *log.Logger

	wheel *timer.Wheel // nil in RealTime mode
	sched timer.Scheduler

	snake      *entity.Snake
	berries    *manager.BerryManager
	missiles   *manager.MissileManager
	collisions *manager.CollisionManager
	scores     *manager.ScoreManager

	warp    *timer.Modifier
	hyper   *timer.Modifier
	warpOn  bool
	hyperOn bool

	state       State
	delay       time.Duration
	now         time.Duration
	lastSnake   time.Duration
	lastMissile time.Duration
	diedAt      time.Duration
	collision   manager.CollisionType
	points      int

	name *score.NameEntry
	rank int
}

// New builds a session and starts the first round at now.
func New(cfg Config, now time.Duration) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr, "[snake] ", log.LstdFlags)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Game{
		Grid:   types.Board,
		rng:    rng,
		logger: cfg.Logger,
	}

	if cfg.RealTime {
		g.sched = timer.NewRealScheduler(&g.mu)
	} else {
		g.wheel = timer.NewWheel()
		g.wheel.Advance(now)
		g.sched = g.wheel
	}

	g.berries = manager.NewBerryManager(g.Grid, rng)
	g.missiles = manager.NewMissileManager(g.Grid, rng)
	g.collisions = manager.NewCollisionManager(g.Grid)
	g.scores = manager.NewScoreManager(cfg.Store, cfg.Logger)
	g.warp = timer.NewModifier("time warp", g.sched, g.endWarp)
	g.hyper = timer.NewModifier("hyper mode", g.sched, g.endHyper)

	g.reset(now)
	return g
}

// reset starts a fresh round. The high-score table is kept.
func (g *Game) reset(now time.Duration) {
	g.warp.Cancel()
	g.hyper.Cancel()
	g.warpOn = false
	g.hyperOn = false

	g.UUID = uuid.New().String()
	g.snake = entity.NewDefaultSnake()
	g.berries.Reset()
	g.missiles.Reset()

	g.now = now
	g.lastSnake = now
	g.lastMissile = now
	g.delay = types.DefaultDelay
	g.points = 0
	g.collision = manager.NoCollision
	g.name = nil
	g.rank = 0
	g.state = StateRunning

	g.spawnBerry()
	g.logger.Printf("round %s started", g.UUID)
}

// Tick advances the simulation to now, a monotonic clock reading.
func (g *Game) Tick(now time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.advanceClock(now)
	switch g.state {
	case StateRunning:
		g.step()
	case StateGameOver:
		if g.now-g.diedAt >= types.GameOverHold {
			g.settleGameOver()
		}
	}
}

func (g *Game) advanceClock(now time.Duration) {
	if now > g.now {
		g.now = now
	}
	if g.wheel != nil {
		g.wheel.Advance(g.now)
	}
}

// step runs one simulation step: move, missiles, death, eating.
func (g *Game) step() {
	moved := false
	if g.now-g.lastSnake >= g.snakeInterval() {
		g.snake.Advance()
		g.lastSnake = g.now
		moved = true
	}

	if g.now-g.lastMissile >= types.MissileInterval {
		g.missiles.AdvanceAll()
		g.missiles.ReapDead()
		g.missiles.MaybeSpawn()
		g.lastMissile = g.now
	}

	if c := g.collisions.CheckDeath(g.snake, g.missiles, g.hyperOn); c != manager.NoCollision {
		g.die(c)
		return
	}

	if moved {
		g.eat()
	}
}

func (g *Game) snakeInterval() time.Duration {
	if g.warpOn || g.hyperOn {
		return types.WarpedDelay
	}
	return g.delay
}

func (g *Game) eat() {
	head := g.snake.Head()
	b, ok := g.berries.At(head)
	if !ok {
		return
	}
	g.berries.Remove(head)
	g.snake.Eat()
	g.points += types.BerryPoints

	if b.Bonus {
		g.startHyper()
	}

	g.warpOn = true
	g.warp.Start(g.now, types.WarpDuration)
	g.delay = baseDelay(g.snake.Eaten())

	if g.berries.Len() == 0 {
		g.spawnBerry()
	}
}

// baseDelay shortens the step interval by 1ms for every few berries eaten,
// never dropping below the missile interval.
func baseDelay(eaten int) time.Duration {
	d := types.DefaultDelay - time.Duration(eaten/types.BerriesPerSpeedup)*time.Millisecond
	if d < types.MissileInterval {
		return types.MissileInterval
	}
	return d
}

func (g *Game) startHyper() {
	g.hyperOn = true
	for i := 0; i < types.HyperBurst; i++ {
		g.berries.SpawnRandom(g.snake, true)
	}
	g.hyper.Start(g.now, types.HyperDuration)
	g.logger.Printf("hyper mode on for %s", types.HyperDuration)
}

func (g *Game) spawnBerry() {
	g.berries.SpawnRandom(g.snake, g.hyperOn)
}

func (g *Game) endWarp() {
	g.warpOn = false
}

func (g *Game) endHyper() {
	g.hyperOn = false
	n := g.berries.CleanupEphemeral(g.spawnBerry)
	g.logger.Printf("hyper mode over, %d berries cleared", n)
}

func (g *Game) die(c manager.CollisionType) {
	g.state = StateGameOver
	g.collision = c
	g.diedAt = g.now
	g.warp.Cancel()
	g.hyper.Cancel()
	g.warpOn = false
	g.hyperOn = false
	g.logger.Printf("round %s over: %s collision, %d points", g.UUID, c, g.points)
}

// settleGameOver moves on to name entry for a table-worthy score, or
// straight to the table otherwise. A round with no points never qualifies.
func (g *Game) settleGameOver() {
	if rank, ok := g.scores.Qualifies(g.points); ok && g.points > 0 {
		g.rank = rank
		g.name = score.NewNameEntry()
		g.state = StateScoreEntry
		return
	}
	g.state = StateScoreDisplay
}
