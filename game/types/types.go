package types

import (
	"strconv"
	"time"
)

// Point is a cell on the game grid.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Key returns the canonical "x,y" encoding used to index berries.
func (p Point) Key() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// In reports whether p lies inside [0,w)x[0,h).
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Board is the fixed playing field.
var Board = Grid{Width: GridWidth, Height: GridHeight}

// Direction is a cardinal movement vector.
type Direction int

const (
	NONE Direction = iota
	UP
	RIGHT
	DOWN
	LEFT
)

// ToPoint converts a Direction to its unit displacement.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Grid and snake constants
const (
	GridWidth  = 50
	GridHeight = 50

	SnakeStartLength = 7
)

// SnakeStart is where the tail of a fresh snake sits; the body extends along SnakeStartDir.
var (
	SnakeStart    = Point{X: 8, Y: 0}
	SnakeStartDir = DOWN
)

// Timing constants. Intervals are compared against the tick clock in milliseconds.
const (
	DefaultDelay    = 80 * time.Millisecond // base snake step interval
	WarpedDelay     = 30 * time.Millisecond // step interval during time warp or hyper mode
	MissileInterval = 40 * time.Millisecond // missile step interval, also the floor for the snake delay
	WarpDuration    = 600 * time.Millisecond
	HyperDuration   = 6 * time.Second
	GameOverHold    = 1500 * time.Millisecond
)

// Scoring and spawning
const (
	BerryPoints        = 10
	BerriesPerSpeedup  = 4  // delay drops 1ms per this many berries eaten
	BonusChance        = 10 // 1-in-N chance a berry is a hyper berry
	HyperBurst         = 5  // extra berries spawned on entering hyper mode
	MissileSpawnChance = 25 // 1-in-N chance per missile step to launch a missile
	MaxHighScores      = 10
)
