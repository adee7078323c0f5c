package entity

import "hypersnake/game/types"

// Snake is an ordered body from tail (front of the ring) to head (back).
type Snake struct {
	body      ring
	direction types.Point
	hasMoved  bool // false while a turn is pending for the next step
	eaten     int
}

// NewSnake lays out a straight body of length cells starting at tail and
// heading in dir.
func NewSnake(length int, tail types.Point, dir types.Direction) *Snake {
	if length < 1 {
		length = 1
	}
	d := dir.ToPoint()
	s := &Snake{
		body:      newRing(length * 2),
		direction: d,
		hasMoved:  true,
	}
	p := tail
	for i := 0; i < length; i++ {
		s.body.pushBack(p)
		p = p.Add(d)
	}
	return s
}

// NewDefaultSnake returns the round-start snake: seven cells from (8,0) heading down.
func NewDefaultSnake() *Snake {
	return NewSnake(types.SnakeStartLength, types.SnakeStart, types.SnakeStartDir)
}

// ChangeDirection queues a turn for the next step. A turn is refused while
// another is still pending, and whenever dx or dy equals the current
// component. The latter blocks reversals and same-direction requests, and
// also refuses any diagonal input sharing an axis value with the current
// heading.
func (s *Snake) ChangeDirection(dx, dy int) bool {
	if !s.hasMoved {
		return false
	}
	if s.direction.X == dx || s.direction.Y == dy {
		return false
	}
	s.direction = types.Point{X: dx, Y: dy}
	s.hasMoved = false
	return true
}

// Advance moves the snake one cell: new head in the current direction, tail dropped.
func (s *Snake) Advance() {
	next := s.Head().Add(s.direction)
	s.body.pushBack(next)
	s.body.popFront()
	s.hasMoved = true
}

// Grow extends the tail by one cell, continuing the line of the last two tail
// cells. A one-cell snake grows opposite to its heading.
func (s *Snake) Grow() {
	tail := s.body.front()
	var d types.Point
	if s.body.len() > 1 {
		next := s.body.at(1)
		d = types.Point{X: tail.X - next.X, Y: tail.Y - next.Y}
	} else {
		d = types.Point{X: -s.direction.X, Y: -s.direction.Y}
	}
	s.body.pushFront(tail.Add(d))
}

// Eat records a berry and grows the snake.
func (s *Snake) Eat() {
	s.Grow()
	s.eaten++
}

// Contains reports whether p is a body cell, scanning tail to head. With
// ignoreHead the head cell itself is excluded.
func (s *Snake) Contains(p types.Point, ignoreHead bool) bool {
	n := s.body.len()
	if ignoreHead {
		n--
	}
	for i := 0; i < n; i++ {
		if s.body.at(i) == p {
			return true
		}
	}
	return false
}

// OutOfBounds reports whether the head left [0,width)x[0,height).
func (s *Snake) OutOfBounds(width, height int) bool {
	return !s.Head().In(width, height)
}

func (s *Snake) Head() types.Point {
	return s.body.back()
}

func (s *Snake) Tail() types.Point {
	return s.body.front()
}

func (s *Snake) Len() int {
	return s.body.len()
}

func (s *Snake) Direction() types.Point {
	return s.direction
}

// TurnPending reports whether a direction change is waiting for the next step.
func (s *Snake) TurnPending() bool {
	return !s.hasMoved
}

func (s *Snake) Eaten() int {
	return s.eaten
}

// Body returns a copy of the cells from tail to head.
func (s *Snake) Body() []types.Point {
	out := make([]types.Point, s.body.len())
	for i := range out {
		out[i] = s.body.at(i)
	}
	return out
}

// Each calls fn for every cell from tail to head until fn returns false.
func (s *Snake) Each(fn func(types.Point) bool) {
	for i := 0; i < s.body.len(); i++ {
		if !fn(s.body.at(i)) {
			return
		}
	}
}
