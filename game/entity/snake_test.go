package entity

import (
	"testing"

	"hypersnake/game/types"
)

func TestNewDefaultSnake(t *testing.T) {
	s := NewDefaultSnake()
	if s.Len() != 7 {
		t.Fatalf("Len = %d, want 7", s.Len())
	}
	if s.Tail() != (types.Point{X: 8, Y: 0}) {
		t.Errorf("Tail = %v, want (8,0)", s.Tail())
	}
	if s.Head() != (types.Point{X: 8, Y: 6}) {
		t.Errorf("Head = %v, want (8,6)", s.Head())
	}
	body := s.Body()
	for i := 1; i < len(body); i++ {
		dx, dy := body[i].X-body[i-1].X, body[i].Y-body[i-1].Y
		if abs(dx)+abs(dy) != 1 {
			t.Fatalf("cells %v and %v not adjacent", body[i-1], body[i])
		}
	}
}

func TestSevenAdvances(t *testing.T) {
	s := NewDefaultSnake()
	for i := 0; i < 7; i++ {
		s.Advance()
	}
	if s.Head() != (types.Point{X: 8, Y: 13}) {
		t.Errorf("Head = %v, want (8,13)", s.Head())
	}
	if s.Len() != 7 {
		t.Errorf("Len = %d, want 7", s.Len())
	}
	if s.Tail() != (types.Point{X: 8, Y: 7}) {
		t.Errorf("Tail = %v, want (8,7)", s.Tail())
	}
}

func TestGrowthInvariant(t *testing.T) {
	s := NewDefaultSnake()
	ops := []string{"advance", "grow", "grow", "advance", "advance", "grow", "advance", "grow"}
	want := s.Len()
	for i, op := range ops {
		before := s.Head()
		switch op {
		case "advance":
			s.Advance()
			if s.Head() != before.Add(s.Direction()) {
				t.Fatalf("step %d: head %v not appended after %v", i, s.Head(), before)
			}
		case "grow":
			s.Grow()
			want++
			if s.Head() != before {
				t.Fatalf("step %d: grow moved head from %v to %v", i, before, s.Head())
			}
		}
		if s.Len() != want {
			t.Fatalf("step %d (%s): Len = %d, want %d", i, op, s.Len(), want)
		}
	}
}

func TestGrowExtendsTailLine(t *testing.T) {
	s := NewDefaultSnake()
	s.Grow()
	if s.Tail() != (types.Point{X: 8, Y: -1}) {
		t.Fatalf("Tail = %v, want (8,-1)", s.Tail())
	}

	one := NewSnake(1, types.Point{X: 5, Y: 5}, types.RIGHT)
	one.Grow()
	if one.Tail() != (types.Point{X: 4, Y: 5}) || one.Len() != 2 {
		t.Fatalf("single-cell grow: tail %v len %d", one.Tail(), one.Len())
	}
}

func TestGrowPastRingCapacity(t *testing.T) {
	s := NewSnake(1, types.Point{X: 0, Y: 0}, types.RIGHT)
	for i := 0; i < 40; i++ {
		s.Advance()
		s.Grow()
	}
	if s.Len() != 41 {
		t.Fatalf("Len = %d, want 41", s.Len())
	}
	if s.Head() != (types.Point{X: 40, Y: 0}) {
		t.Fatalf("Head = %v, want (40,0)", s.Head())
	}
	body := s.Body()
	for i := 1; i < len(body); i++ {
		if body[i].X != body[i-1].X+1 {
			t.Fatalf("body not contiguous at %d: %v", i, body[i-1:i+1])
		}
	}
}

func TestChangeDirection(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   bool
	}{
		{"reverse", 0, -1, false},
		{"same", 0, 1, false},
		{"left", -1, 0, true},
		{"right", 1, 0, true},
		{"diagonal sharing dy", 1, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewDefaultSnake()
			if got := s.ChangeDirection(tc.dx, tc.dy); got != tc.want {
				t.Fatalf("ChangeDirection(%d,%d) = %v, want %v", tc.dx, tc.dy, got, tc.want)
			}
		})
	}
}

func TestChangeDirectionSharedAxisRejected(t *testing.T) {
	s := NewSnake(3, types.Point{X: 5, Y: 5}, types.RIGHT)
	if s.ChangeDirection(1, 1) {
		t.Fatal("(1,0) -> (1,1) accepted")
	}
	if s.Direction() != (types.Point{X: 1, Y: 0}) {
		t.Fatalf("direction changed to %v", s.Direction())
	}
}

func TestOneTurnPerStep(t *testing.T) {
	s := NewDefaultSnake()
	if !s.ChangeDirection(1, 0) {
		t.Fatal("first turn rejected")
	}
	if s.ChangeDirection(0, -1) {
		t.Fatal("second turn accepted before the snake moved")
	}
	if !s.TurnPending() {
		t.Fatal("turn not pending")
	}
	s.Advance()
	if s.Head() != (types.Point{X: 9, Y: 6}) {
		t.Fatalf("Head = %v, want (9,6)", s.Head())
	}
	if !s.ChangeDirection(0, -1) {
		t.Fatal("turn after a step rejected")
	}
}

func TestContainsIgnoresHead(t *testing.T) {
	s := NewSnake(1, types.Point{X: 3, Y: 3}, types.UP)
	if s.Contains(s.Head(), true) {
		t.Fatal("length-1 snake matched its own head with ignoreHead")
	}
	if !s.Contains(s.Head(), false) {
		t.Fatal("head not found without ignoreHead")
	}

	long := NewDefaultSnake()
	if long.Contains(long.Head(), true) {
		t.Fatal("head matched with ignoreHead")
	}
	if !long.Contains(types.Point{X: 8, Y: 3}, true) {
		t.Fatal("body cell not found")
	}
}

func TestOutOfBounds(t *testing.T) {
	s := NewSnake(1, types.Point{X: 0, Y: 0}, types.LEFT)
	if s.OutOfBounds(50, 50) {
		t.Fatal("origin reported out of bounds")
	}
	s.Advance()
	if !s.OutOfBounds(50, 50) {
		t.Fatal("(-1,0) reported in bounds")
	}
}

func TestMissileStep(t *testing.T) {
	m := NewMissile(4, 2)
	m.Step()
	if m.Pos != (types.Point{X: 4, Y: 0}) || m.Dead {
		t.Fatalf("after one step: %+v", m)
	}
	m.Step()
	if !m.Dead || m.Pos.Y != 0 {
		t.Fatalf("missile on row 0 should die in place: %+v", m)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
