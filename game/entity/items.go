package entity

import "hypersnake/game/types"

// Berry is a collectible. A bonus berry starts hyper mode when eaten; an
// ephemeral one only lives until hyper mode ends.
type Berry struct {
	Pos       types.Point
	Bonus     bool
	Ephemeral bool
}

// Missile travels up one row per missile step from the bottom of the grid.
type Missile struct {
	Pos  types.Point
	Dead bool
}

func NewMissile(column, height int) *Missile {
	return &Missile{Pos: types.Point{X: column, Y: height - 1}}
}

// Step moves the missile up a row, or marks it dead once it is already on row 0.
func (m *Missile) Step() {
	if m.Pos.Y > 0 {
		m.Pos.Y--
		return
	}
	m.Dead = true
}
