package manager

import (
	"container/list"

	"hypersnake/game/entity"
	"hypersnake/game/types"

	"golang.org/x/exp/rand"
)

// MissileManager keeps the live missiles in a doubly-linked list so a dead
// one can be unlinked in O(1) mid-walk.
type MissileManager struct {
	grid     types.Grid
	rng      *rand.Rand
	missiles *list.List // of *entity.Missile
}

func NewMissileManager(grid types.Grid, rng *rand.Rand) *MissileManager {
	return &MissileManager{
		grid:     grid,
		rng:      rng,
		missiles: list.New(),
	}
}

// Spawn launches a missile from a random column on the bottom row.
func (mm *MissileManager) Spawn() *entity.Missile {
	m := entity.NewMissile(mm.rng.Intn(mm.grid.Width), mm.grid.Height)
	mm.missiles.PushBack(m)
	return m
}

// MaybeSpawn launches a missile with probability 1 in MissileSpawnChance.
func (mm *MissileManager) MaybeSpawn() *entity.Missile {
	if mm.rng.Intn(types.MissileSpawnChance) != 0 {
		return nil
	}
	return mm.Spawn()
}

// AdvanceAll moves every missile up one row.
func (mm *MissileManager) AdvanceAll() {
	for e := mm.missiles.Front(); e != nil; e = e.Next() {
		e.Value.(*entity.Missile).Step()
	}
}

// ReapDead unlinks every dead missile and returns how many were removed.
func (mm *MissileManager) ReapDead() int {
	reaped := 0
	for e := mm.missiles.Front(); e != nil; {
		next := e.Next()
		if e.Value.(*entity.Missile).Dead {
			mm.missiles.Remove(e)
			reaped++
		}
		e = next
	}
	return reaped
}

// AnyCollides reports whether a live missile sits on pos.
func (mm *MissileManager) AnyCollides(pos types.Point) bool {
	for e := mm.missiles.Front(); e != nil; e = e.Next() {
		m := e.Value.(*entity.Missile)
		if !m.Dead && m.Pos == pos {
			return true
		}
	}
	return false
}

// HitsSnake reports whether any live missile sits on any body cell.
func (mm *MissileManager) HitsSnake(snake *entity.Snake) bool {
	for e := mm.missiles.Front(); e != nil; e = e.Next() {
		m := e.Value.(*entity.Missile)
		if !m.Dead && snake.Contains(m.Pos, false) {
			return true
		}
	}
	return false
}

func (mm *MissileManager) Len() int {
	return mm.missiles.Len()
}

func (mm *MissileManager) Reset() {
	mm.missiles.Init()
}

// Positions returns the cells of the live missiles.
func (mm *MissileManager) Positions() []types.Point {
	out := make([]types.Point, 0, mm.missiles.Len())
	for e := mm.missiles.Front(); e != nil; e = e.Next() {
		if m := e.Value.(*entity.Missile); !m.Dead {
			out = append(out, m.Pos)
		}
	}
	return out
}

// Add tracks an already-built missile.
func (mm *MissileManager) Add(m *entity.Missile) {
	mm.missiles.PushBack(m)
}
