package manager

import (
	"hypersnake/game/entity"
	"hypersnake/game/keyed"
	"hypersnake/game/types"

	"golang.org/x/exp/rand"
)

// BerryManager owns the berries on the board, keyed by cell.
type BerryManager struct {
	grid    types.Grid
	rng     *rand.Rand
	berries *keyed.Store[*entity.Berry]
}

func NewBerryManager(grid types.Grid, rng *rand.Rand) *BerryManager {
	return &BerryManager{
		grid:    grid,
		rng:     rng,
		berries: keyed.New[*entity.Berry](),
	}
}

// SpawnRandom places a berry on a random cell not covered by the snake or
// another berry. Retries are unbounded; the board is never close to full.
// Bonus berries are rolled 1 in BonusChance, never while hyper mode is on,
// and berries spawned during hyper mode are ephemeral.
func (bm *BerryManager) SpawnRandom(snake *entity.Snake, hyper bool) *entity.Berry {
	for {
		pos := types.Point{
			X: bm.rng.Intn(bm.grid.Width),
			Y: bm.rng.Intn(bm.grid.Height),
		}
		if snake.Contains(pos, false) || bm.berries.Has(pos.Key()) {
			continue
		}

		b := &entity.Berry{
			Pos:       pos,
			Bonus:     !hyper && bm.rng.Intn(types.BonusChance) == 0,
			Ephemeral: hyper,
		}
		bm.berries.Put(pos.Key(), b)
		return b
	}
}

// Add places b directly, replacing whatever berry was on its cell.
func (bm *BerryManager) Add(b *entity.Berry) {
	bm.berries.Put(b.Pos.Key(), b)
}

func (bm *BerryManager) At(pos types.Point) (*entity.Berry, bool) {
	return bm.berries.Get(pos.Key())
}

// Remove deletes the berry at pos, reporting whether there was one.
func (bm *BerryManager) Remove(pos types.Point) bool {
	return bm.berries.Delete(pos.Key())
}

// CleanupEphemeral drops every ephemeral berry. If that leaves the board
// empty, spawn is called once so a berry is always available.
func (bm *BerryManager) CleanupEphemeral(spawn func()) int {
	removed := 0
	for key, b := range bm.berries.All() {
		if b.Ephemeral {
			bm.berries.Delete(key)
			removed++
		}
	}
	if bm.berries.Len() == 0 {
		spawn()
	}
	return removed
}

func (bm *BerryManager) Len() int {
	return bm.berries.Len()
}

func (bm *BerryManager) Reset() {
	bm.berries.Reset()
}

// Berries returns a copy of every berry on the board.
func (bm *BerryManager) Berries() []entity.Berry {
	out := make([]entity.Berry, 0, bm.berries.Len())
	for _, b := range bm.berries.All() {
		out = append(out, *b)
	}
	return out
}
