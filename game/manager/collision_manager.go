package manager

import (
	"hypersnake/game/entity"
	"hypersnake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	MissileCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case MissileCollision:
		return "missile"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckDeath applies the death rule to a snake that has already moved this
// step. Leaving the grid is always fatal. Running into its own body or a
// missile is fatal only outside hyper mode.
func (cm *CollisionManager) CheckDeath(snake *entity.Snake, missiles *MissileManager, hyper bool) CollisionType {
	if cm.isWallCollision(snake) {
		return WallCollision
	}
	if hyper {
		return NoCollision
	}
	if snake.Contains(snake.Head(), true) {
		return SelfCollision
	}
	if missiles.HitsSnake(snake) {
		return MissileCollision
	}
	return NoCollision
}

// isWallCollision checks if the head is outside the grid
func (cm *CollisionManager) isWallCollision(snake *entity.Snake) bool {
	return snake.OutOfBounds(cm.grid.Width, cm.grid.Height)
}
