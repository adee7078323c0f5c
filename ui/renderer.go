package ui

import (
	"fmt"

	"hypersnake/game"
	"hypersnake/game/score"
	"hypersnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // padding around the board

var (
	snakeColor     = rl.Color{R: 0, G: 200, B: 80, A: 255}
	hyperColor     = rl.Color{R: 255, G: 0, B: 220, A: 255}
	berryColor     = rl.Red
	bonusColor     = rl.Gold
	ephemeralColor = rl.SkyBlue
	missileColor   = rl.Orange
)

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	gameWidth    int32
	statsPanel   int32
	gridWidth    int32
	gridHeight   int32
	offsetX      int32
	offsetY      int32
	fontSize     int32
	lineHeight   int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the layout from the current window size. The
// side panel takes a seventh of the width.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.statsPanel = r.screenWidth / 7
	r.gameWidth = r.screenWidth - r.statsPanel

	r.fontSize = max(min(r.screenHeight/45, r.statsPanel/12), 10)
	r.lineHeight = r.fontSize + r.fontSize/2
}

func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.gameWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	r.cellSize = max(min(availableWidth/int32(grid.Width), availableHeight/int32(grid.Height)), 1)

	r.gridWidth = r.cellSize * int32(grid.Width)
	r.gridHeight = r.cellSize * int32(grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.gridHeight) / 2
}

// Draw renders one frame from s.
func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	r.layout(s.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.gridWidth+2, r.gridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.gridWidth, r.gridHeight, rl.Black)

	for _, b := range s.Berries {
		color := berryColor
		switch {
		case b.Ephemeral:
			color = ephemeralColor
		case b.Bonus:
			color = bonusColor
		}
		r.cell(b.Pos, color)
	}
	for _, m := range s.Missiles {
		r.cell(m, missileColor)
	}
	r.drawSnake(s)

	r.drawStatsPanel(s)

	switch s.State {
	case game.StatePaused:
		r.banner("PAUSED", rl.White)
	case game.StateGameOver:
		r.banner(fmt.Sprintf("GAME OVER (%s)", s.Collision), rl.Red)
	case game.StateScoreEntry:
		r.drawNameEntry(s)
	case game.StateScoreDisplay:
		r.drawHighScores(s.HighScores, "press any key")
	}
	rl.EndDrawing()
}

func (r *Renderer) cell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*r.cellSize,
		r.offsetY+int32(p.Y)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawSnake(s game.Snapshot) {
	body := s.Snake
	if len(body) == 0 {
		return
	}
	color := snakeColor
	if s.Hyper {
		color = hyperColor
	}
	for _, p := range body[:len(body)-1] {
		r.cell(p, color)
	}

	head := body[len(body)-1]
	r.cell(head, rl.White)
	if len(body) < 2 {
		return
	}

	// heading indicator, pointing away from the neck
	neck := body[len(body)-2]
	dx, dy := head.X-neck.X, head.Y-neck.Y
	x := float32(r.offsetX + int32(head.X)*r.cellSize)
	y := float32(r.offsetY + int32(head.Y)*r.cellSize)
	c := float32(r.cellSize)
	h := c / 2
	var a, b, tip rl.Vector2
	switch {
	case dx > 0:
		tip, a, b = rl.Vector2{X: x + c, Y: y + h}, rl.Vector2{X: x + h, Y: y}, rl.Vector2{X: x + h, Y: y + c}
	case dx < 0:
		tip, a, b = rl.Vector2{X: x, Y: y + h}, rl.Vector2{X: x + h, Y: y + c}, rl.Vector2{X: x + h, Y: y}
	case dy > 0:
		tip, a, b = rl.Vector2{X: x + h, Y: y + c}, rl.Vector2{X: x + c, Y: y + h}, rl.Vector2{X: x, Y: y + h}
	default:
		tip, a, b = rl.Vector2{X: x + h, Y: y}, rl.Vector2{X: x, Y: y + h}, rl.Vector2{X: x + c, Y: y + h}
	}
	rl.DrawTriangle(tip, a, b, rl.Yellow)
}

func (r *Renderer) drawStatsPanel(s game.Snapshot) {
	x := r.gameWidth + 5
	y := int32(10)
	rl.DrawRectangle(x-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	line := func(text string, color rl.Color) {
		rl.DrawText(text, x, y, r.fontSize, color)
		y += r.lineHeight
	}

	line(fmt.Sprintf("Score: %d", s.Score), rl.White)
	line(fmt.Sprintf("Berries: %d", s.Eaten), rl.White)
	line(fmt.Sprintf("Step: %dms", s.Delay.Milliseconds()), rl.LightGray)
	if s.Warp {
		line("TIME WARP", rl.SkyBlue)
	}
	if s.Hyper {
		line(fmt.Sprintf("HYPER %.1fs", s.HyperLeft.Seconds()), hyperColor)
	}

	y += r.lineHeight / 2
	line("High Scores:", rl.White)
	for i, e := range s.HighScores {
		line(fmt.Sprintf("%2d. %s %d", i+1, e.Name, e.Points), rl.LightGray)
	}

	rl.DrawText(s.State.String(), x, r.screenHeight-r.fontSize-5, r.fontSize, rl.Gray)
}

// banner centres one line of text over the board.
func (r *Renderer) banner(text string, color rl.Color) {
	size := r.fontSize * 2
	w := rl.MeasureText(text, size)
	rl.DrawText(text, r.offsetX+(r.gridWidth-w)/2, r.offsetY+r.gridHeight/2-size/2, size, color)
}

func (r *Renderer) drawNameEntry(s game.Snapshot) {
	size := r.fontSize * 3
	title := fmt.Sprintf("NEW HIGH SCORE #%d: %d", s.Rank+1, s.Score)
	tw := rl.MeasureText(title, r.fontSize*2)
	top := r.offsetY + r.gridHeight/3
	rl.DrawText(title, r.offsetX+(r.gridWidth-tw)/2, top, r.fontSize*2, rl.Gold)

	slot := size
	x := r.offsetX + (r.gridWidth-slot*score.NameLen)/2
	y := top + r.fontSize*3
	for i, ch := range s.Name {
		color := rl.White
		if i == s.NameCursor {
			rl.DrawRectangle(x+int32(i)*slot, y+size, slot-4, 4, rl.Gold)
			color = rl.Gold
		}
		rl.DrawText(string(ch), x+int32(i)*slot, y, size, color)
	}
	hint := "arrows edit, enter saves"
	hw := rl.MeasureText(hint, r.fontSize)
	rl.DrawText(hint, r.offsetX+(r.gridWidth-hw)/2, y+size*2, r.fontSize, rl.LightGray)
}

func (r *Renderer) drawHighScores(entries []score.Entry, footer string) {
	size := r.fontSize * 2
	lineH := size + size/3
	height := lineH * int32(len(entries)+3)
	y := r.offsetY + (r.gridHeight-height)/2

	title := "HIGH SCORES"
	rl.DrawText(title, r.offsetX+(r.gridWidth-rl.MeasureText(title, size))/2, y, size, rl.Gold)
	y += lineH * 3 / 2
	for i, e := range entries {
		text := fmt.Sprintf("%2d. %s %6d", i+1, e.Name, e.Points)
		rl.DrawText(text, r.offsetX+(r.gridWidth-rl.MeasureText(text, size))/2, y, size, rl.White)
		y += lineH
	}
	if len(entries) == 0 {
		text := "no scores yet"
		rl.DrawText(text, r.offsetX+(r.gridWidth-rl.MeasureText(text, size))/2, y, size, rl.LightGray)
		y += lineH
	}
	y += lineH / 2
	rl.DrawText(footer, r.offsetX+(r.gridWidth-rl.MeasureText(footer, r.fontSize))/2, y, r.fontSize, rl.Gray)
}
