package sokoban

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

const (
	cellWidth = 2 // terminal columns per tile
	hudHeight = 3 // title, status and a blank line above the board
)

// glyph is what one entity looks like on screen.
type glyph struct {
	text  string
	color core.Color
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch {
	case g.loadErr != nil && !g.finished:
		g.renderCentered(dst, "Cannot load level", g.loadErr.Error())
		return
	case g.finished:
		g.renderFinished(dst)
		return
	}

	boardW := g.world.Width * cellWidth
	boardH := g.world.Height
	if g.screenW < boardW || g.screenH < boardH+hudHeight+1 {
		g.renderCentered(dst, "Window too small", "Please resize terminal")
		return
	}

	area := core.CenteredRect(g.screenW, g.screenH-hudHeight, boardW, boardH)
	area.Y += hudHeight

	g.renderHUD(dst, area)
	g.renderBoard(dst, area)
	g.renderOverlays(dst, area)
}

// renderHUD draws level name, moves, colour-correct placements and phase.
func (g *Game) renderHUD(dst *core.Screen, area core.Rect) {
	title := fmt.Sprintf("Level %s  %s", g.level.ID, g.level.Name)
	dst.DrawTextCentered(0, title, core.ColorBrightWhite)

	status := fmt.Sprintf("Moves: %d   Placed: %d/%d   %s",
		g.hud.state.MovesCount,
		engine.CorrectPlacements(g.world),
		g.world.CountKind(engine.KindBoxSpot),
		g.hud.state.Phase,
	)
	if g.message != "" {
		status += "   " + g.message
	}
	dst.DrawTextCentered(1, status, core.ColorGray)

	if hint := g.level.Hint(); hint != "" && area.Bottom() < g.screenH {
		dst.DrawTextCentered(area.Bottom(), hint, core.ColorGray)
	}
}

// renderBoard draws every entity in layer order, placing each glyph from its
// visual transform.
func (g *Game) renderBoard(dst *core.Screen, area core.Rect) {
	tile := g.world.TileSize

	for y := 0; y < g.world.Height; y++ {
		for x := 0; x < g.world.Width; x++ {
			if g.world.IsFloor(engine.Coord{X: x, Y: y}) {
				dst.DrawTextColor(area.X+x*cellWidth, area.Y+y, " ·", core.ColorGray)
			}
		}
	}

	ents := append([]engine.Entity(nil), g.world.Entities()...)
	sort.SliceStable(ents, func(i, j int) bool {
		return ents[i].Transform.Z < ents[j].Transform.Z
	})

	for _, e := range ents {
		col := int(math.Floor(e.Transform.X / tile))
		row := int(math.Floor(e.Transform.Y / tile))
		gl := g.glyphFor(e)
		dst.DrawTextColor(area.X+col*cellWidth, area.Y+row, gl.text, gl.color)
	}
}

func (g *Game) glyphFor(e engine.Entity) glyph {
	switch e.Kind {
	case engine.KindWall:
		return glyph{"██", core.ColorGray}
	case engine.KindPlayer:
		return glyph{"@ ", core.ColorBrightYellow}
	case engine.KindBoxSpot:
		return glyph{"()", colourFor(e.Colour, false)}
	case engine.KindBox:
		spot, on := g.world.SpotAt(e.Pos.Coord())
		if on && spot.Colour == e.Colour {
			return glyph{"[]", colourFor(e.Colour, true)}
		}
		if on {
			return glyph{"[]", core.ColorMagenta}
		}
		return glyph{"[]", colourFor(e.Colour, false)}
	}
	return glyph{"??", core.ColorDefault}
}

func colourFor(c engine.Colour, bright bool) core.Color {
	switch c {
	case engine.ColourRed:
		if bright {
			return core.ColorBrightRed
		}
		return core.ColorRed
	case engine.ColourBlue:
		if bright {
			return core.ColorBrightBlue
		}
		return core.ColorBlue
	}
	return core.ColorDefault
}

// renderOverlays draws pause and win messages under the board.
func (g *Game) renderOverlays(dst *core.Screen, area core.Rect) {
	y := area.Bottom() + 1
	switch {
	case g.paused:
		dst.DrawTextCentered(y, " PAUSED ", core.ColorBrightYellow)
		dst.DrawTextCentered(y+1, " P to resume ", core.ColorGray)
	case g.state.Phase == engine.PhaseWon:
		dst.DrawTextCentered(y, fmt.Sprintf(" SOLVED in %d moves ", g.state.MovesCount), core.ColorBrightGreen)
		next := " Enter: next level  R: replay "
		if g.mode == ModeSingle || g.levelIndex+1 >= len(g.opts.Levels) {
			next = " Enter: finish  R: replay "
		}
		dst.DrawTextCentered(y+1, next, core.ColorGray)
	}
}

func (g *Game) renderFinished(dst *core.Screen) {
	if len(g.opts.Levels) == 0 {
		g.renderCentered(dst, "No levels", "Check levels.dir in your config")
		return
	}
	g.renderCentered(dst, "All done!", fmt.Sprintf("Last level: %s  (%d moves)", g.level.ID, g.state.MovesCount))
}

func (g *Game) renderCentered(dst *core.Screen, title, detail string) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, title, core.ColorBrightWhite)
	dst.DrawTextCentered(y+1, detail, core.ColorGray)
}
