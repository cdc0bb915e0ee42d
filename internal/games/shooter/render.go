package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/entity"
)

// Render draws the game to the screen. World pixels are scaled down to
// terminal cells; every box covers at least one cell.
func (g *Game) Render(dst *core.Screen) {
	if g.machine == nil || !dst.Ready() {
		return
	}
	r := g.rules

	hud := fmt.Sprintf("SHOOTER  Score: %d", g.machine.Score())
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)

	for _, h := range r.hostiles.Items() {
		g.drawBox(dst, h, '▓', core.ColorRed)
	}
	for _, p := range r.projectiles.Items() {
		g.drawBox(dst, p, '•', core.ColorBrightYellow)
	}
	g.drawBox(dst, r.player, '█', core.ColorCyan)

	for _, p := range r.particles.Items() {
		x, y := g.toCell(p.Pos.X, p.Pos.Y)
		if y >= g.cfg.World.HUDRows {
			dst.SetColor(x, y, '·', p.Color)
		}
	}

	switch g.machine.Phase() {
	case core.PhaseIdle:
		dst.DrawOverlay("SHOOTER", "SPACE to start", core.ColorCyan)
	case core.PhaseEnded:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  SPACE/R to restart", g.machine.Score()), core.ColorBrightRed)
	}
}

func (g *Game) toCell(x, y float64) (int, int) {
	col := int(math.Floor(x / float64(g.cfg.World.ColPx)))
	row := int(math.Floor(y/float64(g.cfg.World.RowPx))) + g.cfg.World.HUDRows
	return col, row
}

func (g *Game) drawBox(dst *core.Screen, e entity.Entity, fill rune, c core.Color) {
	x0, y0 := g.toCell(e.Pos.X, e.Pos.Y)
	x1, y1 := g.toCell(e.Pos.X+e.Size.X, e.Pos.Y+e.Size.Y)
	x1, y1 = max(x0+1, x1), max(y0+1, y1)
	for y := max(y0, g.cfg.World.HUDRows); y < y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColor(x, y, fill, c)
		}
	}
}
