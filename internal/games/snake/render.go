package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/spawn"
)

// now is the clock used for display-only checks.
var now = time.Now

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.machine == nil || !dst.Ready() {
		return
	}
	r := g.rules
	top := g.cfg.Board.HUDRows
	cw := g.cfg.Board.CellCols

	g.renderHUD(dst)

	// Grid dots
	for row := 0; row < r.board.H; row++ {
		for col := 0; col < r.board.W; col++ {
			dst.SetColor(col*cw, top+row, '·', core.ColorGray)
		}
	}

	if r.hasFood {
		dst.SetColor(r.food.Cell.Col*cw, top+r.food.Cell.Row, foodGlyph(r.food.Kind), foodColor(r.food.Kind))
	}

	for i, c := range r.body {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorBrightGreen
		}
		dst.FillRect(c.Col*cw, top+c.Row, cw, 1, '█', color)
	}

	for _, p := range r.particles.Items() {
		if p.Pos.X < 0 || p.Pos.Y < 0 {
			continue
		}
		dst.SetColor(int(p.Pos.X*float64(cw)), top+int(p.Pos.Y), '*', p.Color)
	}

	switch g.machine.Phase() {
	case core.PhaseIdle:
		dst.DrawOverlay("SNAKE", "Arrows/WASD or ENTER to start", core.ColorBrightGreen)
	case core.PhaseEnded:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  SPACE/R to restart", g.machine.Score()), core.ColorBrightRed)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	if g.cfg.Board.HUDRows <= 0 {
		return
	}
	hud := fmt.Sprintf("SNAKE  Score: %d  Length: %d", g.machine.Score(), len(g.rules.body))
	if g.rules.slow.Active(now()) {
		hud += "  [SLOW]"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)
}

func foodGlyph(k spawn.FoodKind) rune {
	switch k {
	case spawn.FoodBonus:
		return '★'
	case spawn.FoodSlow:
		return '◆'
	default:
		return '●'
	}
}
