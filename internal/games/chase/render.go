package chase

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/chase/sim"
)

// Board glyphs as they appear on screen.
const (
	GlyphWall      = '#'
	GlyphPickup    = '.'
	GlyphPower     = 'O'
	GlyphEmpty     = ' '
	GlyphPlayer    = 'C'
	GlyphAdversary = 'M'
)

var welcomeLines = []string{
	"Welcome to Maze Chase!",
	"",
	"Controls:",
	"W/A/S/D or arrows - move",
	"P - pause",
	"Q - quit",
	"",
	"Press any key to start",
}

// tileGlyph returns the glyph and color of a tile.
func tileGlyph(t sim.Tile, power bool) (rune, core.Color) {
	switch t {
	case sim.TileWall:
		return GlyphWall, core.ColorBlue
	case sim.TilePickup:
		return GlyphPickup, core.ColorWhite
	case sim.TilePower:
		return GlyphPower, core.ColorBrightYellow
	case sim.TilePlayer:
		return GlyphPlayer, core.ColorYellow
	case sim.TileAdversary:
		if power {
			return GlyphAdversary, core.ColorBrightBlue
		}
		return GlyphAdversary, core.ColorRed
	default:
		return GlyphEmpty, core.ColorDefault
	}
}

// header returns the status line shown above the board.
func (g *Game) header() string {
	st := g.sim.State()
	h := fmt.Sprintf("Score: %d Lives: %d", st.Score, st.Lives)
	if st.PowerMode {
		h += " POWER MODE!"
	}
	return h
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.started {
		g.renderWelcome(dst)
		return
	}

	if dst.Width() < sim.Width || dst.Height() < sim.Height+1 {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	area := dst.Bounds().Centered(sim.Width, sim.Height+1)
	power := g.sim.State().PowerMode

	headerColor := core.ColorBrightWhite
	if power {
		headerColor = core.ColorBrightYellow
	}
	dst.DrawTextColored(area.X, area.Y, g.header(), headerColor)

	for y := 0; y < sim.Height; y++ {
		for x := 0; x < sim.Width; x++ {
			r, c := tileGlyph(g.sim.TileAt(sim.C(x, y)), power)
			dst.SetColored(area.X+x, area.Y+1+y, r, c)
		}
	}

	if g.paused {
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderWelcome(dst *core.Screen) {
	top := core.Max(0, (dst.Height()-len(welcomeLines))/2)
	for i, line := range welcomeLines {
		dst.DrawTextCentered(top+i, line)
	}
}

// renderOverlay draws a boxed two-line message in the middle of the screen.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	textW := core.Max(len([]rune(line1)), len([]rune(line2)))
	box := dst.Bounds().Centered(textW+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// Frame returns the header and board as plain text, one line per row.
func (g *Game) Frame() string {
	var sb strings.Builder
	sb.WriteString(g.header())
	for y := 0; y < sim.Height; y++ {
		sb.WriteByte('\n')
		for x := 0; x < sim.Width; x++ {
			r, _ := tileGlyph(g.sim.TileAt(sim.C(x, y)), false)
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
