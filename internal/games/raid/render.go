package raid

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/river-raid/internal/core"
)

// Visual characters for rendering
const (
	BankChar       = '░'
	IslandChar     = '▓'
	TreeChar       = '♣'
	HouseChar      = '⌂'
	CraftChar      = '▲'
	VesselChar     = '▬'
	RotaryChar     = '✚'
	JetLeftChar    = '◄'
	JetRightChar   = '►'
	DepotChar      = 'F'
	BridgeChar     = '═'
	ProjectileChar = '|'
	ParticleChar   = '*'
	GaugeFull      = '█'
	GaugeEmpty     = '·'
)

// Render colors
const (
	landColor       = core.ColorGreen
	treeColor       = core.ColorBrightGreen
	houseColor      = core.ColorOrange
	craftColor      = core.ColorBrightRed
	projectileColor = core.ColorBrightWhite
	hudColor        = core.ColorBrightCyan
)

// minimum screen size for a usable picture
const (
	minScreenW = 20
	minScreenH = 8
)

// viewport maps world coordinates onto the playfield cells.
type viewport struct {
	x0, y0 int     // Top-left cell of the playfield
	w, h   int     // Playfield size in cells
	sx, sy float64 // Cells per world unit
}

// newViewport fits the world between the HUD row and the fuel gauge row.
// Terminal cells are roughly twice as tall as they are wide.
func newViewport(screenW, screenH int, worldW, worldH float64) viewport {
	h := screenH - 2
	w := int(math.Round(float64(h) * worldW / worldH * 2))
	if w > screenW {
		w = screenW
	}
	return viewport{
		x0: (screenW - w) / 2,
		y0: 1,
		w:  w,
		h:  h,
		sx: float64(w) / worldW,
		sy: float64(h) / worldH,
	}
}

// cell converts a world point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return v.x0 + int(math.Floor(x*v.sx)), v.y0 + int(math.Floor(y*v.sy))
}

// cells converts a world box to a cell box of at least one cell, clipped to
// the playfield.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := max(int(math.Ceil(r.Right()*v.sx)), x0+1)
	y1 := max(int(math.Ceil(r.Bottom()*v.sy)), y0+1)

	x0, x1 = max(x0, 0), min(x1, v.w)
	y0, y1 = max(y0, 0), min(y1, v.h)
	return v.x0 + x0, v.y0 + y0, x1 - x0, y1 - y0
}

// inside reports whether a screen cell lies on the playfield.
func (v viewport) inside(x, y int) bool {
	return x >= v.x0 && x < v.x0+v.w && y >= v.y0 && y < v.y0+v.h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawText(0, 0, "Terminal too small", core.ColorBrightRed)
		return
	}

	v := newViewport(dst.Width(), dst.Height(), g.cfg.World.Width, g.cfg.World.Height)

	g.drawTerrain(dst, v)
	g.drawEntities(dst, v)
	g.drawProjectiles(dst, v)
	if g.state == StatePlaying {
		g.drawCraft(dst, v)
	}
	g.drawParticles(dst, v)
	g.drawHUD(dst)
	g.drawFuelGauge(dst)

	switch g.state {
	case StateMenu:
		drawCenteredMessage(dst, "RIVER RAID", "Press Enter to start", "Arrows steer and throttle, Space fires")
	case StateGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d", g.player.Score, g.level),
			"Press Enter to fly again")
	}
}

func (g *Game) drawTerrain(dst *core.Screen, v viewport) {
	for row := range v.h {
		y := (float64(row) + 0.5) / v.sy
		s, ok := g.world.SliceAt(y)
		if !ok {
			continue
		}
		for col := range v.w {
			x := (float64(col) + 0.5) / v.sx
			switch {
			case x < s.Left || x > s.Right:
				dst.SetColored(v.x0+col, v.y0+row, BankChar, landColor)
			case s.HasIsland && x >= s.Island.Left && x <= s.Island.Right:
				dst.SetColored(v.x0+col, v.y0+row, IslandChar, landColor)
			}
		}
	}

	// Decorations sit on top of the banks.
	for _, s := range g.world.Slices() {
		for _, d := range s.Decorations {
			cx, cy := v.cell(d.X, s.Y)
			if !v.inside(cx, cy) {
				continue
			}
			if d.Kind == DecorationHouse {
				dst.SetColored(cx, cy, HouseChar, houseColor)
			} else {
				dst.SetColored(cx, cy, TreeChar, treeColor)
			}
		}
	}
}

func (g *Game) drawEntities(dst *core.Screen, v viewport) {
	for _, e := range g.world.Entities() {
		x, y, w, h := v.cells(e.Rect())
		if w <= 0 || h <= 0 {
			continue
		}
		dst.FillRect(x, y, w, h, entityGlyph(e), g.palette.forKind(e.Kind))
	}
}

func entityGlyph(e Entity) rune {
	switch e.Kind {
	case KindVessel:
		return VesselChar
	case KindRotary:
		return RotaryChar
	case KindFixedWing:
		if e.VX < 0 {
			return JetLeftChar
		}
		return JetRightChar
	case KindDepot:
		return DepotChar
	case KindBridge:
		return BridgeChar
	default:
		return '?'
	}
}

func (g *Game) drawProjectiles(dst *core.Screen, v viewport) {
	for _, p := range g.world.Projectiles() {
		cx, cy := v.cell(p.X, p.Y)
		if v.inside(cx, cy) {
			dst.SetColored(cx, cy, ProjectileChar, projectileColor)
		}
	}
}

func (g *Game) drawCraft(dst *core.Screen, v viewport) {
	x, y, w, h := v.cells(g.player.Rect())
	dst.FillRect(x, y, w, h, CraftChar, craftColor)
}

func (g *Game) drawParticles(dst *core.Screen, v viewport) {
	for _, p := range g.particles.All() {
		cx, cy := v.cell(p.X, p.Y)
		if v.inside(cx, cy) {
			dst.SetColored(cx, cy, ParticleChar, p.Color)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Lives: %d  Level: %d  Speed: %.1f ",
		g.player.Score, g.player.Lives, g.level, g.player.Speed)
	dst.DrawText(0, 0, hud, hudColor)
}

func (g *Game) drawFuelGauge(dst *core.Screen) {
	y := dst.Height() - 1
	label := " Fuel E "
	barW := dst.Width() - len(label) - 3
	if barW <= 0 {
		return
	}

	ratio := 0.0
	if g.cfg.Fuel.Max > 0 {
		ratio = core.ClampF(g.player.Fuel/g.cfg.Fuel.Max, 0, 1)
	}
	filled := int(math.Round(ratio * float64(barW)))

	c := core.ColorBrightGreen
	switch {
	case ratio < 0.25:
		c = core.ColorBrightRed
	case ratio < 0.5:
		c = core.ColorBrightYellow
	}

	dst.DrawText(0, y, label, hudColor)
	dst.DrawText(len(label), y, strings.Repeat(string(GaugeFull), filled), c)
	dst.DrawText(len(label)+filled, y, strings.Repeat(string(GaugeEmpty), barW-filled), core.ColorGray)
	dst.DrawText(len(label)+barW, y, " F ", hudColor)
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := min(width+4, dst.Width())
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	dst.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(x, y, boxW, boxH, core.ColorBrightWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(y+1+i, l, c)
	}
}
