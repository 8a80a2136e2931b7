package egghunt

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/egghunt/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	ChickChar      = 'o'
	EggChar        = '0'
	HitChar        = '*'
	RocketChar     = '|'
	BurstCoreChar  = '*'
	BurstSparkChar = '+'
)

// bossSprite is drawn centered on the boss.
var bossSprite = [3]string{
	`\^/`,
	`<@>`,
	`/v\`,
}

// Minimum screen size for a readable playfield
const (
	minScreenW = 40
	minScreenH = 14
	hudRows    = 2
)

// lawn caches the grass texture for one screen size.
type lawn struct {
	noise *perlin.Perlin
	w, h  int
	cells [][]rune
}

func newLawn(seed int64) *lawn {
	return &lawn{noise: perlin.NewPerlin(2.0, 2.0, 3, seed)}
}

// grass returns the lawn glyph for noise value n in [-1, 1].
func grass(n float64) rune {
	switch {
	case n < -0.15:
		return ' '
	case n < 0.1:
		return '.'
	case n < 0.3:
		return ','
	default:
		return '"'
	}
}

// texture returns lawn glyphs for a w x h field, sampling noise at the
// world position under each cell.
func (l *lawn) texture(w, h int, world *World) [][]rune {
	if l.cells != nil && l.w == w && l.h == h {
		return l.cells
	}
	l.w, l.h = w, h
	l.cells = make([][]rune, h)
	for y := 0; y < h; y++ {
		l.cells[y] = make([]rune, w)
		for x := 0; x < w; x++ {
			wx := (float64(x) + 0.5) / float64(w) * world.Width()
			wy := (float64(y) + 0.5) / float64(h) * world.Height()
			l.cells[y][x] = grass(l.noise.Noise2D(wx/96, wy/96))
		}
	}
	return l.cells
}

// field maps world coordinates to screen cells below the HUD.
type field struct {
	w, h  int
	world *World
}

func (f field) cell(p core.Vec2) (int, int) {
	x := int(p.X / f.world.Width() * float64(f.w))
	y := int(p.Y/f.world.Height()*float64(f.h)) + hudRows
	return x, y
}

// Render draws the game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderTooSmall(dst)
		return
	}

	f := field{w: dst.Width(), h: dst.Height() - hudRows, world: g.world}

	g.renderLawn(dst, f)
	g.renderFence(dst, f)
	g.renderEffects(dst, f)
	g.renderChicks(dst, f)
	g.renderProjectiles(dst, f)
	g.renderBoss(dst, f)
	g.renderPlayer(dst, f)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// renderTooSmall shows a message when the terminal is too small.
func (g *Game) renderTooSmall(dst *core.Screen) {
	dst.DrawTextCentered(dst.Height()/2-1, "Screen too small!")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

func (g *Game) renderLawn(dst *core.Screen, f field) {
	cells := g.lawn.texture(f.w, f.h, g.world)
	for y, row := range cells {
		for x, r := range row {
			dst.SetColored(x, y+hudRows, r, core.ColorGreen)
		}
	}
}

// renderFence outlines the collision bounds.
func (g *Game) renderFence(dst *core.Screen, f field) {
	b := g.world.Bounds()
	x0, y0 := f.cell(core.V(b.X, b.Y))
	x1, y1 := f.cell(core.V(b.Right(), b.Bottom()))
	dst.DrawBox(core.NewRect(x0, y0, x1-x0+1, y1-y0+1))
}

func (g *Game) renderEffects(dst *core.Screen, f field) {
	for _, e := range g.effects.List() {
		phase := g.effects.Phase(e, g.now)
		x, y := f.cell(g.effects.Position(e, g.now))
		switch {
		case e.Kind == EffectHit && phase == PhaseBursting:
			dst.SetColored(x, y, HitChar, core.ColorOrange)
		case e.Kind == EffectFirework && phase == PhaseRising:
			dst.SetColored(x, y, RocketChar, core.ColorBrightMagenta)
		case e.Kind == EffectFirework && phase == PhaseBursting:
			dst.SetColored(x, y, BurstCoreChar, core.ColorBrightMagenta)
			dst.SetColored(x-1, y, BurstSparkChar, core.ColorMagenta)
			dst.SetColored(x+1, y, BurstSparkChar, core.ColorMagenta)
			dst.SetColored(x, y-1, BurstSparkChar, core.ColorMagenta)
			dst.SetColored(x, y+1, BurstSparkChar, core.ColorMagenta)
		}
	}
}

func (g *Game) renderChicks(dst *core.Screen, f field) {
	for _, c := range g.pool.Active() {
		x, y := f.cell(c.Pos)
		dst.SetColored(x, y, ChickChar, core.ColorBrightYellow)
	}
}

func (g *Game) renderProjectiles(dst *core.Screen, f field) {
	for _, p := range g.projectiles.Active() {
		x, y := f.cell(p.Pos)
		dst.SetColored(x, y, EggChar, core.ColorBrightWhite)
	}
}

// renderBoss draws the boss sprite; rows above the field are clipped.
func (g *Game) renderBoss(dst *core.Screen, f field) {
	boss := g.encounter.Boss()
	if boss == nil {
		return
	}
	cx, cy := f.cell(boss.Pos)
	for i, row := range bossSprite {
		y := cy - 1 + i
		if y < hudRows {
			continue
		}
		dst.DrawTextColored(cx-1, y, row, core.ColorBrightMagenta)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, f field) {
	p := g.player.Entity()
	x, y := f.cell(p.Pos)
	dst.SetColored(x, y, PlayerChar, core.ColorBrightCyan)

	// Facing marker
	v := p.Facing.Vector()
	dst.SetColored(x+int(v.X), y+int(v.Y), facingChar(p.Facing), core.ColorCyan)
}

func facingChar(f Facing) rune {
	switch f {
	case FacingUp:
		return '^'
	case FacingLeft:
		return '<'
	case FacingRight:
		return '>'
	default:
		return 'v'
	}
}

// renderHUD draws the score line and the encounter status line.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	chicksText := fmt.Sprintf("Chicks: %d/%d", g.pool.ActiveCount(), g.pool.Max())
	dst.DrawTextCentered(0, chicksText)

	timeText := fmt.Sprintf("%.1fs", g.now.Seconds())
	dst.DrawText(dst.Width()-len(timeText)-1, 0, timeText)

	var status string
	switch g.encounter.State() {
	case StateHunting:
		status = "Hunt the chicks!  WASD/arrows move, SPACE throws"
	case StateBossSpawning:
		status = "Something big is coming..."
	case StateBossActive:
		status = "The legendary chick! Throw!"
	case StateCelebrating:
		status = "Happy Easter!"
	}
	dst.DrawTextColored(1, 1, status, core.ColorGray)
}

// renderOverlay draws pause and win messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.won:
		subtitle := fmt.Sprintf("Score: %d in %.1fs  |  Press R to restart", g.score, g.clearedAt.Seconds())
		g.drawCenteredBox(dst, "HUNT CLEARED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
