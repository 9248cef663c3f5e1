package dash

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dash-runner/internal/core"
	"github.com/vovakirdan/dash-runner/internal/games/dash/sim"
)

// Visual characters for rendering
const (
	MoverChar  = '█'
	HazardChar = '▲'
	SolidChar  = '▓'
	GroundChar = '═'
	DirtChar   = '░'
)

// viewport maps virtual pixels onto screen cells. Row 0 is the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(snap sim.Snapshot, dst *core.Screen) viewport {
	rows := dst.Height() - 1
	return viewport{
		sx:  float64(dst.Width()) / snap.ViewportW,
		sy:  float64(rows) / snap.ViewportH,
		top: 1,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Round(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Round(y*v.sy))
}

// cells converts a pixel rectangle to cells. Edges are rounded so that
// shapes resting on the floor end just above the ground line; anything
// visible is at least one cell in each direction.
func (v viewport) cells(r core.RectF) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil || dst.Height() < 2 {
		return
	}
	RenderSnapshot(dst, g.session.Snapshot())
}

// RenderSnapshot draws a snapshot scaled to the screen.
func RenderSnapshot(dst *core.Screen, snap sim.Snapshot) {
	v := newViewport(snap, dst)

	floor := v.row(snap.FloorY)
	dst.DrawHLine(0, floor, dst.Width(), GroundChar, core.ColorGray)
	for y := floor + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), DirtChar, core.ColorDarkGray)
	}

	for _, o := range snap.Objects {
		drawObject(dst, v, o)
	}

	mover := v.cells(snap.Mover)
	moverColor := core.ColorBrightYellow
	if snap.Phase == sim.GameOver {
		moverColor = core.ColorRed
	}
	dst.FillRect(mover, MoverChar, moverColor)

	drawHUD(dst, snap)

	switch snap.Phase {
	case sim.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case sim.GameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("%s  |  Score: %d  |  Press R to restart", CauseText(snap.Cause), snap.Score))
	}
}

func drawObject(dst *core.Screen, v viewport, o sim.ObjectView) {
	r := v.cells(o.Rect)
	switch o.Kind {
	case sim.Solid:
		c := core.ColorBlue
		if o.Passed {
			c = core.ColorGray
		}
		dst.FillRect(r, SolidChar, c)
	case sim.Hazard:
		c := core.ColorBrightRed
		if o.Passed {
			c = core.ColorGray
		}
		dst.FillRect(r, HazardChar, c)
	}
}

func drawHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	right := fmt.Sprintf(" Best: %d  Spd: %.0f ", snap.Best, snap.ScrollSpeed)
	if snap.Cleared > 0 {
		right = fmt.Sprintf(" Cleared: %d ", snap.Cleared) + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-2, 0, right, core.ColorCyan)
}

// CauseText describes why a run ended, for game over screens.
func CauseText(c sim.EndCause) string {
	switch c {
	case sim.CauseCrash:
		return "Crashed into a block"
	case sim.CauseOutOfBounds:
		return "Fell out of the world"
	default:
		return "Hit a spike"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	titleX := box.X + (boxW-len([]rune(title)))/2
	dst.DrawTextColored(titleX, box.Y+1, title, core.ColorBrightYellow)

	subtitleX := box.X + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(subtitleX, box.Y+3, subtitle)
}
