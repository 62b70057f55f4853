package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color are emitted as a single styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Default world units covered by one terminal cell. Rows are taller than
// columns are wide, so a row spans twice the distance.
const (
	unitsPerCol = 8.0
	unitsPerRow = 16.0
)

// Camera projects world coordinates onto a grid of terminal cells,
// centered on a world point.
type Camera struct {
	Center core.Vec2
	UnitsX float64 // World units per column
	UnitsY float64 // World units per row
	Cols   int
	Rows   int
}

// NewCamera creates a camera for a viewport of cols x rows cells.
func NewCamera(cols, rows int) Camera {
	return Camera{UnitsX: unitsPerCol, UnitsY: unitsPerRow, Cols: cols, Rows: rows}
}

// Project returns the cell for a world point and whether it is on screen.
func (c Camera) Project(p core.Vec2) (x, y int, ok bool) {
	x = int(math.Floor((p.X-c.Center.X)/c.UnitsX)) + c.Cols/2
	y = int(math.Floor((p.Y-c.Center.Y)/c.UnitsY)) + c.Rows/2
	ok = x >= 0 && x < c.Cols && y >= 0 && y < c.Rows
	return x, y, ok
}

// World returns the world point at the center of a cell.
func (c Camera) World(x, y int) core.Vec2 {
	return core.Vec2{
		X: c.Center.X + (float64(x-c.Cols/2)+0.5)*c.UnitsX,
		Y: c.Center.Y + (float64(y-c.Rows/2)+0.5)*c.UnitsY,
	}
}

// DrawWorld renders a snapshot into the screen through the camera.
// Later layers overwrite earlier ones: ground, orbs, enemies, projectiles,
// the player and then floating texts.
func DrawWorld(s *core.Screen, snap sim.Snapshot, cam Camera) {
	s.Clear()

	for y := range cam.Rows {
		for x := range cam.Cols {
			p := cam.World(x, y)
			if p.X < 0 || p.Y < 0 || p.X > snap.Width || p.Y > snap.Height {
				s.SetColored(x, y, '░', core.ColorGray)
			}
		}
	}

	for _, d := range snap.Decorations {
		r, c := decorationGlyph(d)
		plot(s, cam, d.Pos, r, c)
	}
	for _, o := range snap.Orbs {
		if o.IsBossDrop {
			plot(s, cam, o.Pos, '◆', core.ColorBrightYellow)
		} else {
			plot(s, cam, o.Pos, '◆', core.ColorBrightCyan)
		}
	}
	for _, e := range snap.Enemies {
		r, c := enemyGlyph(e)
		plot(s, cam, e.Pos, r, c)
	}
	for _, pr := range snap.Projectiles {
		r, c := projectileGlyph(pr)
		plot(s, cam, pr.Pos, r, c)
	}

	plot(s, cam, snap.Player.Pos, '@', core.ColorBrightYellow)

	for _, t := range snap.Texts {
		x, y, ok := cam.Project(t.Pos)
		if !ok {
			continue
		}
		s.DrawTextColored(x-utf8.RuneCountInString(t.Text)/2, y, t.Text, t.Color)
	}
}

func plot(s *core.Screen, cam Camera, p core.Vec2, r rune, c core.Color) {
	if x, y, ok := cam.Project(p); ok {
		s.SetColored(x, y, r, c)
	}
}

func decorationGlyph(d sim.Decoration) (rune, core.Color) {
	switch d.Kind {
	case sim.DecorPillar:
		return '█', core.ColorGray
	case sim.DecorRock:
		return '▪', core.ColorGray
	case sim.DecorFlower:
		return '*', core.ColorMagenta
	default:
		return '"', core.ColorGreen
	}
}

// enemyGlyph picks the glyph by kind and tints it by status. Freeze shows
// over burn.
func enemyGlyph(e sim.Enemy) (rune, core.Color) {
	r, c := 'o', core.ColorGreen
	switch e.Kind {
	case sim.KindBoss:
		r, c = 'B', core.ColorBrightRed
	case sim.KindBat:
		r, c = 'v', core.ColorMagenta
	}
	switch {
	case e.FreezeTimer > 0:
		c = core.ColorBrightCyan
	case e.BurnTimer > 0:
		c = core.ColorOrange
	}
	return r, c
}

func projectileGlyph(p sim.Projectile) (rune, core.Color) {
	if p.Kind == sim.ProjectileMeteor {
		return '☄', core.ColorOrange
	}
	switch p.Effect {
	case sim.EffectBurn:
		return '•', core.ColorOrange
	case sim.EffectFreeze:
		return '•', core.ColorBrightCyan
	default:
		return '•', core.ColorBrightWhite
	}
}
