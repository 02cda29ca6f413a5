package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/embercrypt/internal/view"
)

const (
	panelGap    = 1  // Rows between map and panel
	barWidth    = 20 // HP bar cells
	logMaxLines = 5
)

// Renderer handles drawing frames to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a complete frame.
func (r *Renderer) Render(f *view.Frame) {
	r.screen.Clear()

	if f.Menu != nil {
		r.renderMenu(f.Menu)
		r.screen.Show()
		return
	}

	r.renderMap(f)
	r.renderPanel(f)
	if f.Overlay != nil {
		r.renderOverlay(f.Overlay)
	}
	r.screen.Show()
}

// renderMap draws tiles, then sprites, then the targeting cursor.
func (r *Renderer) renderMap(f *view.Frame) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			g := f.CellAt(x, y)
			style := tcell.StyleDefault.Foreground(g.Fg).Background(g.Bg)
			r.screen.SetContent(x, y, g.Rune, style)
		}
	}

	for _, s := range f.Sprites {
		bg := f.CellAt(s.X, s.Y).Bg
		r.screen.SetContent(s.X, s.Y, s.Rune, tcell.StyleDefault.Foreground(s.Color).Background(bg))
	}

	if c := f.Cursor; c != nil {
		for y := c.Y - c.Radius; y <= c.Y+c.Radius; y++ {
			for x := c.X - c.Radius; x <= c.X+c.Radius; x++ {
				dx, dy := x-c.X, y-c.Y
				if dx*dx+dy*dy > c.Radius*c.Radius || x < 0 || y < 0 || x >= f.Width || y >= f.Height {
					continue
				}
				r.highlight(f, x, y)
			}
		}
	}
}

// highlight redraws a map cell with inverted colors.
func (r *Renderer) highlight(f *view.Frame, x, y int) {
	g := f.CellAt(x, y)
	ch := g.Rune
	for _, s := range f.Sprites {
		if s.X == x && s.Y == y {
			ch = s.Rune
		}
	}
	r.screen.SetContent(x, y, ch, tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(colorCursor))
}

// renderPanel draws the HP bar, status lines, look text and message log.
func (r *Renderer) renderPanel(f *view.Frame) {
	top := f.Height + panelGap
	s := f.Status

	filled := 0
	if s.MaxHP > 0 {
		filled = s.HP * barWidth / s.MaxHP
	}
	for i := 0; i < barWidth; i++ {
		bg := colorBarEmpty
		if i < filled {
			bg = colorBarFilled
		}
		r.screen.SetContent(i, top, ' ', tcell.StyleDefault.Background(bg))
	}
	r.screen.DrawText(1, top, s.HPText, tcell.StyleDefault.Foreground(colorWhite).Background(colorBarFilled))
	r.screen.DrawText(0, top+1, s.LevelText, tcell.StyleDefault.Foreground(colorWhite))
	r.screen.DrawText(0, top+2, s.FloorText, tcell.StyleDefault.Foreground(colorWhite))
	r.screen.DrawText(0, top+3, f.Look, tcell.StyleDefault.Foreground(colorWhite))

	logX := barWidth + 2
	msgs := f.Messages
	if len(msgs) > logMaxLines {
		msgs = msgs[len(msgs)-logMaxLines:]
	}
	for i, line := range msgs {
		r.screen.DrawText(logX, top+i, line.Display(), tcell.StyleDefault.Foreground(ToneColor(line.Tone)))
	}
}

// renderOverlay draws a boxed modal in the top-left corner of the map.
func (r *Renderer) renderOverlay(o *view.Overlay) {
	width := len([]rune(o.Title)) + 4
	for _, l := range o.Lines {
		width = max(width, len([]rune(l))+4)
	}
	height := len(o.Lines) + 2
	x0, y0 := 1, 1

	box := tcell.StyleDefault.Foreground(colorWhite).Background(tcell.ColorBlack)
	r.screen.DrawBox(x0, y0, width, height, box)
	r.screen.DrawText(x0+2, y0, o.Title, box.Bold(true))
	for i, l := range o.Lines {
		r.screen.DrawText(x0+2, y0+1+i, l, box)
	}
}

// renderMenu draws the title screen centered on the terminal.
func (r *Renderer) renderMenu(m *view.Menu) {
	_, h := r.screen.Size()
	y := h/2 - 4
	r.screen.DrawCentered(y, m.Title, tcell.StyleDefault.Foreground(colorMenuTitle).Bold(true))
	r.screen.DrawCentered(y+1, m.Subtitle, tcell.StyleDefault.Foreground(colorMenuTitle))
	for i, opt := range m.Options {
		fg := colorWhite
		if opt.Disabled {
			fg = colorDimmed
		}
		r.screen.DrawCentered(y+3+i, opt.Label, tcell.StyleDefault.Foreground(fg))
	}
	y += 4 + len(m.Options)
	if m.Notice != "" {
		r.screen.DrawCentered(y, m.Notice, tcell.StyleDefault.Foreground(ToneColor(view.ToneError)))
	}
	for i, line := range m.History {
		r.screen.DrawCentered(y+2+i, line, tcell.StyleDefault.Foreground(colorDimmed))
	}
}
