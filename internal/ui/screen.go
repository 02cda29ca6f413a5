// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// baseStyle is the background every frame starts from.
var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// Screen is the drawing surface the renderer targets. It adds text and
// box primitives on top of a tcell.Screen.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens the terminal.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s)
}

// Wrap initializes an existing tcell screen, such as a simulation screen
// in tests.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(baseStyle)
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks for the next key or resize. It returns nil once the
// screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear resets the back buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the back buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync repaints everything after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Size returns the terminal dimensions in cells.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// SetContent sets one cell.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes text left to right from x, y and returns the number of
// cells used. Text is not wrapped.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	n := 0
	for _, ch := range text {
		s.screen.SetContent(x+n, y, ch, nil, style)
		n++
	}
	return n
}

// DrawCentered writes text centered on row y.
func (s *Screen) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := s.screen.Size()
	x := (w - len([]rune(text))) / 2
	s.DrawText(max(x, 0), y, text, style)
}

// DrawBox outlines a w x h rectangle at x, y with ASCII borders and fills
// its inside with blanks.
func (s *Screen) DrawBox(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			top, bottom := row == y, row == y+h-1
			left, right := col == x, col == x+w-1
			ch := ' '
			switch {
			case (top || bottom) && (left || right):
				ch = '+'
			case top || bottom:
				ch = '-'
			case left || right:
				ch = '|'
			}
			s.screen.SetContent(col, row, ch, nil, style)
		}
	}
}
