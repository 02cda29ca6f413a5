// Package view defines the read-only frame the engine hands to the renderer.
// Everything in a Frame is already resolved: tile glyphs reflect visibility
// and all text is translated.
package view

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/embercrypt/internal/world"
)

// Tone tags a message so the renderer can pick its color.
type Tone int

const (
	ToneNormal Tone = iota
	ToneWelcome
	ToneImpossible
	ToneError
	TonePlayerAttack
	ToneEnemyAttack
	TonePlayerDeath
	ToneEnemyDeath
	ToneHeal
	ToneStatus
	ToneDescend
	ToneLevelUp
	ToneVictory
)

// Line is one message log entry.
type Line struct {
	Key    string         // Translation key; empty for raw text
	Params map[string]any // Placeholder values for Key
	Text   string
	Tone   Tone
	Count  int // Consecutive repeats, at least 1
}

// Display returns the text with a repeat counter when stacked.
func (l Line) Display() string {
	if l.Count > 1 {
		return l.Text + " (x" + strconv.Itoa(l.Count) + ")"
	}
	return l.Text
}

// Sprite is an entity drawn on the map.
type Sprite struct {
	X, Y  int
	Rune  rune
	Color tcell.Color
}

// Status is the player summary shown under the map.
type Status struct {
	HP, MaxHP int
	HPText    string
	FloorText string
	LevelText string
}

// Cursor is the targeting reticle. Radius > 0 highlights an area.
type Cursor struct {
	X, Y   int
	Radius int
}

// Overlay is a modal panel such as the inventory or level-up choice.
type Overlay struct {
	Title string
	Lines []string
}

// MenuOption is one selectable entry on the title screen.
type MenuOption struct {
	Label    string
	Disabled bool // Drawn dimmed, as Continue without a save
}

// Menu is the title screen.
type Menu struct {
	Title    string
	Subtitle string
	Options  []MenuOption
	Notice   string   // Feedback such as a failed load
	History  []string // Recent runs, newest first
}

// Frame is everything the renderer needs for one redraw.
// When Menu is set the map fields are empty.
type Frame struct {
	Width, Height int
	Cells         []world.Glyph // Row-major, Width*Height
	Sprites       []Sprite      // Drawn in order
	Status        Status
	Messages      []Line // Oldest first
	Look          string // Names under the mouse or cursor
	Cursor        *Cursor
	Overlay       *Overlay
	Menu          *Menu
}

// CellAt returns the glyph at x, y.
func (f *Frame) CellAt(x, y int) world.Glyph {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return world.Shroud
	}
	return f.Cells[y*f.Width+x]
}
