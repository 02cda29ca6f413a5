// Package world provides dungeon generation and map management.
package world

import "github.com/gdamore/tcell/v2"

// TileKind identifies a tile in the static tile table.
type TileKind uint8

const (
	// TileWall is an impassable, opaque tile.
	TileWall TileKind = iota
	// TileFloor is a passable, transparent tile.
	TileFloor
	// TileDownStairs leads to the next floor.
	TileDownStairs
)

// Glyph is a character with foreground and background colors.
type Glyph struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Tile holds the static attributes shared by every tile of a kind.
type Tile struct {
	Walkable    bool
	Transparent bool
	Dark        Glyph // Explored but not in view
	Light       Glyph // In view
}

var (
	darkBg  = tcell.NewRGBColor(16, 30, 50)
	lightBg = tcell.NewRGBColor(48, 40, 24)
	darkFg  = tcell.NewRGBColor(100, 100, 100)
	lightFg = tcell.NewRGBColor(210, 210, 210)
)

// Shroud is drawn for cells that were never seen.
var Shroud = Glyph{Rune: ' ', Fg: tcell.ColorWhite, Bg: tcell.ColorBlack}

var tiles = [...]Tile{
	TileWall: {
		Walkable:    false,
		Transparent: false,
		Dark:        Glyph{Rune: '#', Fg: darkFg, Bg: darkBg},
		Light:       Glyph{Rune: '#', Fg: tcell.NewRGBColor(180, 140, 90), Bg: lightBg},
	},
	TileFloor: {
		Walkable:    true,
		Transparent: true,
		Dark:        Glyph{Rune: '.', Fg: darkFg, Bg: darkBg},
		Light:       Glyph{Rune: '.', Fg: lightFg, Bg: lightBg},
	},
	TileDownStairs: {
		Walkable:    true,
		Transparent: true,
		Dark:        Glyph{Rune: '>', Fg: darkFg, Bg: darkBg},
		Light:       Glyph{Rune: '>', Fg: tcell.ColorWhite, Bg: lightBg},
	},
}

// Tile returns the static attributes of the kind.
func (k TileKind) Tile() Tile {
	if int(k) >= len(tiles) {
		return tiles[TileWall]
	}
	return tiles[k]
}

// Walkable reports whether actors can stand on the tile.
func (k TileKind) Walkable() bool {
	return k.Tile().Walkable
}

// Transparent reports whether the tile lets light through.
func (k TileKind) Transparent() bool {
	return k.Tile().Transparent
}

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileDownStairs:
		return "downstairs"
	default:
		return "unknown"
	}
}
