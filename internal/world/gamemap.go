package world

import (
	"slices"

	"github.com/samdwyer/embercrypt/internal/entity"
)

// Map is one floor: the tile grid, visibility state and the entities
// placed on it. Every visible cell is also explored.
type Map struct {
	Width  int
	Height int

	tiles    []TileKind
	visible  []bool
	explored []bool

	// Downstairs is the single stairwell location.
	Downstairs Point

	entities []*entity.Entity
}

// NewMap creates a map filled with walls.
func NewMap(width, height int) *Map {
	n := width * height
	return &Map{
		Width:    width,
		Height:   height,
		tiles:    make([]TileKind, n), // TileWall is the zero value
		visible:  make([]bool, n),
		explored: make([]bool, n),
	}
}

func (m *Map) index(x, y int) int {
	return y*m.Width + x
}

// InBounds reports whether x, y lies inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the tile kind at x, y. Out-of-bounds cells read as wall.
func (m *Map) TileAt(x, y int) TileKind {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.tiles[m.index(x, y)]
}

// SetTile changes the tile kind at x, y.
func (m *Map) SetTile(x, y int, kind TileKind) {
	if m.InBounds(x, y) {
		m.tiles[m.index(x, y)] = kind
	}
}

// IsWalkable reports whether x, y is in bounds and walkable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.TileAt(x, y).Walkable()
}

// IsTransparent reports whether x, y is in bounds and lets light through.
func (m *Map) IsTransparent(x, y int) bool {
	return m.InBounds(x, y) && m.TileAt(x, y).Transparent()
}

// IsVisible reports whether x, y is currently in view.
func (m *Map) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.visible[m.index(x, y)]
}

// IsExplored reports whether x, y has ever been seen.
func (m *Map) IsExplored(x, y int) bool {
	return m.InBounds(x, y) && m.explored[m.index(x, y)]
}

// MarkExplored flags x, y as seen. Used when restoring a saved floor.
func (m *Map) MarkExplored(x, y int) {
	if m.InBounds(x, y) {
		m.explored[m.index(x, y)] = true
	}
}

// ============================================================================
// Entity registry
// ============================================================================

// Entities returns the entities on this floor in insertion order.
func (m *Map) Entities() []*entity.Entity {
	return m.entities
}

// Add places e on this floor at its current coordinates.
func (m *Map) Add(e *entity.Entity) {
	if slices.Contains(m.entities, e) {
		return
	}
	e.Location = entity.Location{Kind: entity.OnMap}
	m.entities = append(m.entities, e)
}

// Remove takes e off this floor. It reports whether e was present.
func (m *Map) Remove(e *entity.Entity) bool {
	i := slices.Index(m.entities, e)
	if i < 0 {
		return false
	}
	m.entities = slices.Delete(m.entities, i, i+1)
	if e.Location.Kind == entity.OnMap {
		e.Location = entity.Location{}
	}
	return true
}

// Contains reports whether e is on this floor.
func (m *Map) Contains(e *entity.Entity) bool {
	return slices.Contains(m.entities, e)
}

// EntitiesAt returns every entity at x, y.
func (m *Map) EntitiesAt(x, y int) []*entity.Entity {
	var out []*entity.Entity
	for _, e := range m.entities {
		if e.X == x && e.Y == y {
			out = append(out, e)
		}
	}
	return out
}

// BlockingEntityAt returns the first movement-blocking entity at x, y.
func (m *Map) BlockingEntityAt(x, y int) *entity.Entity {
	for _, e := range m.entities {
		if e.BlocksMovement && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// ActorAt returns the first living actor at x, y.
func (m *Map) ActorAt(x, y int) *entity.Entity {
	for _, e := range m.entities {
		if e.IsAlive() && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// Actors returns the living actors in insertion order.
func (m *Map) Actors() []*entity.Entity {
	var out []*entity.Entity
	for _, e := range m.entities {
		if e.IsAlive() {
			out = append(out, e)
		}
	}
	return out
}

// Items returns the items lying on this floor.
func (m *Map) Items() []*entity.Entity {
	var out []*entity.Entity
	for _, e := range m.entities {
		if e.IsItem() {
			out = append(out, e)
		}
	}
	return out
}

// ItemAt returns the first item at x, y.
func (m *Map) ItemAt(x, y int) *entity.Entity {
	for _, e := range m.entities {
		if e.IsItem() && e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// RenderOrdered returns the entities sorted so that higher render orders
// come last. Ties keep insertion order.
func (m *Map) RenderOrdered() []*entity.Entity {
	out := slices.Clone(m.entities)
	slices.SortStableFunc(out, func(a, b *entity.Entity) int {
		return int(a.RenderOrder) - int(b.RenderOrder)
	})
	return out
}

// GlyphAt returns the glyph to draw for x, y given its visibility:
// light when visible, dark when only explored, shroud otherwise.
func (m *Map) GlyphAt(x, y int) Glyph {
	switch {
	case m.IsVisible(x, y):
		return m.TileAt(x, y).Tile().Light
	case m.IsExplored(x, y):
		return m.TileAt(x, y).Tile().Dark
	default:
		return Shroud
	}
}
