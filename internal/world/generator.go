package world

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/embercrypt/internal/entity"
	"github.com/samdwyer/embercrypt/internal/gamedata"
	"github.com/samdwyer/embercrypt/internal/telemetry"
)

// ErrNoRooms is returned when no room could be placed on a floor.
var ErrNoRooms = errors.New("no rooms could be placed")

// RoomShape selects the geometry of a candidate room.
type RoomShape int

const (
	ShapeRect RoomShape = iota
	ShapeCircle
	ShapeEllipse
)

// GeneratorConfig holds the floor layout parameters.
type GeneratorConfig struct {
	Width             int
	Height            int
	MaxRooms          int
	RoomMinSize       int
	RoomMaxSize       int
	MaxFloor          int    // Floor that receives the objective item
	PlacementAttempts int    // Tries per entity before it is skipped
	ShapeWeights      [3]int // Relative weights for rect, circle, ellipse
}

// DefaultGeneratorConfig returns the standard layout parameters.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Width:             64,
		Height:            39,
		MaxRooms:          30,
		RoomMinSize:       6,
		RoomMaxSize:       12,
		MaxFloor:          5,
		PlacementAttempts: 30,
		ShapeWeights:      [3]int{6, 2, 2},
	}
}

// Report describes what Generate produced.
type Report struct {
	Rooms           []Shape
	Monsters        int
	Items           int
	Skipped         int  // Entities dropped after exhausting placement attempts
	ObjectivePlaced bool // The objective item was placed on this floor
}

// Generator builds floors. All randomness comes from the shared rng so a
// seeded source reproduces the same dungeon.
type Generator struct {
	cfg     GeneratorConfig
	catalog *entity.Catalog
	tables  *gamedata.PopulationTables
	rng     *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg GeneratorConfig, catalog *entity.Catalog, tables *gamedata.PopulationTables, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, catalog: catalog, tables: tables, rng: rng}
}

// Generate carves a new floor, places the player in the first room,
// populates every room and puts the stairs in the last room's center.
// objectivePlaced tells whether the objective item already exists in this run.
func (g *Generator) Generate(ctx context.Context, floor int, player *entity.Entity, objectivePlaced bool) (*Map, Report, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()
	m := NewMap(g.cfg.Width, g.cfg.Height)
	var report Report

	for range g.cfg.MaxRooms {
		candidate := g.randomRoom()
		if g.overlapsAny(candidate, report.Rooms) {
			continue
		}

		for _, p := range candidate.Inner() {
			m.SetTile(p.X, p.Y, TileFloor)
		}

		center := candidate.Center()
		if len(report.Rooms) == 0 {
			player.Place(center.X, center.Y)
			m.Add(player)
		} else {
			prev := report.Rooms[len(report.Rooms)-1].Center()
			for _, p := range Tunnel(g.rng, prev, center) {
				m.SetTile(p.X, p.Y, TileFloor)
			}
		}

		if err := g.populate(m, candidate, floor, &report); err != nil {
			return nil, report, err
		}
		report.Rooms = append(report.Rooms, candidate)
	}

	if len(report.Rooms) == 0 {
		return nil, report, ErrNoRooms
	}
	last := report.Rooms[len(report.Rooms)-1]

	if floor == g.cfg.MaxFloor && !objectivePlaced && g.tables.ObjectiveItem != "" {
		placed, err := g.place(m, last, g.tables.ObjectiveItem)
		if err != nil {
			return nil, report, err
		}
		report.ObjectivePlaced = placed
		if !placed {
			report.Skipped++
		}
	}

	stairs := last.Center()
	m.SetTile(stairs.X, stairs.Y, TileDownStairs)
	m.Downstairs = stairs

	span.SetAttributes(
		attribute.Int("dungeon.floor", floor),
		attribute.Int("dungeon.width", m.Width),
		attribute.Int("dungeon.height", m.Height),
		attribute.Int("dungeon.room_count", len(report.Rooms)),
		attribute.Int("dungeon.monsters", report.Monsters),
		attribute.Int("dungeon.items", report.Items),
		attribute.Int("dungeon.skipped", report.Skipped),
		attribute.Bool("dungeon.objective_placed", report.ObjectivePlaced),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m, report, nil
}

// randomRoom samples a size, position and shape keeping the room in bounds.
func (g *Generator) randomRoom() Shape {
	w := g.cfg.RoomMinSize + g.rng.IntN(g.cfg.RoomMaxSize-g.cfg.RoomMinSize+1)
	h := g.cfg.RoomMinSize + g.rng.IntN(g.cfg.RoomMaxSize-g.cfg.RoomMinSize+1)
	x := g.rng.IntN(g.cfg.Width - w)
	y := g.rng.IntN(g.cfg.Height - h)

	switch g.pickShape() {
	case ShapeCircle:
		radius := (min(w, h) - 2) / 2
		return NewCircle(x, y, radius)
	case ShapeEllipse:
		return NewEllipse(x, y, w, h)
	default:
		return NewRect(x, y, w, h)
	}
}

func (g *Generator) pickShape() RoomShape {
	total := 0
	for _, w := range g.cfg.ShapeWeights {
		total += max(w, 0)
	}
	if total == 0 {
		return ShapeRect
	}
	roll := g.rng.IntN(total)
	for i, w := range g.cfg.ShapeWeights {
		roll -= max(w, 0)
		if roll < 0 {
			return RoomShape(i)
		}
	}
	return ShapeRect
}

func (g *Generator) overlapsAny(candidate Shape, rooms []Shape) bool {
	for _, r := range rooms {
		if Intersects(candidate, r) {
			return true
		}
	}
	return false
}

// populate draws monsters and items for one room from the floor tables.
func (g *Generator) populate(m *Map, room Shape, floor int, report *Report) error {
	monsterCount := g.rng.IntN(g.tables.MaxMonsters(floor) + 1)
	itemCount := g.rng.IntN(g.tables.MaxItems(floor) + 1)

	monsters := gamedata.DrawWeighted(g.rng, gamedata.ChancesForFloor(g.tables.MonsterChances, floor), monsterCount)
	items := gamedata.DrawWeighted(g.rng, gamedata.ChancesForFloor(g.tables.ItemChances, floor), itemCount)

	for _, id := range monsters {
		placed, err := g.place(m, room, id)
		if err != nil {
			return err
		}
		if placed {
			report.Monsters++
		} else {
			report.Skipped++
		}
	}
	for _, id := range items {
		placed, err := g.place(m, room, id)
		if err != nil {
			return err
		}
		if placed {
			report.Items++
		} else {
			report.Skipped++
		}
	}
	return nil
}

// place spawns id on a free tile of room. It gives up after the configured
// number of attempts and reports false.
func (g *Generator) place(m *Map, room Shape, id string) (bool, error) {
	inner := room.Inner()
	if len(inner) == 0 {
		return false, nil
	}
	for range max(g.cfg.PlacementAttempts, 1) {
		p := inner[g.rng.IntN(len(inner))]
		if len(m.EntitiesAt(p.X, p.Y)) > 0 {
			continue
		}
		e, err := g.catalog.Spawn(id)
		if err != nil {
			return false, fmt.Errorf("populate room: %w", err)
		}
		e.Place(p.X, p.Y)
		m.Add(e)
		return true, nil
	}
	return false, nil
}
