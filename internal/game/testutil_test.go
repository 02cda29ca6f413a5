package game

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/samdwyer/embercrypt/internal/entity"
	"github.com/samdwyer/embercrypt/internal/gamedata"
	"github.com/samdwyer/embercrypt/internal/i18n"
	"github.com/samdwyer/embercrypt/internal/random"
	"github.com/samdwyer/embercrypt/internal/view"
	"github.com/samdwyer/embercrypt/internal/world"
)

// newTestEngine returns an engine with a started run on a generated floor.
func newTestEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	e := newIdleEngine(t, seed)
	if err := e.NewGame(context.Background()); err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return e
}

// newIdleEngine returns a wired engine without a run.
func newIdleEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	reg, err := gamedata.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	catalog, err := entity.NewCatalog(reg)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	tables, err := gamedata.LoadTables()
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	src, err := random.New(seed)
	if err != nil {
		t.Fatalf("random.New() error = %v", err)
	}
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.SavePath = t.TempDir() + "/test.sav"
	return NewEngine(cfg, catalog, tables, bundle.Translator("en"), src, zerolog.Nop())
}

// useArena swaps the generated floor for a 12x12 open room with the player
// at (2, 2) and the stairs at (9, 9). Everything else is left to the test.
func useArena(t *testing.T, e *Engine) {
	t.Helper()
	m := world.NewMap(12, 12)
	for y := 1; y < 11; y++ {
		for x := 1; x < 11; x++ {
			m.SetTile(x, y, world.TileFloor)
		}
	}
	m.SetTile(9, 9, world.TileDownStairs)
	m.Downstairs = world.Point{X: 9, Y: 9}

	e.Map = m
	e.Player.Place(2, 2)
	m.Add(e.Player)
	e.updateFOV()
}

// spawnAt places a fresh copy of template id at x, y on the current floor.
func spawnAt(t *testing.T, e *Engine, id string, x, y int) *entity.Entity {
	t.Helper()
	ent, err := e.catalog.Spawn(id)
	if err != nil {
		t.Fatalf("Spawn(%q) error = %v", id, err)
	}
	ent.Place(x, y)
	e.Map.Add(ent)
	return ent
}

// give puts a fresh item straight into the player's inventory.
func give(t *testing.T, e *Engine, id string) *entity.Entity {
	t.Helper()
	item, err := e.catalog.Spawn(id)
	if err != nil {
		t.Fatalf("Spawn(%q) error = %v", id, err)
	}
	if err := e.Player.Carry(item); err != nil {
		t.Fatalf("Carry(%q) error = %v", id, err)
	}
	return item
}

// lastMessage returns the newest log line, or an empty line.
func lastMessage(e *Engine) view.Line {
	lines := e.Messages.Lines()
	if len(lines) == 0 {
		return view.Line{}
	}
	return lines[len(lines)-1]
}

// logTexts returns the log as displayed, oldest first.
func logTexts(e *Engine) []string {
	var out []string
	for _, line := range e.Messages.Lines() {
		out = append(out, line.Display())
	}
	return out
}
