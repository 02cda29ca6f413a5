package world

import (
	"math/rand/v2"
	"testing"

	"github.com/samdwyer/embercrypt/internal/entity"
	"github.com/samdwyer/embercrypt/internal/gamedata"
)

func newTestGenerator(t *testing.T, seed uint64) (*Generator, *entity.Catalog) {
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
	rng := rand.New(rand.NewPCG(seed, 0))
	return NewGenerator(DefaultGeneratorConfig(), catalog, tables, rng), catalog
}

// openMap returns a width x height map whose border is wall and inside is floor.
func openMap(width, height int) *Map {
	m := NewMap(width, height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			m.SetTile(x, y, TileFloor)
		}
	}
	return m
}
