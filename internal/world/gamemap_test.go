package world

import (
	"testing"

	"github.com/samdwyer/embercrypt/internal/entity"
)

func TestMapSpatialQueries(t *testing.T) {
	_, c := newTestGenerator(t, 1)
	m := openMap(10, 10)

	imp := c.MustSpawn("imp")
	imp.Place(3, 3)
	potion := c.MustSpawn("health_potion")
	potion.Place(3, 3)
	corpse := c.MustSpawn("vampire")
	corpse.Place(5, 5)
	corpse.TakeDamage(1000)

	m.Add(potion)
	m.Add(imp)
	m.Add(corpse)

	if got := m.BlockingEntityAt(3, 3); got != imp {
		t.Errorf("BlockingEntityAt(3,3) = %v, want imp", got)
	}
	if got := m.BlockingEntityAt(5, 5); got != nil {
		t.Errorf("BlockingEntityAt(5,5) = %v, want nil for corpse", got)
	}
	if got := m.ActorAt(5, 5); got != nil {
		t.Errorf("ActorAt(5,5) = %v, want nil for corpse", got)
	}
	if got := m.ItemAt(3, 3); got != potion {
		t.Errorf("ItemAt(3,3) = %v, want potion", got)
	}
	if got := len(m.Actors()); got != 1 {
		t.Errorf("len(Actors()) = %d, want 1", got)
	}

	ordered := m.RenderOrdered()
	want := []*entity.Entity{corpse, potion, imp}
	for i := range want {
		if ordered[i] != want[i] {
			t.Errorf("RenderOrdered()[%d] = %s, want %s", i, ordered[i].Name, want[i].Name)
		}
	}

	if !m.Remove(potion) || m.Contains(potion) {
		t.Error("Remove() did not take the item off the map")
	}
	if potion.Location.Kind != entity.Nowhere {
		t.Errorf("removed item location = %v, want Nowhere", potion.Location.Kind)
	}
	if m.Remove(potion) {
		t.Error("Remove() of absent entity = true")
	}
}

func TestInBounds(t *testing.T) {
	m := NewMap(5, 4)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {4, 3, true}, {5, 0, false}, {0, 4, false}, {-1, 2, false},
	}
	for _, tt := range tests {
		if got := m.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if m.TileAt(-1, -1) != TileWall {
		t.Error("TileAt() out of bounds should read as wall")
	}
}
