package save

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleState() *State {
	return &State{
		Version:  Version,
		RunID:    "run-1",
		Floor:    3,
		Turn:     42,
		Kills:    5,
		RNG:      []byte{1, 2, 3, 4},
		PlayerID: "p",
		Map: MapState{
			Width:       3,
			Height:      2,
			Tiles:       []uint8{0, 1, 2, 0, 1, 0},
			Explored:    []bool{false, true, true, false, true, false},
			DownstairsX: 2,
			DownstairsY: 0,
		},
		Entities: []EntityState{
			{
				ID: "p", TemplateID: "player", Name: "Player", Glyph: '@', Color: "#FFFFFF",
				X: 1, Y: 0, BlocksMovement: true, RenderOrder: 2, Location: 1,
				Fighter:   &FighterState{MaxHP: 30, HP: 12, BaseDefense: 1, BasePower: 2},
				Inventory: &InventoryState{Capacity: 26, Items: []string{"d"}},
				Equipment: []string{"d", "", ""},
				AI: &AIState{Kind: 2, TurnsRemaining: 3, Previous: &AIState{Kind: 1, HasTarget: true, TargetX: 4, TargetY: 5}},
				Level: &LevelState{Current: 2, XP: 10, LevelUpBase: 200, LevelUpFactor: 150},
			},
			{
				ID: "d", TemplateID: "dagger", Name: "Dagger", Glyph: '/', Color: "#00BFFF",
				Location: 2, HolderID: "p", RenderOrder: 1,
				Equippable: &EquippableState{Slot: 0, PowerBonus: 2},
			},
		},
		Messages: []MessageState{
			{Text: "Hello", Tone: 1, Count: 2},
			{Key: "pick_item", Params: map[string]any{"item_name": "Dagger"}, Text: "You picked up the Dagger!", Count: 1},
		},
	}
}

func TestEncodeDecodePreservesState(t *testing.T) {
	want := sampleState()
	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode(Encode(s)) = %+v, want %+v", got, want)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a, err := Encode(sampleState())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Encode(sampleState())
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Error("Encode() output differs for equal states")
	}
}

func TestDecodeRejectsOtherVersions(t *testing.T) {
	s := sampleState()
	s.Version = Version + 1
	data, err := Encode(s)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(data); !errors.Is(err, ErrVersion) {
		t.Errorf("Decode() error = %v, want ErrVersion", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("definitely not xz")); err == nil {
		t.Error("Decode(garbage) should fail")
	}
}

func TestWriteLoadDelete(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "savegame.sav")

	if _, err := Load(ctx, path); !errors.Is(err, ErrNoSave) {
		t.Fatalf("Load() on missing file error = %v, want ErrNoSave", err)
	}
	if Exists(path) {
		t.Fatal("Exists() = true before Write")
	}

	if err := Write(ctx, path, sampleState()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Load(ctx, path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Turn != 42 || len(got.Entities) != 2 {
		t.Errorf("Load() = turn %d, %d entities; want 42, 2", got.Turn, len(got.Entities))
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("save dir has %d files, want only the save (temp file leaked?)", len(entries))
	}

	if err := Delete(path); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := Delete(path); err != nil {
		t.Errorf("Delete() of missing file error = %v", err)
	}
	if Exists(path) {
		t.Error("Exists() = true after Delete")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "savegame.sav")
	if err := os.WriteFile(path, []byte{0xde, 0xad}, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(context.Background(), path)
	if err == nil || errors.Is(err, ErrNoSave) {
		t.Errorf("Load() corrupt error = %v, want a decode error", err)
	}
}
