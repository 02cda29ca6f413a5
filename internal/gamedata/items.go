package gamedata

import "github.com/gdamore/tcell/v2"

// ConsumableKind names the effect an item produces when used.
type ConsumableKind string

const (
	ConsumableHealing   ConsumableKind = "healing"
	ConsumableConfusion ConsumableKind = "confusion"
	ConsumableFireball  ConsumableKind = "fireball"
	ConsumableLightning ConsumableKind = "lightning"
)

// SlotName names the equipment slot an equippable item occupies.
type SlotName string

const (
	SlotWeapon SlotName = "weapon"
	SlotArmor  SlotName = "armor"
	SlotRing   SlotName = "ring"
)

// ConsumableDef describes a single-use item effect.
// Only the fields relevant to Kind are read.
type ConsumableDef struct {
	Kind         ConsumableKind `json:"kind"`
	Amount       int            `json:"amount,omitempty"`       // healing
	Damage       int            `json:"damage,omitempty"`       // fireball, lightning
	Radius       int            `json:"radius,omitempty"`       // fireball
	MaximumRange int            `json:"maximumRange,omitempty"` // lightning
	Turns        int            `json:"turns,omitempty"`        // confusion
}

// EquippableDef describes the stat bonuses an item grants while equipped.
type EquippableDef struct {
	Slot    SlotName `json:"slot"`
	Power   int      `json:"power,omitempty"`
	Defense int      `json:"defense,omitempty"`
}

// ItemDef defines an item template loaded from JSON.
type ItemDef struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Glyph      string         `json:"glyph"`
	Color      string         `json:"color"`
	Consumable *ConsumableDef `json:"consumable,omitempty"`
	Equippable *EquippableDef `json:"equippable,omitempty"`
	Objective  bool           `json:"objective,omitempty"` // The unique item that wins the run
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	return glyphRune(i.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (i *ItemDef) TCellColor() tcell.Color {
	return colorOrWhite(i.Color)
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
