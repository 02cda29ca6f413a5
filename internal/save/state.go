// Package save persists whole-game snapshots.
//
// A snapshot is a versioned, self-contained State value. It is encoded with
// deterministic CBOR and compressed with xz; entity references are by ID so
// the format does not depend on in-memory pointers.
package save

// Version is the snapshot format written by this build.
const Version = 1

// State is a complete game snapshot taken between turns.
type State struct {
	Version        int            `cbor:"version"`
	RunID          string         `cbor:"run_id"`
	Floor          int            `cbor:"floor"`
	Turn           int            `cbor:"turn"`
	Kills          int            `cbor:"kills"`
	AmuletPlaced   bool           `cbor:"amulet_placed"`
	AmuletAcquired bool           `cbor:"amulet_acquired"`
	RNG            []byte         `cbor:"rng"` // Marshaled PCG state
	PlayerID       string         `cbor:"player_id"`
	Map            MapState       `cbor:"map"`
	Entities       []EntityState  `cbor:"entities"` // On the map and in inventories
	Messages       []MessageState `cbor:"messages"`
}

// MapState is the tile grid and exploration state of the current floor.
type MapState struct {
	Width       int     `cbor:"width"`
	Height      int     `cbor:"height"`
	Tiles       []uint8 `cbor:"tiles"`
	Explored    []bool  `cbor:"explored"`
	DownstairsX int     `cbor:"downstairs_x"`
	DownstairsY int     `cbor:"downstairs_y"`
}

// EntityState is one entity with its optional components.
type EntityState struct {
	ID             string `cbor:"id"`
	TemplateID     string `cbor:"template"`
	Kind           uint8  `cbor:"kind"`
	Name           string `cbor:"name"`
	Glyph          int32  `cbor:"glyph"`
	Color          string `cbor:"color,omitempty"` // "#RRGGBB"
	X              int    `cbor:"x"`
	Y              int    `cbor:"y"`
	BlocksMovement bool   `cbor:"blocks"`
	RenderOrder    uint8  `cbor:"render_order"`
	Corpse         bool   `cbor:"corpse,omitempty"`
	Location       uint8  `cbor:"location"`
	HolderID       string `cbor:"holder,omitempty"`
	Objective      bool   `cbor:"objective,omitempty"`

	Fighter    *FighterState    `cbor:"fighter,omitempty"`
	Inventory  *InventoryState  `cbor:"inventory,omitempty"`
	Equipment  []string         `cbor:"equipment,omitempty"` // Item ID per slot, "" when empty
	AI         *AIState         `cbor:"ai,omitempty"`
	Level      *LevelState      `cbor:"level,omitempty"`
	Consumable *ConsumableState `cbor:"consumable,omitempty"`
	Equippable *EquippableState `cbor:"equippable,omitempty"`
}

// FighterState holds combat stats without equipment bonuses.
type FighterState struct {
	MaxHP       int `cbor:"max_hp"`
	HP          int `cbor:"hp"`
	BaseDefense int `cbor:"base_defense"`
	BasePower   int `cbor:"base_power"`
}

// InventoryState is a bounded list of carried items.
type InventoryState struct {
	Capacity int      `cbor:"capacity"`
	Items    []string `cbor:"items"` // Entity IDs in display order
}

// AIState nests the behavior a confused AI will restore.
type AIState struct {
	Kind           uint8    `cbor:"kind"`
	TurnsRemaining int      `cbor:"turns,omitempty"`
	Previous       *AIState `cbor:"previous,omitempty"`
	HasTarget      bool     `cbor:"has_target,omitempty"`
	TargetX        int      `cbor:"target_x,omitempty"`
	TargetY        int      `cbor:"target_y,omitempty"`
}

// LevelState is experience progress.
type LevelState struct {
	Current       int `cbor:"current"`
	XP            int `cbor:"xp"`
	XPGiven       int `cbor:"xp_given"`
	LevelUpBase   int `cbor:"level_up_base"`
	LevelUpFactor int `cbor:"level_up_factor"`
}

// ConsumableState is a usable item effect.
type ConsumableState struct {
	Kind         uint8 `cbor:"kind"`
	Amount       int   `cbor:"amount,omitempty"`
	Damage       int   `cbor:"damage,omitempty"`
	Radius       int   `cbor:"radius,omitempty"`
	MaximumRange int   `cbor:"maximum_range,omitempty"`
	Turns        int   `cbor:"turns,omitempty"`
}

// EquippableState is the slot and bonuses of wearable gear.
type EquippableState struct {
	Slot         uint8 `cbor:"slot"`
	PowerBonus   int   `cbor:"power_bonus,omitempty"`
	DefenseBonus int   `cbor:"defense_bonus,omitempty"`
}

// MessageState is one message log entry. Key and Params let the line be
// rendered again under a different locale; Text is the rendering at save time.
type MessageState struct {
	Key    string         `cbor:"key,omitempty"`
	Params map[string]any `cbor:"params,omitempty"`
	Text   string         `cbor:"text"`
	Tone   int            `cbor:"tone"`
	Count  int            `cbor:"count"`
}
