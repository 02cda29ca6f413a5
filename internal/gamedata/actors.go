package gamedata

import "github.com/gdamore/tcell/v2"

// ActorDef defines an actor template loaded from JSON.
type ActorDef struct {
	ID                string `json:"id"`                          // Unique identifier (e.g., "imp")
	Name              string `json:"name"`                        // Display name (e.g., "Imp")
	Glyph             string `json:"glyph"`                       // Single character for rendering
	Color             string `json:"color"`                       // Hex color code (e.g., "#EE0000")
	HP                int    `json:"hp"`                          // Maximum hit points
	Defense           int    `json:"defense"`                     // Base defense value
	Power             int    `json:"power"`                       // Base attack power
	InventoryCapacity int    `json:"inventoryCapacity,omitempty"` // Zero means the actor carries nothing
	XP                int    `json:"xp"`                          // Experience granted to the killer
	AI                string `json:"ai,omitempty"`                // "controlled" for the player, hostile otherwise
	LevelUpBase       int    `json:"levelUpBase,omitempty"`
	LevelUpFactor     int    `json:"levelUpFactor,omitempty"`
}

// Controlled reports whether the actor is driven by player input rather than AI.
func (a *ActorDef) Controlled() bool {
	return a.AI == "controlled"
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	return glyphRune(a.Glyph)
}

// TCellColor returns the color as a tcell.Color.
func (a *ActorDef) TCellColor() tcell.Color {
	return colorOrWhite(a.Color)
}

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Actors []ActorDef `json:"actors"`
}

// LoadActors loads actor definitions from the embedded actors.json file.
func LoadActors() ([]ActorDef, error) {
	file, err := Load[ActorsFile]("actors.json")
	if err != nil {
		return nil, err
	}
	return file.Actors, nil
}

func glyphRune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return '?'
}
