package entity

import (
	"fmt"

	"github.com/samdwyer/embercrypt/internal/gamedata"
)

// Catalog holds one prototype per template ID. Spawning deep-copies a
// prototype so spawned entities never share component state.
type Catalog struct {
	prototypes map[string]*Entity
}

// NewCatalog builds prototypes from loaded definitions.
func NewCatalog(reg *gamedata.Registry) (*Catalog, error) {
	c := &Catalog{prototypes: make(map[string]*Entity, reg.Count())}

	for _, def := range reg.Actors() {
		c.prototypes[def.ID] = actorFromDef(def)
	}
	for _, def := range reg.Items() {
		item, err := itemFromDef(def)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", def.ID, err)
		}
		c.prototypes[def.ID] = item
	}
	return c, nil
}

// Has reports whether a template exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.prototypes[id]
	return ok
}

// Spawn returns a fresh copy of the template, not yet placed anywhere.
func (c *Catalog) Spawn(id string) (*Entity, error) {
	proto, ok := c.prototypes[id]
	if !ok {
		return nil, fmt.Errorf("unknown entity template %q", id)
	}
	return proto.Clone(), nil
}

// MustSpawn is like Spawn but panics on unknown templates.
func (c *Catalog) MustSpawn(id string) *Entity {
	e, err := c.Spawn(id)
	if err != nil {
		panic(err)
	}
	return e
}

func actorFromDef(def gamedata.ActorDef) *Entity {
	e := &Entity{
		TemplateID:     def.ID,
		Kind:           KindActor,
		Name:           def.Name,
		Glyph:          Glyph{Rune: def.GlyphRune(), Color: def.TCellColor()},
		BlocksMovement: true,
		RenderOrder:    RenderActor,
		Fighter:        NewFighter(def.HP, def.Defense, def.Power),
		Equipment:      &Equipment{},
		Level: &Level{
			XPGiven:       def.XP,
			LevelUpBase:   def.LevelUpBase,
			LevelUpFactor: def.LevelUpFactor,
		},
	}
	if def.Controlled() {
		e.AI = &AI{Kind: AIControlled}
		e.Level.Current = 1
	} else {
		e.AI = &AI{Kind: AIHostile}
	}
	if def.InventoryCapacity > 0 {
		e.Inventory = NewInventory(def.InventoryCapacity)
	}
	return e
}

func itemFromDef(def gamedata.ItemDef) (*Entity, error) {
	e := &Entity{
		TemplateID:  def.ID,
		Kind:        KindItem,
		Name:        def.Name,
		Glyph:       Glyph{Rune: def.GlyphRune(), Color: def.TCellColor()},
		RenderOrder: RenderItem,
		Objective:   def.Objective,
	}
	if def.Consumable != nil {
		kind, err := ParseConsumableKind(def.Consumable.Kind)
		if err != nil {
			return nil, err
		}
		e.Consumable = &Consumable{
			Kind:         kind,
			Amount:       def.Consumable.Amount,
			Damage:       def.Consumable.Damage,
			Radius:       def.Consumable.Radius,
			MaximumRange: def.Consumable.MaximumRange,
			Turns:        def.Consumable.Turns,
		}
	}
	if def.Equippable != nil {
		slot, err := ParseSlot(def.Equippable.Slot)
		if err != nil {
			return nil, err
		}
		e.Equippable = &Equippable{
			Slot:         slot,
			PowerBonus:   def.Equippable.Power,
			DefenseBonus: def.Equippable.Defense,
		}
	}
	return e, nil
}
