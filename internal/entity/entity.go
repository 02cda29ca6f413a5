// Package entity provides the actors and items that populate a floor.
//
// An Entity is a single record carrying optional capability components
// (Fighter, Inventory, Equipment, AI, Level for actors; Consumable and
// Equippable for items). A nil component means the capability is absent,
// so callers check for presence before use.
package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// Kind distinguishes the two entity variants.
type Kind uint8

const (
	KindActor Kind = iota
	KindItem
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// RenderOrder decides which entity is drawn on top when several share a tile.
// Higher values are drawn later.
type RenderOrder uint8

const (
	RenderCorpse RenderOrder = iota
	RenderItem
	RenderActor
)

// LocationKind says where an entity currently lives.
type LocationKind uint8

const (
	Nowhere LocationKind = iota
	OnMap
	InInventory
)

// Location is the mutually exclusive placement of an entity: on the current
// floor at its X/Y, or inside the inventory of Holder.
type Location struct {
	Kind   LocationKind
	Holder *Entity // Set only for InInventory
}

// Glyph is the character and color used to draw an entity.
type Glyph struct {
	Rune  rune
	Color tcell.Color
}

// CorpseColor is the color of remains left behind by dead actors.
var CorpseColor = tcell.NewRGBColor(191, 0, 0)

// Entity is anything that can be placed on a floor.
type Entity struct {
	ID             uuid.UUID
	TemplateID     string
	Kind           Kind
	Name           string
	Glyph          Glyph
	X, Y           int
	BlocksMovement bool
	RenderOrder    RenderOrder
	Location       Location
	Corpse         bool // Set once an actor dies

	// Actor capabilities
	Fighter   *Fighter
	Inventory *Inventory
	Equipment *Equipment
	AI        *AI
	Level     *Level

	// Item capabilities
	Consumable *Consumable
	Equippable *Equippable
	Objective  bool // The unique win-condition item
}

// IsActor reports whether the entity is an actor.
func (e *Entity) IsActor() bool { return e.Kind == KindActor }

// IsItem reports whether the entity is an item.
func (e *Entity) IsItem() bool { return e.Kind == KindItem }

// IsAlive reports whether the actor can still act. Dead actors lose their AI.
func (e *Entity) IsAlive() bool { return e.IsActor() && e.AI != nil }

// Position returns the entity's current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}

// Move updates the entity position by the given delta.
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Place puts the entity on the floor at x, y.
func (e *Entity) Place(x, y int) {
	e.X = x
	e.Y = y
	e.Location = Location{Kind: OnMap}
}

// Distance returns the Euclidean distance from the entity to x, y.
func (e *Entity) Distance(x, y int) float64 {
	dx := float64(x - e.X)
	dy := float64(y - e.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ChebyshevDistance returns the number of king moves from the entity to x, y.
func (e *Entity) ChebyshevDistance(x, y int) int {
	return max(abs(x-e.X), abs(y-e.Y))
}

// Power returns base power plus the bonus from equipped items.
func (e *Entity) Power() int {
	if e.Fighter == nil {
		return 0
	}
	bonus := 0
	if e.Equipment != nil {
		bonus = e.Equipment.PowerBonus()
	}
	return e.Fighter.BasePower + bonus
}

// Defense returns base defense plus the bonus from equipped items.
func (e *Entity) Defense() int {
	if e.Fighter == nil {
		return 0
	}
	bonus := 0
	if e.Equipment != nil {
		bonus = e.Equipment.DefenseBonus()
	}
	return e.Fighter.BaseDefense + bonus
}

// SetHP clamps value into [0, MaxHP] and stores it. It returns true only
// when this call killed the actor: reaching 0 HP while the actor still has
// an AI triggers death, and an actor without AI never dies twice.
func (e *Entity) SetHP(value int) bool {
	if e.Fighter == nil {
		return false
	}
	e.Fighter.HP = e.Fighter.clamp(value)
	if e.Fighter.HP == 0 && e.AI != nil {
		e.die()
		return true
	}
	return false
}

// TakeDamage subtracts amount from HP. It returns true if the actor died.
func (e *Entity) TakeDamage(amount int) bool {
	if e.Fighter == nil {
		return false
	}
	return e.SetHP(e.Fighter.HP - amount)
}

// Heal restores HP and returns the amount actually recovered.
func (e *Entity) Heal(amount int) int {
	if e.Fighter == nil {
		return 0
	}
	return e.Fighter.Heal(amount)
}

// die turns the actor into inert remains that stay on the floor.
func (e *Entity) die() {
	e.Corpse = true
	e.Glyph = Glyph{Rune: '%', Color: CorpseColor}
	e.BlocksMovement = false
	e.AI = nil
	e.RenderOrder = RenderCorpse
}

// Clone returns a deep copy with a fresh ID and no location.
// Carried items are cloned too, and equipment slots point at the clones.
func (e *Entity) Clone() *Entity {
	return e.cloneWith(make(map[*Entity]*Entity))
}

func (e *Entity) cloneWith(seen map[*Entity]*Entity) *Entity {
	c := *e
	c.ID = uuid.New()
	c.Location = Location{}
	seen[e] = &c

	if e.Fighter != nil {
		f := *e.Fighter
		c.Fighter = &f
	}
	if e.Level != nil {
		l := *e.Level
		c.Level = &l
	}
	if e.AI != nil {
		c.AI = e.AI.Clone()
	}
	if e.Consumable != nil {
		cons := *e.Consumable
		c.Consumable = &cons
	}
	if e.Equippable != nil {
		eq := *e.Equippable
		c.Equippable = &eq
	}
	if e.Inventory != nil {
		inv := &Inventory{
			Capacity: e.Inventory.Capacity,
			Items:    make([]*Entity, 0, len(e.Inventory.Items)),
		}
		for _, item := range e.Inventory.Items {
			ci := item.cloneWith(seen)
			ci.Location = Location{Kind: InInventory, Holder: &c}
			inv.Items = append(inv.Items, ci)
		}
		c.Inventory = inv
	}
	if e.Equipment != nil {
		eq := &Equipment{}
		for slot, item := range e.Equipment.Slots {
			if item == nil {
				continue
			}
			if ci, ok := seen[item]; ok {
				eq.Slots[slot] = ci
			}
		}
		c.Equipment = eq
	}
	return &c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
