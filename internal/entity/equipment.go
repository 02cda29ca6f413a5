package entity

import (
	"fmt"

	"github.com/samdwyer/embercrypt/internal/gamedata"
)

// Slot identifies an equipment slot.
type Slot int

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotRing

	slotCount
)

// String returns the slot name as used in data files.
func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return string(gamedata.SlotWeapon)
	case SlotArmor:
		return string(gamedata.SlotArmor)
	case SlotRing:
		return string(gamedata.SlotRing)
	default:
		return "unknown"
	}
}

// ParseSlot converts a data-file slot name.
func ParseSlot(name gamedata.SlotName) (Slot, error) {
	switch name {
	case gamedata.SlotWeapon:
		return SlotWeapon, nil
	case gamedata.SlotArmor:
		return SlotArmor, nil
	case gamedata.SlotRing:
		return SlotRing, nil
	default:
		return 0, fmt.Errorf("unknown equipment slot %q", name)
	}
}

// Equippable describes the bonuses an item grants while equipped.
type Equippable struct {
	Slot         Slot
	PowerBonus   int
	DefenseBonus int
}

// ChangeKind says whether an item went into or out of a slot.
type ChangeKind int

const (
	Equipped ChangeKind = iota
	Unequipped
)

// Change records one slot transition so callers can report it.
type Change struct {
	Kind ChangeKind
	Item *Entity
}

// Equipment holds at most one item per slot.
type Equipment struct {
	Slots [slotCount]*Entity
}

// IsEquipped reports whether item occupies any slot.
func (eq *Equipment) IsEquipped(item *Entity) bool {
	if item == nil {
		return false
	}
	for _, it := range eq.Slots {
		if it == item {
			return true
		}
	}
	return false
}

// PowerBonus sums the power bonus of all filled slots.
func (eq *Equipment) PowerBonus() int {
	bonus := 0
	for _, it := range eq.Slots {
		if it != nil && it.Equippable != nil {
			bonus += it.Equippable.PowerBonus
		}
	}
	return bonus
}

// DefenseBonus sums the defense bonus of all filled slots.
func (eq *Equipment) DefenseBonus() int {
	bonus := 0
	for _, it := range eq.Slots {
		if it != nil && it.Equippable != nil {
			bonus += it.Equippable.DefenseBonus
		}
	}
	return bonus
}

// Unequip empties slot and reports the item that left it.
func (eq *Equipment) Unequip(slot Slot) Change {
	item := eq.Slots[slot]
	eq.Slots[slot] = nil
	return Change{Kind: Unequipped, Item: item}
}

// Toggle equips item, displacing any other item in the same slot, or
// unequips it if it is already in its slot.
func (eq *Equipment) Toggle(item *Entity) []Change {
	slot := item.Equippable.Slot
	current := eq.Slots[slot]
	if current == item {
		return []Change{eq.Unequip(slot)}
	}

	var changes []Change
	if current != nil {
		changes = append(changes, eq.Unequip(slot))
	}
	eq.Slots[slot] = item
	return append(changes, Change{Kind: Equipped, Item: item})
}
