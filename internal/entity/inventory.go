package entity

import apperrors "github.com/samdwyer/embercrypt/internal/errors"

// Inventory is an ordered, capacity-bounded list of carried items.
// Insertion order is display order.
type Inventory struct {
	Capacity int
	Items    []*Entity
}

// NewInventory creates an empty inventory.
func NewInventory(capacity int) *Inventory {
	return &Inventory{Capacity: capacity}
}

// IsFull reports whether no more items fit.
func (inv *Inventory) IsFull() bool {
	return len(inv.Items) >= inv.Capacity
}

// Contains reports whether item is carried.
func (inv *Inventory) Contains(item *Entity) bool {
	return inv.IndexOf(item) >= 0
}

// IndexOf returns the position of item or -1.
func (inv *Inventory) IndexOf(item *Entity) int {
	for i, it := range inv.Items {
		if it == item {
			return i
		}
	}
	return -1
}

// remove deletes item while keeping the order of the rest.
func (inv *Inventory) remove(item *Entity) bool {
	i := inv.IndexOf(item)
	if i < 0 {
		return false
	}
	inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	return true
}

// Carry appends item to the holder's inventory and reparents it.
// The caller is responsible for taking the item off the map first.
func (e *Entity) Carry(item *Entity) error {
	if e.Inventory == nil || e.Inventory.IsFull() {
		return apperrors.Simple(apperrors.CodeInventoryFull)
	}
	e.Inventory.Items = append(e.Inventory.Items, item)
	item.Location = Location{Kind: InInventory, Holder: e}
	return nil
}

// Release removes item from the holder's inventory, unequipping it first if
// needed, and places it at the holder's position. It returns the equipment
// changes caused by the release.
func (e *Entity) Release(item *Entity) ([]Change, error) {
	if e.Inventory == nil || !e.Inventory.Contains(item) {
		return nil, apperrors.New(apperrors.CodeNotInInventory, map[string]any{"item_name": item.Name})
	}
	var changes []Change
	if e.Equipment != nil && e.Equipment.IsEquipped(item) {
		changes = append(changes, e.Equipment.Unequip(item.Equippable.Slot))
	}
	e.Inventory.remove(item)
	item.Place(e.X, e.Y)
	return changes, nil
}

// Discard removes a used-up item from the holder's inventory.
func (e *Entity) Discard(item *Entity) {
	if e.Inventory == nil {
		return
	}
	if e.Equipment != nil && e.Equipment.IsEquipped(item) {
		e.Equipment.Unequip(item.Equippable.Slot)
	}
	if e.Inventory.remove(item) {
		item.Location = Location{}
	}
}
