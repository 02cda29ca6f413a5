package game

import (
	"context"

	"github.com/samdwyer/embercrypt/internal/combat"
	"github.com/samdwyer/embercrypt/internal/entity"
	apperrors "github.com/samdwyer/embercrypt/internal/errors"
	"github.com/samdwyer/embercrypt/internal/view"
	"github.com/samdwyer/embercrypt/internal/world"
)

// Action is one attempted state change by an actor. Perform returns an
// *apperrors.Impossible when the attempt is invalid; nothing is mutated
// in that case.
type Action interface {
	Perform(ctx context.Context, e *Engine) error
}

// ============================================================================
// Movement
// ============================================================================

// MoveAction steps the actor by DX, DY.
type MoveAction struct {
	Actor  *entity.Entity
	DX, DY int
}

func (a MoveAction) Perform(_ context.Context, e *Engine) error {
	x, y := a.Actor.X+a.DX, a.Actor.Y+a.DY
	if !e.Map.InBounds(x, y) || !e.Map.TileAt(x, y).Walkable() || e.Map.BlockingEntityAt(x, y) != nil {
		return apperrors.Simple(apperrors.CodeWayBlocked)
	}
	a.Actor.Move(a.DX, a.DY)
	return nil
}

// MeleeAction attacks the actor at the destination.
type MeleeAction struct {
	Actor  *entity.Entity
	DX, DY int
}

func (a MeleeAction) Perform(_ context.Context, e *Engine) error {
	target := e.Map.ActorAt(a.Actor.X+a.DX, a.Actor.Y+a.DY)
	if target == nil {
		return apperrors.Simple(apperrors.CodeNothingToAttack)
	}
	e.applyEffects(e.resolver.Melee(a.Actor, target))
	return nil
}

// BumpAction attacks when an actor occupies the destination and moves otherwise.
type BumpAction struct {
	Actor  *entity.Entity
	DX, DY int
}

func (a BumpAction) Perform(ctx context.Context, e *Engine) error {
	if e.Map.ActorAt(a.Actor.X+a.DX, a.Actor.Y+a.DY) != nil {
		return MeleeAction(a).Perform(ctx, e)
	}
	return MoveAction(a).Perform(ctx, e)
}

// WaitAction does nothing for a turn.
type WaitAction struct {
	Actor *entity.Entity
}

func (WaitAction) Perform(context.Context, *Engine) error { return nil }

// ============================================================================
// Items
// ============================================================================

// PickupAction takes the item under the actor.
type PickupAction struct {
	Actor *entity.Entity
}

func (a PickupAction) Perform(_ context.Context, e *Engine) error {
	item := e.Map.ItemAt(a.Actor.X, a.Actor.Y)
	if item == nil {
		return apperrors.Simple(apperrors.CodeNothingToPick)
	}
	if a.Actor.Inventory == nil || a.Actor.Inventory.IsFull() {
		return apperrors.Simple(apperrors.CodeInventoryFull)
	}

	e.Map.Remove(item)
	if err := a.Actor.Carry(item); err != nil {
		e.Map.Add(item)
		return err
	}
	e.message(view.ToneNormal, "pick_item", map[string]any{"item_name": item.Name})

	if item.Objective && a.Actor == e.Player {
		e.AmuletAcquired = true
		e.message(view.ToneVictory, "amulet_acquired", nil)
	}
	return nil
}

// DropAction puts a carried item on the floor, unequipping it first.
type DropAction struct {
	Actor *entity.Entity
	Item  *entity.Entity
}

func (a DropAction) Perform(_ context.Context, e *Engine) error {
	changes, err := a.Actor.Release(a.Item)
	if err != nil {
		return err
	}
	e.reportEquipment(changes)
	e.Map.Add(a.Item)
	e.message(view.ToneNormal, "drop_message", map[string]any{"item_name": a.Item.Name})
	return nil
}

// EquipAction toggles a carried item in its slot.
type EquipAction struct {
	Actor *entity.Entity
	Item  *entity.Entity
}

func (a EquipAction) Perform(_ context.Context, e *Engine) error {
	if a.Actor.Inventory == nil || !a.Actor.Inventory.Contains(a.Item) {
		return apperrors.New(apperrors.CodeNotInInventory, map[string]any{"item_name": a.Item.Name})
	}
	if a.Item.Equippable == nil || a.Actor.Equipment == nil {
		return apperrors.New(apperrors.CodeCannotEquip, map[string]any{"item_name": a.Item.Name})
	}
	e.reportEquipment(a.Actor.Equipment.Toggle(a.Item))
	return nil
}

// ItemAction activates a carried consumable, optionally at a target tile.
type ItemAction struct {
	Actor *entity.Entity
	Item  *entity.Entity
	X, Y  int
}

func (a ItemAction) Perform(_ context.Context, e *Engine) error {
	if a.Actor.Inventory == nil || !a.Actor.Inventory.Contains(a.Item) {
		return apperrors.New(apperrors.CodeNotInInventory, map[string]any{"item_name": a.Item.Name})
	}
	result, err := e.resolver.Activate(a.Actor, a.Item, a.X, a.Y, e.Map)
	if err != nil {
		return err
	}
	e.applyEffects(result)
	return nil
}

// ============================================================================
// Floors
// ============================================================================

// TakeStairsAction descends when the actor stands on the stairwell.
type TakeStairsAction struct {
	Actor *entity.Entity
}

func (a TakeStairsAction) Perform(ctx context.Context, e *Engine) error {
	if (world.Point{X: a.Actor.X, Y: a.Actor.Y}) != e.Map.Downstairs {
		return apperrors.Simple(apperrors.CodeNoStairs)
	}
	return e.descend(ctx)
}

// Compile-time check that the floor satisfies the effect arena.
var _ combat.Arena = (*world.Map)(nil)
