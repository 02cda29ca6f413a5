// Package combat resolves melee attacks and consumable item effects.
package combat

import (
	apperrors "github.com/samdwyer/embercrypt/internal/errors"
	"github.com/samdwyer/embercrypt/internal/entity"
)

// Arena is the part of a floor that effects need to see.
type Arena interface {
	IsVisible(x, y int) bool
	Actors() []*entity.Entity
	ActorAt(x, y int) *entity.Entity
}

// EventKind identifies what happened during resolution.
type EventKind int

const (
	EventHit EventKind = iota
	EventDodge
	EventHeal
	EventConfused
	EventFireball
	EventLightning
	EventDeath
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventDodge:
		return "dodge"
	case EventHeal:
		return "heal"
	case EventConfused:
		return "confused"
	case EventFireball:
		return "fireball"
	case EventLightning:
		return "lightning"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Event is one observable outcome. The caller turns events into messages.
type Event struct {
	Kind   EventKind
	Source *entity.Entity // Attacker or item user
	Target *entity.Entity
	Amount int // Damage dealt, HP restored or turns of confusion
}

// EffectResult contains the outcome of resolving an attack or item.
type EffectResult struct {
	Events   []Event
	Consumed bool // The item was used up and removed from the inventory
}

// EffectResolver applies attacks and item effects.
type EffectResolver struct{}

// NewEffectResolver creates a new effect resolver.
func NewEffectResolver() *EffectResolver {
	return &EffectResolver{}
}

// Melee resolves a single attack. Damage is attacker power minus defender
// defense; a non-positive result is a dodge and leaves HP untouched.
func (r *EffectResolver) Melee(attacker, defender *entity.Entity) EffectResult {
	damage := r.CalculateDamage(attacker, defender)
	if damage <= 0 {
		return EffectResult{Events: []Event{{Kind: EventDodge, Source: attacker, Target: defender}}}
	}

	result := EffectResult{Events: []Event{{Kind: EventHit, Source: attacker, Target: defender, Amount: damage}}}
	result.damage(attacker, defender, damage)
	return result
}

// CalculateDamage returns the melee damage without applying it.
func (r *EffectResolver) CalculateDamage(attacker, defender *entity.Entity) int {
	return attacker.Power() - defender.Defense()
}

// Activate uses a consumable item carried by user. tx, ty is the chosen
// target tile for effects that need one. A failed activation returns an
// Impossible error and leaves the item in the inventory.
func (r *EffectResolver) Activate(user, item *entity.Entity, tx, ty int, arena Arena) (EffectResult, error) {
	if item.Consumable == nil {
		return EffectResult{}, apperrors.New(apperrors.CodeCannotUse, map[string]any{"item_name": item.Name})
	}

	var (
		result EffectResult
		err    error
	)
	switch item.Consumable.Kind {
	case entity.ConsumableHealing:
		result, err = r.resolveHealing(user, item)
	case entity.ConsumableConfusion:
		result, err = r.resolveConfusion(user, item, tx, ty, arena)
	case entity.ConsumableFireball:
		result, err = r.resolveFireball(user, item, tx, ty, arena)
	case entity.ConsumableLightning:
		result, err = r.resolveLightning(user, item, arena)
	default:
		return EffectResult{}, apperrors.New(apperrors.CodeCannotUse, map[string]any{"item_name": item.Name})
	}
	if err != nil {
		return EffectResult{}, err
	}

	user.Discard(item)
	result.Consumed = true
	return result, nil
}

// resolveHealing restores HP up to the maximum.
func (r *EffectResolver) resolveHealing(user, item *entity.Entity) (EffectResult, error) {
	if user.Fighter == nil || user.Fighter.IsFullHealth() {
		return EffectResult{}, apperrors.Simple(apperrors.CodeFullHP)
	}
	recovered := user.Heal(item.Consumable.Amount)
	return EffectResult{Events: []Event{{Kind: EventHeal, Source: item, Target: user, Amount: recovered}}}, nil
}

// resolveConfusion replaces the target's AI for a number of turns.
func (r *EffectResolver) resolveConfusion(user, item *entity.Entity, tx, ty int, arena Arena) (EffectResult, error) {
	if !arena.IsVisible(tx, ty) {
		return EffectResult{}, apperrors.Simple(apperrors.CodeMustTargetVisible)
	}
	target := arena.ActorAt(tx, ty)
	if target == nil {
		return EffectResult{}, apperrors.Simple(apperrors.CodeMustTargetEnemy)
	}
	if target == user {
		return EffectResult{}, apperrors.Simple(apperrors.CodeMustNotTargetSelf)
	}

	turns := item.Consumable.Turns
	target.Confuse(turns)
	return EffectResult{Events: []Event{{Kind: EventConfused, Source: user, Target: target, Amount: turns}}}, nil
}

// resolveFireball damages every actor within the radius of a visible tile,
// the user included.
func (r *EffectResolver) resolveFireball(user, item *entity.Entity, tx, ty int, arena Arena) (EffectResult, error) {
	if !arena.IsVisible(tx, ty) {
		return EffectResult{}, apperrors.Simple(apperrors.CodeMustTargetVisible)
	}

	c := item.Consumable
	var result EffectResult
	for _, actor := range arena.Actors() {
		if actor.Distance(tx, ty) > float64(c.Radius) {
			continue
		}
		result.Events = append(result.Events, Event{Kind: EventFireball, Source: user, Target: actor, Amount: c.Damage})
		result.damage(user, actor, c.Damage)
	}
	if len(result.Events) == 0 {
		return EffectResult{}, apperrors.Simple(apperrors.CodeNoTargets)
	}
	return result, nil
}

// resolveLightning strikes the closest visible actor other than the user
// within range.
func (r *EffectResolver) resolveLightning(user, item *entity.Entity, arena Arena) (EffectResult, error) {
	c := item.Consumable
	var target *entity.Entity
	closest := float64(c.MaximumRange) + 1

	for _, actor := range arena.Actors() {
		if actor == user || !arena.IsVisible(actor.X, actor.Y) {
			continue
		}
		if d := user.Distance(actor.X, actor.Y); d < closest {
			target = actor
			closest = d
		}
	}
	if target == nil {
		return EffectResult{}, apperrors.Simple(apperrors.CodeNoCloseEnemy)
	}

	result := EffectResult{Events: []Event{{Kind: EventLightning, Source: user, Target: target, Amount: c.Damage}}}
	result.damage(user, target, c.Damage)
	return result, nil
}

// damage applies amount to target and records a death if it killed.
func (r *EffectResult) damage(source, target *entity.Entity, amount int) {
	if target.TakeDamage(amount) {
		r.Events = append(r.Events, Event{Kind: EventDeath, Source: source, Target: target})
	}
}
