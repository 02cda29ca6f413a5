package entity

import (
	"fmt"

	"github.com/samdwyer/embercrypt/internal/gamedata"
)

// ConsumableKind is the closed set of single-use item effects.
type ConsumableKind int

const (
	ConsumableHealing ConsumableKind = iota
	ConsumableConfusion
	ConsumableFireball
	ConsumableLightning
)

// String returns the effect name as used in data files.
func (k ConsumableKind) String() string {
	switch k {
	case ConsumableHealing:
		return string(gamedata.ConsumableHealing)
	case ConsumableConfusion:
		return string(gamedata.ConsumableConfusion)
	case ConsumableFireball:
		return string(gamedata.ConsumableFireball)
	case ConsumableLightning:
		return string(gamedata.ConsumableLightning)
	default:
		return "unknown"
	}
}

// ParseConsumableKind converts a data-file effect name.
func ParseConsumableKind(kind gamedata.ConsumableKind) (ConsumableKind, error) {
	switch kind {
	case gamedata.ConsumableHealing:
		return ConsumableHealing, nil
	case gamedata.ConsumableConfusion:
		return ConsumableConfusion, nil
	case gamedata.ConsumableFireball:
		return ConsumableFireball, nil
	case gamedata.ConsumableLightning:
		return ConsumableLightning, nil
	default:
		return 0, fmt.Errorf("unknown consumable kind %q", kind)
	}
}

// Consumable is a single-use effect. Only the fields relevant to Kind are set.
type Consumable struct {
	Kind         ConsumableKind
	Amount       int // Healing
	Damage       int // Fireball, lightning
	Radius       int // Fireball
	MaximumRange int // Lightning
	Turns        int // Confusion
}

// NeedsTarget reports whether the player must pick a tile before use.
func (c *Consumable) NeedsTarget() bool {
	return c.Kind == ConsumableConfusion || c.Kind == ConsumableFireball
}

// TargetRadius is the highlight radius shown while targeting.
func (c *Consumable) TargetRadius() int {
	if c.Kind == ConsumableFireball {
		return c.Radius
	}
	return 0
}
