// Package errors provides the recoverable "impossible action" error taxonomy.
//
// Codes double as translation keys: the engine renders an Impossible error by
// looking its code up in the message catalog with the error's parameters.
package errors

// Code is a machine-readable reason an action could not be performed.
type Code string

const (
	// Movement
	CodeWayBlocked      Code = "way_blocked"
	CodeNothingToAttack Code = "nothing_to_attack"

	// Inventory
	CodeInventoryFull  Code = "inventory_full"
	CodeNothingToPick  Code = "nothing_to_pick"
	CodeNotInInventory Code = "not_in_inventory"
	CodeCannotUse      Code = "cannot_use"
	CodeCannotEquip    Code = "cannot_equip"

	// Consumables
	CodeFullHP            Code = "full_hp"
	CodeMustTargetVisible Code = "must_target_visible"
	CodeMustTargetEnemy   Code = "must_target_enemy"
	CodeMustNotTargetSelf Code = "must_not_target_self"
	CodeNoTargets         Code = "no_targets"
	CodeNoCloseEnemy      Code = "no_close_enemy"

	// Floors
	CodeNoStairs Code = "no_stairs"
)
