package game

import "github.com/samdwyer/embercrypt/internal/entity"

// CommandKind identifies a decoded player command.
type CommandKind int

const (
	CmdMove CommandKind = iota
	CmdWait
	CmdPickup
	CmdDrop
	CmdEquip
	CmdUse
	CmdDescend
	CmdLevelUp
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdWait:
		return "wait"
	case CmdPickup:
		return "pickup"
	case CmdDrop:
		return "drop"
	case CmdEquip:
		return "equip"
	case CmdUse:
		return "use"
	case CmdDescend:
		return "descend"
	case CmdLevelUp:
		return "level_up"
	default:
		return "unknown"
	}
}

// Command is a player intent already decoded from raw input.
type Command struct {
	Kind   CommandKind
	DX, DY int                // Move
	Item   *entity.Entity     // Drop, Equip, Use
	X, Y   int                // Use target tile
	Choice entity.LevelChoice // LevelUp
}

// Move returns a directional bump command.
func Move(dx, dy int) Command { return Command{Kind: CmdMove, DX: dx, DY: dy} }

// Wait returns a pass-the-turn command.
func Wait() Command { return Command{Kind: CmdWait} }

// Pickup returns a pick-up command.
func Pickup() Command { return Command{Kind: CmdPickup} }

// Drop returns a command dropping item.
func Drop(item *entity.Entity) Command { return Command{Kind: CmdDrop, Item: item} }

// Equip returns a command toggling item in its slot.
func Equip(item *entity.Entity) Command { return Command{Kind: CmdEquip, Item: item} }

// Use returns a command activating item at target x, y.
func Use(item *entity.Entity, x, y int) Command {
	return Command{Kind: CmdUse, Item: item, X: x, Y: y}
}

// Descend returns a take-stairs command.
func Descend() Command { return Command{Kind: CmdDescend} }

// LevelUp returns a stat choice command.
func LevelUp(choice entity.LevelChoice) Command {
	return Command{Kind: CmdLevelUp, Choice: choice}
}
