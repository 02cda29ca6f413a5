// Package game provides the turn engine and the interactive game loop.
package game

// State is the input mode of the interactive shell.
type State int

const (
	// StateMenu is the title screen.
	StateMenu State = iota
	// StatePlaying is the main map mode where keys issue actions.
	StatePlaying
	// StateInventory lists items for use, drop or equip.
	StateInventory
	// StateTargeting moves a cursor to pick a tile for a scroll.
	StateTargeting
	// StateLevelUp waits for a stat choice.
	StateLevelUp
	// StateDead shows the game over message until a key is pressed.
	StateDead
	// StateVictory shows the win message until a key is pressed.
	StateVictory
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateInventory:
		return "inventory"
	case StateTargeting:
		return "targeting"
	case StateLevelUp:
		return "level_up"
	case StateDead:
		return "dead"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Phase is where the engine is in the turn cycle.
type Phase int

const (
	// PhasePlayerTurn - waiting for the player's action
	PhasePlayerTurn Phase = iota
	// PhaseEnemyTurn - living actors other than the player are acting
	PhaseEnemyTurn
	// PhaseLevelUp - the player must pick a stat before acting again
	PhaseLevelUp
	// PhaseVictory - the objective item was picked up
	PhaseVictory
	// PhaseDefeat - the player died
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseEnemyTurn:
		return "enemy_turn"
	case PhaseLevelUp:
		return "level_up"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Over reports whether the run has ended.
func (p Phase) Over() bool {
	return p == PhaseVictory || p == PhaseDefeat
}
