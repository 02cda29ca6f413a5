package entity

// AIKind is the closed set of actor behaviors.
type AIKind int

const (
	AIControlled AIKind = iota // Driven by player input
	AIHostile                  // Hunts the player
	AIConfused                 // Stumbles randomly, then reverts
)

// String returns the behavior name.
func (k AIKind) String() string {
	switch k {
	case AIControlled:
		return "controlled"
	case AIHostile:
		return "hostile"
	case AIConfused:
		return "confused"
	default:
		return "unknown"
	}
}

// AI is an actor's behavior state. A confused AI wraps the behavior it
// replaced in Previous and restores it when TurnsRemaining runs out.
type AI struct {
	Kind           AIKind
	TurnsRemaining int // Confused only
	Previous       *AI // Confused only

	// Last tile where a hostile saw its target
	HasTarget        bool
	TargetX, TargetY int
}

// Clone returns a deep copy, including any wrapped behavior.
func (ai *AI) Clone() *AI {
	c := *ai
	if ai.Previous != nil {
		c.Previous = ai.Previous.Clone()
	}
	return &c
}

// Confuse replaces the actor's AI with a confused one for turns turns.
func (e *Entity) Confuse(turns int) {
	if e.AI == nil {
		return
	}
	e.AI = &AI{
		Kind:           AIConfused,
		TurnsRemaining: turns,
		Previous:       e.AI,
	}
}

// RecoverFromConfusion restores the wrapped AI. It returns false if the
// actor was not confused.
func (e *Entity) RecoverFromConfusion() bool {
	if e.AI == nil || e.AI.Kind != AIConfused {
		return false
	}
	e.AI = e.AI.Previous
	return true
}
