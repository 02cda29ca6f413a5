package game

import (
	"github.com/samdwyer/embercrypt/internal/entity"
	"github.com/samdwyer/embercrypt/internal/view"
	"github.com/samdwyer/embercrypt/internal/world"
)

// crowdCost is added to tiles holding a blocking entity so monsters path
// around each other instead of queueing.
const crowdCost = 10

var directions = [...][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// decide picks the action for a non-player actor. A nil result means the
// actor spent its turn on bookkeeping.
func (e *Engine) decide(actor *entity.Entity) Action {
	if actor.AI == nil {
		return nil
	}
	switch actor.AI.Kind {
	case entity.AIHostile:
		return e.hostileAction(actor)
	case entity.AIConfused:
		return e.confusedAction(actor)
	default:
		return WaitAction{Actor: actor}
	}
}

// hostileAction chases the player while it is in sight and walks to the
// last tile it was seen on otherwise.
func (e *Engine) hostileAction(actor *entity.Entity) Action {
	ai := actor.AI
	if e.Map.IsVisible(actor.X, actor.Y) {
		ai.HasTarget = true
		ai.TargetX, ai.TargetY = e.Player.X, e.Player.Y
	}
	if !ai.HasTarget {
		return WaitAction{Actor: actor}
	}

	target := world.Point{X: ai.TargetX, Y: ai.TargetY}
	here := world.Point{X: actor.X, Y: actor.Y}
	if here == target {
		ai.HasTarget = false
		return WaitAction{Actor: actor}
	}

	dx, dy := target.X-here.X, target.Y-here.Y
	if actor.ChebyshevDistance(target.X, target.Y) <= 1 && e.Map.ActorAt(target.X, target.Y) == e.Player {
		return MeleeAction{Actor: actor, DX: dx, DY: dy}
	}

	path := e.Map.FindPath(here, target, e.crowdedCost)
	if len(path) == 0 {
		ai.HasTarget = false
		return WaitAction{Actor: actor}
	}
	step := path[0]
	return MoveAction{Actor: actor, DX: step.X - here.X, DY: step.Y - here.Y}
}

// crowdedCost charges extra for tiles another blocker stands on.
func (e *Engine) crowdedCost(p world.Point) int {
	cost := e.Map.WalkableCost(p)
	if cost == 0 {
		return 0
	}
	if e.Map.BlockingEntityAt(p.X, p.Y) != nil {
		cost += crowdCost
	}
	return cost
}

// confusedAction stumbles in a random direction until the effect wears off.
func (e *Engine) confusedAction(actor *entity.Entity) Action {
	if actor.AI.TurnsRemaining <= 0 {
		if actor.RecoverFromConfusion() {
			e.message(view.ToneStatus, "confusion_end", map[string]any{"entity": actor.Name})
		}
		return nil
	}
	actor.AI.TurnsRemaining--
	d := directions[e.src.Rand().IntN(len(directions))]
	return BumpAction{Actor: actor, DX: d[0], DY: d[1]}
}
