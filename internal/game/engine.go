package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/embercrypt/internal/combat"
	"github.com/samdwyer/embercrypt/internal/entity"
	apperrors "github.com/samdwyer/embercrypt/internal/errors"
	"github.com/samdwyer/embercrypt/internal/gamedata"
	"github.com/samdwyer/embercrypt/internal/i18n"
	"github.com/samdwyer/embercrypt/internal/random"
	"github.com/samdwyer/embercrypt/internal/telemetry"
	"github.com/samdwyer/embercrypt/internal/view"
	"github.com/samdwyer/embercrypt/internal/world"
)

// Template IDs the engine spawns directly.
const (
	playerTemplate = "player"
)

// startingKit is carried and equipped by every new character.
var startingKit = []string{"dagger", "leather_armor"}

// ErrNoRun is returned when a command arrives before a game was started.
var ErrNoRun = errors.New("no game in progress")

// Engine owns one run: the current floor, the player and the turn cycle.
// It is single-threaded; callers must not use it concurrently.
type Engine struct {
	cfg      Config
	catalog  *entity.Catalog
	tables   *gamedata.PopulationTables
	tr       *i18n.Translator
	log      zerolog.Logger
	src      *random.Source
	gen      *world.Generator
	resolver *combat.EffectResolver
	decider  func(*entity.Entity) Action // Picks non-player actions

	RunID          string
	Map            *world.Map
	Player         *entity.Entity
	Floor          int
	Turn           int
	Kills          int
	AmuletPlaced   bool
	AmuletAcquired bool
	Phase          Phase
	Messages       MessageLog
}

// NewEngine wires an engine. Call NewGame or Restore before Handle.
func NewEngine(cfg Config, catalog *entity.Catalog, tables *gamedata.PopulationTables, tr *i18n.Translator, src *random.Source, log zerolog.Logger) *Engine {
	e := &Engine{
		cfg:      cfg,
		catalog:  catalog,
		tables:   tables,
		tr:       tr,
		log:      log,
		src:      src,
		gen:      world.NewGenerator(cfg.GeneratorConfig(), catalog, tables, src.Rand()),
		resolver: combat.NewEffectResolver(),
	}
	e.decider = e.decide
	return e
}

// NewGame discards any current run and starts a fresh one on floor 1.
func (e *Engine) NewGame(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.new")
	defer span.End()

	player, err := e.catalog.Spawn(playerTemplate)
	if err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	for _, id := range startingKit {
		item, err := e.catalog.Spawn(id)
		if err != nil {
			return fmt.Errorf("spawn starting kit: %w", err)
		}
		if err := player.Carry(item); err != nil {
			return fmt.Errorf("carry starting kit: %w", err)
		}
		if item.Equippable != nil && player.Equipment != nil {
			player.Equipment.Toggle(item)
		}
	}

	m, report, err := e.gen.Generate(ctx, 1, player, false)
	if err != nil {
		return fmt.Errorf("generate floor 1: %w", err)
	}

	e.RunID = uuid.NewString()
	e.Map = m
	e.Player = player
	e.Floor = 1
	e.Turn = 0
	e.Kills = 0
	e.AmuletPlaced = report.ObjectivePlaced
	e.AmuletAcquired = false
	e.Phase = PhasePlayerTurn
	e.Messages.Reset(nil)

	e.updateFOV()
	e.message(view.ToneWelcome, "welcome_message", nil)

	span.SetAttributes(
		attribute.String("run.id", e.RunID),
		attribute.Int("dungeon.rooms", len(report.Rooms)),
	)
	return nil
}

// Handle performs one player command and, if it took a turn, the enemy
// phase after it. Impossible commands are reported in the message log and
// take no turn. Other errors are returned.
func (e *Engine) Handle(ctx context.Context, cmd Command) (bool, error) {
	if e.Player == nil || e.Map == nil {
		return false, ErrNoRun
	}
	if e.Phase.Over() {
		return false, nil
	}

	if cmd.Kind == CmdLevelUp {
		if e.Phase != PhaseLevelUp {
			return false, nil
		}
		e.Player.LevelUp(cmd.Choice)
		e.Phase = e.settledPhase()
		return false, nil
	}
	if e.Phase == PhaseLevelUp {
		return false, nil
	}

	action := e.actionFor(cmd)
	startX, startY := e.Player.Position()
	startFloor := e.Floor

	tracer := telemetry.Tracer("game")
	playerCtx, span := tracer.Start(ctx, "turn.player")
	span.SetAttributes(
		attribute.String("command", cmd.Kind.String()),
		attribute.Int("turn", e.Turn),
		attribute.Int("floor", e.Floor),
	)
	err := action.Perform(playerCtx, e)
	span.End()

	if err != nil {
		if imp, ok := apperrors.AsImpossible(err); ok {
			e.message(view.ToneImpossible, string(imp.Code), imp.Params)
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", cmd.Kind, err)
	}

	e.Turn++
	if x, y := e.Player.Position(); x != startX || y != startY || e.Floor != startFloor {
		e.updateFOV()
	}

	switch {
	case !e.Player.IsAlive():
		e.Phase = PhaseDefeat
		return true, nil
	case e.AmuletAcquired:
		e.Phase = PhaseVictory
		return true, nil
	}

	e.Phase = PhaseEnemyTurn
	e.enemyTurn(ctx)
	e.Phase = e.settledPhase()
	return true, nil
}

// actionFor builds the player action for a decoded command.
func (e *Engine) actionFor(cmd Command) Action {
	p := e.Player
	switch cmd.Kind {
	case CmdMove:
		return BumpAction{Actor: p, DX: cmd.DX, DY: cmd.DY}
	case CmdPickup:
		return PickupAction{Actor: p}
	case CmdDrop:
		return DropAction{Actor: p, Item: cmd.Item}
	case CmdEquip:
		return EquipAction{Actor: p, Item: cmd.Item}
	case CmdUse:
		return ItemAction{Actor: p, Item: cmd.Item, X: cmd.X, Y: cmd.Y}
	case CmdDescend:
		return TakeStairsAction{Actor: p}
	default:
		return WaitAction{Actor: p}
	}
}

// settledPhase is the phase to wait in once a turn has fully resolved.
func (e *Engine) settledPhase() Phase {
	switch {
	case !e.Player.IsAlive():
		return PhaseDefeat
	case e.AmuletAcquired:
		return PhaseVictory
	case e.Player.Level != nil && e.Player.Level.RequiresLevelUp():
		return PhaseLevelUp
	default:
		return PhasePlayerTurn
	}
}

// enemyTurn lets every other living actor act once, in floor order.
func (e *Engine) enemyTurn(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "turn.enemies")
	defer span.End()

	acted := 0
	for _, actor := range e.Map.Actors() {
		if actor == e.Player || !actor.IsAlive() {
			continue
		}
		acted++
		if err := e.act(ctx, actor); err != nil {
			if apperrors.IsImpossible(err) {
				continue
			}
			e.log.Error().Err(err).
				Str("actor", actor.Name).
				Int("floor", e.Floor).
				Int("turn", e.Turn).
				Msg("enemy action failed")
			e.message(view.ToneError, "unexpected_error", map[string]any{"error": err.Error()})
		}
		if !e.Player.IsAlive() {
			break
		}
	}
	span.SetAttributes(attribute.Int("actors", acted))
}

// act runs one actor's AI, converting a panic into an error so the
// remaining actors still get their turn.
func (e *Engine) act(ctx context.Context, actor *entity.Entity) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", actor.Name, r)
		}
	}()
	action := e.decider(actor)
	if action == nil {
		return nil
	}
	return action.Perform(ctx, e)
}

// updateFOV recomputes visibility around the player.
func (e *Engine) updateFOV() {
	e.Map.UpdateFOV(e.Player.X, e.Player.Y, e.cfg.FOVRadius)
}

// descend replaces the floor with a freshly generated one.
func (e *Engine) descend(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "floor.descend")
	defer span.End()

	floor := e.Floor + 1
	m, report, err := e.gen.Generate(ctx, floor, e.Player, e.AmuletPlaced)
	if err != nil {
		return fmt.Errorf("generate floor %d: %w", floor, err)
	}
	e.Map = m
	e.Floor = floor
	if report.ObjectivePlaced {
		e.AmuletPlaced = true
	}
	e.message(view.ToneDescend, "descend", nil)

	span.SetAttributes(attribute.Int("floor", floor))
	return nil
}

// message appends a translated line to the log. The key and params are
// kept so a restored log can be rendered in another locale.
func (e *Engine) message(tone view.Tone, key string, params map[string]any) {
	e.Messages.Append(view.Line{Key: key, Params: params, Text: e.tr.T(key, params), Tone: tone})
}

// reportEquipment logs equip and unequip changes.
func (e *Engine) reportEquipment(changes []entity.Change) {
	for _, c := range changes {
		params := map[string]any{"item_name": c.Item.Name}
		if c.Kind == entity.Equipped {
			e.message(view.ToneNormal, "equip_message", params)
		} else {
			e.message(view.ToneNormal, "unequip_message", params)
		}
	}
}

// applyEffects turns resolver events into messages and handles deaths.
func (e *Engine) applyEffects(result combat.EffectResult) {
	for _, ev := range result.Events {
		switch ev.Kind {
		case combat.EventHit, combat.EventDodge:
			params := map[string]any{"entity": ev.Source.Name, "target": ev.Target.Name}
			tone := view.ToneEnemyAttack
			if ev.Source == e.Player {
				tone = view.TonePlayerAttack
			}
			if ev.Kind == combat.EventHit {
				params["damage"] = ev.Amount
				e.message(tone, "attack_hit", params)
			} else {
				e.message(tone, "attack_dodge", params)
			}
		case combat.EventHeal:
			e.message(view.ToneHeal, "healing_consumable", map[string]any{"item": ev.Source.Name, "amount_recovered": ev.Amount})
		case combat.EventConfused:
			e.message(view.ToneStatus, "confusion_message", map[string]any{"target": ev.Target.Name})
		case combat.EventFireball:
			e.message(view.TonePlayerAttack, "fireball_message", map[string]any{"target": ev.Target.Name, "damage": ev.Amount})
		case combat.EventLightning:
			e.message(view.TonePlayerAttack, "lightning_message", map[string]any{"target": ev.Target.Name, "damage": ev.Amount})
		case combat.EventDeath:
			e.handleDeath(ev.Source, ev.Target)
		}
	}
}

// handleDeath reports a death and awards XP when the player made the kill.
func (e *Engine) handleDeath(killer, dead *entity.Entity) {
	if dead == e.Player {
		e.message(view.TonePlayerDeath, "player_death", nil)
		e.Phase = PhaseDefeat
		return
	}
	e.message(view.ToneEnemyDeath, "death_message", map[string]any{"entity": dead.Name})

	if killer != e.Player {
		return
	}
	e.Kills++
	if dead.Level == nil || e.Player.Level == nil {
		return
	}
	xp := dead.Level.XPGiven
	if xp <= 0 {
		return
	}
	e.message(view.ToneNormal, "xp_gain", map[string]any{"xp": xp})
	if e.Player.Level.AddXP(xp) {
		e.message(view.ToneLevelUp, "level_up", map[string]any{"level": e.Player.Level.Current + 1})
	}
}
