package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/embercrypt/internal/entity"
	"github.com/samdwyer/embercrypt/internal/history"
	"github.com/samdwyer/embercrypt/internal/save"
	"github.com/samdwyer/embercrypt/internal/telemetry"
	"github.com/samdwyer/embercrypt/internal/ui"
	"github.com/samdwyer/embercrypt/internal/view"
)

// ErrQuit ends the session. A run in progress is saved first.
var ErrQuit = errors.New("quit")

// recentRuns is how many finished runs the menu lists.
const recentRuns = 5

// Game is the interactive shell around an Engine: it owns the screen,
// decodes keys according to the current input mode and persists runs.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *Engine
	history  *history.Store // Optional
	recent   []history.Run  // Newest first, for the menu
	log      zerolog.Logger
	state    State
	running  bool

	notice   string      // Menu feedback
	invMode  CommandKind // CmdUse, CmdDrop or CmdEquip while in StateInventory
	targeted *entity.Entity
	cursor   view.Cursor
}

// New creates a game shell drawing to screen. store may be nil.
func New(cfg Config, screen *ui.Screen, engine *Engine, store *history.Store, log zerolog.Logger) *Game {
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		engine:   engine,
		history:  store,
		log:      log,
		state:    StateMenu,
		running:  true,
	}
}

// State returns the current input mode.
func (g *Game) State() State {
	return g.state
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer func() {
		if r := recover(); r != nil {
			g.saveRun(ctx)
			g.screen.Close()
			panic(r)
		}
	}()

	g.refreshHistory(ctx)
	for g.running {
		g.renderer.Render(g.frame())

		ev := g.screen.PollEvent()
		if ev == nil {
			break
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if err := g.handleKeyEvent(ctx, ev); err != nil {
				if errors.Is(err, ErrQuit) {
					g.quit(ctx)
					continue
				}
				g.fault(err)
			}
		case *tcell.EventResize:
			g.screen.Sync()
		}
	}

	g.screen.Close()
	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}

// fault reports an unexpected error without ending the session.
func (g *Game) fault(err error) {
	g.log.Error().Err(err).Str("state", g.state.String()).Msg("unexpected error")
	if g.inRun() {
		g.engine.message(view.ToneError, "unexpected_error", map[string]any{"error": err.Error()})
		return
	}
	g.notice = g.engine.tr.T("unexpected_error", map[string]any{"error": err.Error()})
}

// handleKeyEvent dispatches a key according to the input mode.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	if ev.Key() == tcell.KeyCtrlC {
		return ErrQuit
	}

	switch g.state {
	case StateMenu:
		return g.handleMenuKey(ctx, ev)
	case StatePlaying:
		return g.handlePlayingKey(ctx, ev)
	case StateInventory:
		return g.handleInventoryKey(ctx, ev)
	case StateTargeting:
		return g.handleTargetingKey(ctx, ev)
	case StateLevelUp:
		return g.handleLevelUpKey(ctx, ev)
	case StateDead, StateVictory:
		g.state = StateMenu
	}
	return nil
}

// ============================================================================
// Menu
// ============================================================================

func (g *Game) handleMenuKey(ctx context.Context, ev *tcell.EventKey) error {
	if isCancel(ev) {
		return ErrQuit
	}
	switch runeKey(ev) {
	case 'n', 'N':
		if err := g.engine.NewGame(ctx); err != nil {
			return fmt.Errorf("new game: %w", err)
		}
		g.notice = ""
		g.state = StatePlaying
	case 'c', 'C':
		g.continueGame(ctx)
	case 'q', 'Q':
		return ErrQuit
	}
	return nil
}

// continueGame loads the save file. Failures stay in the menu with a notice.
func (g *Game) continueGame(ctx context.Context) {
	tr := g.engine.tr
	s, err := save.Load(ctx, g.cfg.SavePath)
	if err == nil {
		err = g.engine.Restore(s)
	}
	switch {
	case errors.Is(err, save.ErrNoSave):
		g.notice = tr.T("no_saved_game", nil)
		return
	case err != nil:
		g.log.Warn().Err(err).Str("path", g.cfg.SavePath).Msg("load failed")
		g.notice = tr.T("failed_load_game", map[string]any{"error": err.Error()})
		return
	}
	g.notice = ""
	g.syncState(ctx)
}

// ============================================================================
// Playing
// ============================================================================

func (g *Game) handlePlayingKey(ctx context.Context, ev *tcell.EventKey) error {
	if isCancel(ev) {
		return ErrQuit
	}
	if dx, dy, ok := direction(ev); ok {
		return g.perform(ctx, Move(dx, dy))
	}
	if isWait(ev) {
		return g.perform(ctx, Wait())
	}

	switch runeKey(ev) {
	case 'g', ',':
		return g.perform(ctx, Pickup())
	case '>':
		return g.perform(ctx, Descend())
	case 'i':
		g.openInventory(CmdUse)
	case 'd':
		g.openInventory(CmdDrop)
	case 'e':
		g.openInventory(CmdEquip)
	}
	return nil
}

// perform hands a command to the engine and follows the resulting phase.
func (g *Game) perform(ctx context.Context, cmd Command) error {
	if _, err := g.engine.Handle(ctx, cmd); err != nil {
		return err
	}
	g.syncState(ctx)
	return nil
}

// syncState maps the engine phase to an input mode and closes finished runs.
func (g *Game) syncState(ctx context.Context) {
	switch g.engine.Phase {
	case PhaseDefeat:
		g.finishRun(ctx, history.OutcomeDeath)
		g.state = StateDead
	case PhaseVictory:
		g.finishRun(ctx, history.OutcomeVictory)
		g.state = StateVictory
	case PhaseLevelUp:
		g.state = StateLevelUp
	default:
		g.state = StatePlaying
	}
}

// ============================================================================
// Inventory and targeting
// ============================================================================

func (g *Game) openInventory(mode CommandKind) {
	g.invMode = mode
	g.state = StateInventory
}

func (g *Game) handleInventoryKey(ctx context.Context, ev *tcell.EventKey) error {
	if isCancel(ev) {
		g.state = StatePlaying
		return nil
	}
	i, ok := letterIndex(ev)
	inv := g.engine.Player.Inventory
	if !ok || inv == nil || i >= len(inv.Items) {
		return nil
	}
	item := inv.Items[i]

	switch g.invMode {
	case CmdDrop:
		return g.perform(ctx, Drop(item))
	case CmdEquip:
		return g.perform(ctx, Equip(item))
	}

	if c := item.Consumable; c != nil && c.NeedsTarget() {
		g.targeted = item
		g.cursor = view.Cursor{X: g.engine.Player.X, Y: g.engine.Player.Y, Radius: c.TargetRadius()}
		g.engine.message(view.ToneStatus, "select_location", nil)
		g.state = StateTargeting
		return nil
	}
	return g.perform(ctx, Use(item, g.engine.Player.X, g.engine.Player.Y))
}

func (g *Game) handleTargetingKey(ctx context.Context, ev *tcell.EventKey) error {
	if isCancel(ev) {
		g.targeted = nil
		g.state = StatePlaying
		return nil
	}
	if isConfirm(ev) {
		item := g.targeted
		g.targeted = nil
		return g.perform(ctx, Use(item, g.cursor.X, g.cursor.Y))
	}
	if dx, dy, ok := direction(ev); ok {
		m := g.engine.Map
		if x, y := g.cursor.X+dx, g.cursor.Y+dy; m.InBounds(x, y) {
			g.cursor.X, g.cursor.Y = x, y
		}
	}
	return nil
}

func (g *Game) handleLevelUpKey(ctx context.Context, ev *tcell.EventKey) error {
	var choice entity.LevelChoice
	switch runeKey(ev) {
	case 'a':
		choice = entity.ChoiceConstitution
	case 'b':
		choice = entity.ChoiceStrength
	case 'c':
		choice = entity.ChoiceAgility
	default:
		return nil
	}
	return g.perform(ctx, LevelUp(choice))
}

// ============================================================================
// Persistence
// ============================================================================

// inRun reports whether an unfinished run is loaded.
func (g *Game) inRun() bool {
	switch g.state {
	case StatePlaying, StateInventory, StateTargeting, StateLevelUp:
		return g.engine.Player != nil
	}
	return false
}

// quit saves any run in progress and stops the loop.
func (g *Game) quit(ctx context.Context) {
	if g.inRun() {
		g.saveRun(ctx)
		g.record(ctx, history.OutcomeQuit)
	}
	g.running = false
}

// saveRun writes a best-effort snapshot of the run in progress.
func (g *Game) saveRun(ctx context.Context) {
	if !g.inRun() {
		return
	}
	s, err := g.engine.Snapshot()
	if err == nil {
		err = save.Write(ctx, g.cfg.SavePath, s)
	}
	if err != nil {
		g.log.Error().Err(err).Str("path", g.cfg.SavePath).Msg("save failed")
	}
}

// finishRun records a completed run and removes its save.
func (g *Game) finishRun(ctx context.Context, outcome history.Outcome) {
	if err := save.Delete(g.cfg.SavePath); err != nil {
		g.log.Warn().Err(err).Str("path", g.cfg.SavePath).Msg("delete save failed")
	}
	g.record(ctx, outcome)
}

// record stores the run in the history database when one is configured.
func (g *Game) record(ctx context.Context, outcome history.Outcome) {
	if g.history == nil {
		return
	}
	e := g.engine
	level := 0
	if e.Player.Level != nil {
		level = e.Player.Level.Current
	}
	run := history.Run{
		ID:             e.RunID,
		Outcome:        outcome,
		Floor:          e.Floor,
		Turns:          e.Turn,
		CharacterLevel: level,
		Kills:          e.Kills,
		FinishedAt:     time.Now(),
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.finish")
	span.SetAttributes(attribute.String("outcome", string(outcome)))
	defer span.End()

	if err := g.history.Record(ctx, run); err != nil {
		g.log.Error().Err(err).Str("run", run.ID).Msg("record run failed")
	}
	g.refreshHistory(ctx)
}

// refreshHistory reloads the runs listed under the menu.
func (g *Game) refreshHistory(ctx context.Context) {
	if g.history == nil {
		return
	}
	runs, err := g.history.Recent(ctx, recentRuns)
	if err != nil {
		g.log.Warn().Err(err).Msg("load history failed")
		return
	}
	g.recent = runs
}
