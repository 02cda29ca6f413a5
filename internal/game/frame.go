package game

import (
	"strconv"
	"strings"

	"github.com/samdwyer/embercrypt/internal/entity"
	"github.com/samdwyer/embercrypt/internal/save"
	"github.com/samdwyer/embercrypt/internal/view"
	"github.com/samdwyer/embercrypt/internal/world"
)

// Frame returns the read-only view of the current floor. Only entities on
// visible tiles are included.
func (e *Engine) Frame() *view.Frame {
	m := e.Map
	f := &view.Frame{
		Width:  m.Width,
		Height: m.Height,
		Cells:  make([]world.Glyph, 0, m.Width*m.Height),
	}
	for y := range m.Height {
		for x := range m.Width {
			f.Cells = append(f.Cells, m.GlyphAt(x, y))
		}
	}

	for _, ent := range m.RenderOrdered() {
		if !m.IsVisible(ent.X, ent.Y) {
			continue
		}
		f.Sprites = append(f.Sprites, view.Sprite{X: ent.X, Y: ent.Y, Rune: ent.Glyph.Rune, Color: ent.Glyph.Color})
	}

	p := e.Player
	if p.Fighter != nil {
		f.Status.HP, f.Status.MaxHP = p.Fighter.HP, p.Fighter.MaxHP
		f.Status.HPText = e.tr.T("hp", map[string]any{"current": p.Fighter.HP, "max": p.Fighter.MaxHP})
	}
	f.Status.FloorText = e.tr.T("floor", map[string]any{"dungeon_level": e.Floor})
	if l := p.Level; l != nil {
		f.Status.LevelText = e.tr.T("character_level", map[string]any{
			"level": l.Current,
			"xp":    l.XP,
			"next":  l.XPToNextLevel(),
		})
	}

	f.Messages = e.Messages.Lines()
	return f
}

// DisplayName is the name shown for ent, accounting for remains.
func (e *Engine) DisplayName(ent *entity.Entity) string {
	if ent.Corpse {
		return e.tr.T("remains", map[string]any{"entity": ent.Name})
	}
	return ent.Name
}

// LookAt names the entities on a visible tile, stacking duplicates as
// "Name(xN)".
func (e *Engine) LookAt(x, y int) string {
	if !e.Map.IsVisible(x, y) {
		return ""
	}
	var (
		names  []string
		counts = map[string]int{}
	)
	for _, ent := range e.Map.EntitiesAt(x, y) {
		name := e.DisplayName(ent)
		if counts[name] == 0 {
			names = append(names, name)
		}
		counts[name]++
	}
	parts := make([]string, 0, len(names))
	for _, name := range names {
		if n := counts[name]; n > 1 {
			name += "(x" + strconv.Itoa(n) + ")"
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

// menu builds the title screen. Continue is dimmed when there is no save.
func (g *Game) menu() *view.Menu {
	tr := g.engine.tr
	m := &view.Menu{
		Title:    tr.T("game_title", nil),
		Subtitle: tr.T("author", nil),
		Options: []view.MenuOption{
			{Label: tr.T("new_game", nil)},
			{Label: tr.T("continue_game", nil), Disabled: !save.Exists(g.cfg.SavePath)},
			{Label: tr.T("quit_game", nil)},
		},
		Notice: g.notice,
	}
	if len(g.recent) == 0 {
		return m
	}
	m.History = append(m.History, tr.T("recent_runs", nil))
	for _, run := range g.recent {
		m.History = append(m.History, tr.T("run_summary", map[string]any{
			"outcome": tr.T("outcome_"+string(run.Outcome), nil),
			"floor":   run.Floor,
			"level":   run.CharacterLevel,
			"kills":   run.Kills,
			"turns":   run.Turns,
		}))
	}
	return m
}

// frame composes the engine frame with the overlays of the input mode.
func (g *Game) frame() *view.Frame {
	tr := g.engine.tr
	if g.state == StateMenu || g.engine.Map == nil {
		return &view.Frame{Menu: g.menu()}
	}

	f := g.engine.Frame()
	switch g.state {
	case StateInventory:
		f.Overlay = g.inventoryOverlay()
	case StateTargeting:
		cursor := g.cursor
		f.Cursor = &cursor
		f.Look = g.engine.LookAt(cursor.X, cursor.Y)
	case StateLevelUp:
		f.Overlay = &view.Overlay{
			Title: tr.T("level_up_title", nil),
			Lines: []string{
				tr.T("level_up_prompt", nil),
				tr.T("constitution_option", map[string]any{"hp": entity.ConstitutionBonus}),
				tr.T("strength_option", map[string]any{"power": entity.StrengthBonus}),
				tr.T("agility_option", map[string]any{"defense": entity.AgilityBonus}),
			},
		}
	case StateDead:
		f.Overlay = &view.Overlay{Lines: []string{tr.T("game_over", nil)}}
	case StateVictory:
		f.Overlay = &view.Overlay{Lines: []string{tr.T("victory", nil)}}
	}
	return f
}

// inventoryOverlay lists carried items under selection letters.
func (g *Game) inventoryOverlay() *view.Overlay {
	tr := g.engine.tr
	var title string
	switch g.invMode {
	case CmdDrop:
		title = tr.T("drop_title", nil)
	case CmdEquip:
		title = tr.T("equip_title", nil)
	default:
		title = tr.T("inventory_title", nil)
	}

	o := &view.Overlay{Title: title}
	p := g.engine.Player
	if p.Inventory == nil || len(p.Inventory.Items) == 0 {
		o.Lines = []string{tr.T("inventory_empty", nil)}
		return o
	}
	for i, item := range p.Inventory.Items {
		line := "(" + string(rune('a'+i)) + ") " + item.Name
		if p.Equipment != nil && p.Equipment.IsEquipped(item) {
			line += " " + tr.T("equipped_suffix", nil)
		}
		o.Lines = append(o.Lines, line)
	}
	return o
}
