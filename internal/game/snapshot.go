package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/embercrypt/internal/entity"
	"github.com/samdwyer/embercrypt/internal/gamedata"
	"github.com/samdwyer/embercrypt/internal/save"
	"github.com/samdwyer/embercrypt/internal/view"
	"github.com/samdwyer/embercrypt/internal/world"
)

// Snapshot captures the run. It must only be called between turns.
func (e *Engine) Snapshot() (*save.State, error) {
	if e.Player == nil || e.Map == nil {
		return nil, ErrNoRun
	}
	rng, err := e.src.State()
	if err != nil {
		return nil, fmt.Errorf("snapshot rng: %w", err)
	}

	s := &save.State{
		Version:        save.Version,
		RunID:          e.RunID,
		Floor:          e.Floor,
		Turn:           e.Turn,
		Kills:          e.Kills,
		AmuletPlaced:   e.AmuletPlaced,
		AmuletAcquired: e.AmuletAcquired,
		RNG:            rng,
		PlayerID:       e.Player.ID.String(),
		Map:            snapshotMap(e.Map),
	}

	seen := make(map[*entity.Entity]bool)
	var collect func(*entity.Entity)
	collect = func(ent *entity.Entity) {
		if seen[ent] {
			return
		}
		seen[ent] = true
		s.Entities = append(s.Entities, snapshotEntity(ent))
		if ent.Inventory != nil {
			for _, item := range ent.Inventory.Items {
				collect(item)
			}
		}
	}
	for _, ent := range e.Map.Entities() {
		collect(ent)
	}

	for _, line := range e.Messages.Lines() {
		s.Messages = append(s.Messages, save.MessageState{
			Key:    line.Key,
			Params: line.Params,
			Text:   line.Text,
			Tone:   int(line.Tone),
			Count:  line.Count,
		})
	}
	return s, nil
}

// Restore replaces the current run with a snapshot.
func (e *Engine) Restore(s *save.State) error {
	if s.Version != save.Version {
		return fmt.Errorf("%w: %d", save.ErrVersion, s.Version)
	}

	m, err := restoreMap(s.Map)
	if err != nil {
		return err
	}

	byID := make(map[string]*entity.Entity, len(s.Entities))
	for _, es := range s.Entities {
		ent, err := restoreEntity(es)
		if err != nil {
			return err
		}
		byID[es.ID] = ent
	}

	// Second pass resolves references between entities.
	for _, es := range s.Entities {
		ent := byID[es.ID]
		if es.Inventory != nil {
			for _, id := range es.Inventory.Items {
				item, ok := byID[id]
				if !ok {
					return fmt.Errorf("restore %s: unknown inventory item %s", es.ID, id)
				}
				ent.Inventory.Items = append(ent.Inventory.Items, item)
			}
		}
		for slot, id := range es.Equipment {
			if id == "" || slot >= len(ent.Equipment.Slots) {
				continue
			}
			item, ok := byID[id]
			if !ok {
				return fmt.Errorf("restore %s: unknown equipped item %s", es.ID, id)
			}
			ent.Equipment.Slots[slot] = item
		}
		switch entity.LocationKind(es.Location) {
		case entity.OnMap:
			m.Add(ent)
		case entity.InInventory:
			holder, ok := byID[es.HolderID]
			if !ok {
				return fmt.Errorf("restore %s: unknown holder %s", es.ID, es.HolderID)
			}
			ent.Location = entity.Location{Kind: entity.InInventory, Holder: holder}
		}
	}

	player, ok := byID[s.PlayerID]
	if !ok {
		return fmt.Errorf("restore: player %s not found", s.PlayerID)
	}
	if err := e.src.Restore(s.RNG); err != nil {
		return err
	}

	lines := make([]view.Line, 0, len(s.Messages))
	for _, ms := range s.Messages {
		lines = append(lines, view.Line{
			Key:    ms.Key,
			Params: ms.Params,
			Text:   ms.Text,
			Tone:   view.Tone(ms.Tone),
			Count:  ms.Count,
		})
	}

	e.RunID = s.RunID
	e.Map = m
	e.Player = player
	e.Floor = s.Floor
	e.Turn = s.Turn
	e.Kills = s.Kills
	e.AmuletPlaced = s.AmuletPlaced
	e.AmuletAcquired = s.AmuletAcquired
	e.Messages.Reset(lines)
	e.Messages.Translate(e.tr.T)
	e.Phase = e.settledPhase()

	e.updateFOV()
	return nil
}

func snapshotMap(m *world.Map) save.MapState {
	ms := save.MapState{
		Width:       m.Width,
		Height:      m.Height,
		Tiles:       make([]uint8, 0, m.Width*m.Height),
		Explored:    make([]bool, 0, m.Width*m.Height),
		DownstairsX: m.Downstairs.X,
		DownstairsY: m.Downstairs.Y,
	}
	for y := range m.Height {
		for x := range m.Width {
			ms.Tiles = append(ms.Tiles, uint8(m.TileAt(x, y)))
			ms.Explored = append(ms.Explored, m.IsExplored(x, y))
		}
	}
	return ms
}

func restoreMap(ms save.MapState) (*world.Map, error) {
	n := ms.Width * ms.Height
	if ms.Width <= 0 || ms.Height <= 0 || len(ms.Tiles) != n || len(ms.Explored) != n {
		return nil, fmt.Errorf("restore map: inconsistent %dx%d grid", ms.Width, ms.Height)
	}
	m := world.NewMap(ms.Width, ms.Height)
	for y := range ms.Height {
		for x := range ms.Width {
			i := y*ms.Width + x
			m.SetTile(x, y, world.TileKind(ms.Tiles[i]))
			if ms.Explored[i] {
				m.MarkExplored(x, y)
			}
		}
	}
	m.Downstairs = world.Point{X: ms.DownstairsX, Y: ms.DownstairsY}
	return m, nil
}

func snapshotEntity(ent *entity.Entity) save.EntityState {
	es := save.EntityState{
		ID:             ent.ID.String(),
		TemplateID:     ent.TemplateID,
		Kind:           uint8(ent.Kind),
		Name:           ent.Name,
		Glyph:          ent.Glyph.Rune,
		Color:          gamedata.FormatHexColor(ent.Glyph.Color),
		X:              ent.X,
		Y:              ent.Y,
		BlocksMovement: ent.BlocksMovement,
		RenderOrder:    uint8(ent.RenderOrder),
		Corpse:         ent.Corpse,
		Location:       uint8(ent.Location.Kind),
		Objective:      ent.Objective,
	}
	if h := ent.Location.Holder; h != nil {
		es.HolderID = h.ID.String()
	}
	if f := ent.Fighter; f != nil {
		es.Fighter = &save.FighterState{MaxHP: f.MaxHP, HP: f.HP, BaseDefense: f.BaseDefense, BasePower: f.BasePower}
	}
	if inv := ent.Inventory; inv != nil {
		es.Inventory = &save.InventoryState{Capacity: inv.Capacity, Items: make([]string, 0, len(inv.Items))}
		for _, item := range inv.Items {
			es.Inventory.Items = append(es.Inventory.Items, item.ID.String())
		}
	}
	if eq := ent.Equipment; eq != nil {
		es.Equipment = make([]string, len(eq.Slots))
		for i, item := range eq.Slots {
			if item != nil {
				es.Equipment[i] = item.ID.String()
			}
		}
	}
	es.AI = snapshotAI(ent.AI)
	if l := ent.Level; l != nil {
		es.Level = &save.LevelState{
			Current:       l.Current,
			XP:            l.XP,
			XPGiven:       l.XPGiven,
			LevelUpBase:   l.LevelUpBase,
			LevelUpFactor: l.LevelUpFactor,
		}
	}
	if c := ent.Consumable; c != nil {
		es.Consumable = &save.ConsumableState{
			Kind:         uint8(c.Kind),
			Amount:       c.Amount,
			Damage:       c.Damage,
			Radius:       c.Radius,
			MaximumRange: c.MaximumRange,
			Turns:        c.Turns,
		}
	}
	if q := ent.Equippable; q != nil {
		es.Equippable = &save.EquippableState{Slot: uint8(q.Slot), PowerBonus: q.PowerBonus, DefenseBonus: q.DefenseBonus}
	}
	return es
}

func restoreEntity(es save.EntityState) (*entity.Entity, error) {
	id, err := uuid.Parse(es.ID)
	if err != nil {
		return nil, fmt.Errorf("restore entity %q: %w", es.Name, err)
	}
	color := tcell.ColorDefault
	if es.Color != "" {
		if color, err = gamedata.ParseHexColor(es.Color); err != nil {
			return nil, fmt.Errorf("restore entity %q: %w", es.Name, err)
		}
	}
	ent := &entity.Entity{
		ID:             id,
		TemplateID:     es.TemplateID,
		Kind:           entity.Kind(es.Kind),
		Name:           es.Name,
		Glyph:          entity.Glyph{Rune: es.Glyph, Color: color},
		X:              es.X,
		Y:              es.Y,
		BlocksMovement: es.BlocksMovement,
		RenderOrder:    entity.RenderOrder(es.RenderOrder),
		Corpse:         es.Corpse,
		Objective:      es.Objective,
	}
	if f := es.Fighter; f != nil {
		ent.Fighter = &entity.Fighter{MaxHP: f.MaxHP, HP: f.HP, BaseDefense: f.BaseDefense, BasePower: f.BasePower}
	}
	if inv := es.Inventory; inv != nil {
		ent.Inventory = entity.NewInventory(inv.Capacity)
	}
	if es.Equipment != nil {
		ent.Equipment = &entity.Equipment{}
	}
	ent.AI = restoreAI(es.AI)
	if l := es.Level; l != nil {
		ent.Level = &entity.Level{
			Current:       l.Current,
			XP:            l.XP,
			XPGiven:       l.XPGiven,
			LevelUpBase:   l.LevelUpBase,
			LevelUpFactor: l.LevelUpFactor,
		}
	}
	if c := es.Consumable; c != nil {
		ent.Consumable = &entity.Consumable{
			Kind:         entity.ConsumableKind(c.Kind),
			Amount:       c.Amount,
			Damage:       c.Damage,
			Radius:       c.Radius,
			MaximumRange: c.MaximumRange,
			Turns:        c.Turns,
		}
	}
	if q := es.Equippable; q != nil {
		ent.Equippable = &entity.Equippable{Slot: entity.Slot(q.Slot), PowerBonus: q.PowerBonus, DefenseBonus: q.DefenseBonus}
	}
	return ent, nil
}

func snapshotAI(ai *entity.AI) *save.AIState {
	if ai == nil {
		return nil
	}
	return &save.AIState{
		Kind:           uint8(ai.Kind),
		TurnsRemaining: ai.TurnsRemaining,
		Previous:       snapshotAI(ai.Previous),
		HasTarget:      ai.HasTarget,
		TargetX:        ai.TargetX,
		TargetY:        ai.TargetY,
	}
}

func restoreAI(s *save.AIState) *entity.AI {
	if s == nil {
		return nil
	}
	return &entity.AI{
		Kind:           entity.AIKind(s.Kind),
		TurnsRemaining: s.TurnsRemaining,
		Previous:       restoreAI(s.Previous),
		HasTarget:      s.HasTarget,
		TargetX:        s.TargetX,
		TargetY:        s.TargetY,
	}
}
