package gamedata

import (
	"fmt"
	"math/rand/v2"
)

// FloorValue is one step of a floor-keyed step function.
type FloorValue struct {
	Floor int `json:"floor"` // Minimum floor at which Value applies
	Value int `json:"value"`
}

// WeightedEntry pairs a template ID with its relative draw weight.
type WeightedEntry struct {
	ID     string `json:"id"`
	Weight int    `json:"weight"`
}

// FloorChances lists the weighted entries that unlock at a minimum floor.
type FloorChances struct {
	Floor   int             `json:"floor"`
	Entries []WeightedEntry `json:"entries"`
}

// PopulationTables holds everything the generator needs to stock a floor.
type PopulationTables struct {
	ObjectiveItem      string         `json:"objectiveItem"`
	MaxItemsByFloor    []FloorValue   `json:"maxItemsByFloor"`
	MaxMonstersByFloor []FloorValue   `json:"maxMonstersByFloor"`
	ItemChances        []FloorChances `json:"itemChances"`
	MonsterChances     []FloorChances `json:"monsterChances"`
}

// LoadTables loads the population tables from the embedded tables.json file.
func LoadTables() (*PopulationTables, error) {
	tables, err := Load[PopulationTables]("tables.json")
	if err != nil {
		return nil, err
	}
	return &tables, nil
}

// MaxItems returns the per-room item cap for the floor.
func (t *PopulationTables) MaxItems(floor int) int {
	return MaxValueForFloor(t.MaxItemsByFloor, floor)
}

// MaxMonsters returns the per-room monster cap for the floor.
func (t *PopulationTables) MaxMonsters(floor int) int {
	return MaxValueForFloor(t.MaxMonstersByFloor, floor)
}

// Validate checks that every referenced template exists in the registry
// and that the objective item never appears in a weighted table.
func (t *PopulationTables) Validate(r *Registry) error {
	if t.ObjectiveItem != "" && r.GetItem(t.ObjectiveItem) == nil {
		return fmt.Errorf("objective item %q is not defined", t.ObjectiveItem)
	}
	for _, fc := range t.ItemChances {
		for _, e := range fc.Entries {
			if r.GetItem(e.ID) == nil {
				return fmt.Errorf("item table floor %d: unknown item %q", fc.Floor, e.ID)
			}
			if e.ID == t.ObjectiveItem {
				return fmt.Errorf("item table floor %d: objective item %q cannot be drawn", fc.Floor, e.ID)
			}
		}
	}
	for _, fc := range t.MonsterChances {
		for _, e := range fc.Entries {
			if r.GetActor(e.ID) == nil {
				return fmt.Errorf("monster table floor %d: unknown actor %q", fc.Floor, e.ID)
			}
		}
	}
	return nil
}

// MaxValueForFloor resolves a step function: the value of the highest
// threshold that is <= floor wins, and 0 applies before any threshold.
func MaxValueForFloor(table []FloorValue, floor int) int {
	value := 0
	best := -1
	for _, step := range table {
		if step.Floor <= floor && step.Floor > best {
			best = step.Floor
			value = step.Value
		}
	}
	return value
}

// ChancesForFloor accumulates every entry whose threshold is <= floor.
// Entries never expire once unlocked; a later threshold listing the same ID
// overrides its weight. The result keeps first-seen order so draws are
// reproducible for a given seed.
func ChancesForFloor(table []FloorChances, floor int) []WeightedEntry {
	ordered := make([]FloorChances, 0, len(table))
	for _, fc := range table {
		if fc.Floor <= floor {
			ordered = append(ordered, fc)
		}
	}
	// Stable insertion sort by threshold; tables are tiny.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].Floor < ordered[j-1].Floor; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	index := make(map[string]int)
	var result []WeightedEntry
	for _, fc := range ordered {
		for _, e := range fc.Entries {
			if i, ok := index[e.ID]; ok {
				result[i].Weight = e.Weight
				continue
			}
			index[e.ID] = len(result)
			result = append(result, e)
		}
	}
	return result
}

// DrawWeighted picks count IDs by weighted random choice with replacement.
// Entries with a non-positive weight are never drawn.
func DrawWeighted(rng *rand.Rand, entries []WeightedEntry, count int) []string {
	totalWeight := 0
	for _, e := range entries {
		if e.Weight > 0 {
			totalWeight += e.Weight
		}
	}
	if totalWeight <= 0 || count <= 0 {
		return nil
	}

	picks := make([]string, 0, count)
	for range count {
		// Pick a random value in the total weight range
		roll := rng.IntN(totalWeight)

		// Find which entry this roll corresponds to
		cumulative := 0
		for _, e := range entries {
			if e.Weight <= 0 {
				continue
			}
			cumulative += e.Weight
			if roll < cumulative {
				picks = append(picks, e.ID)
				break
			}
		}
	}
	return picks
}
