package gamedata

import (
	"errors"
	"fmt"
)

// Registry holds loaded actor and item definitions keyed by ID.
type Registry struct {
	actors    map[string]*ActorDef
	items     map[string]*ItemDef
	allActors []ActorDef
	allItems  []ItemDef
}

// NewRegistry creates a registry from loaded definitions.
// Duplicate IDs are rejected.
func NewRegistry(actors []ActorDef, items []ItemDef) (*Registry, error) {
	registry := &Registry{
		actors:    make(map[string]*ActorDef, len(actors)),
		items:     make(map[string]*ItemDef, len(items)),
		allActors: actors,
		allItems:  items,
	}
	for i := range actors {
		if _, exists := registry.actors[actors[i].ID]; exists {
			return nil, fmt.Errorf("duplicate actor id %q", actors[i].ID)
		}
		registry.actors[actors[i].ID] = &actors[i]
	}
	for i := range items {
		if _, exists := registry.items[items[i].ID]; exists {
			return nil, fmt.Errorf("duplicate item id %q", items[i].ID)
		}
		registry.items[items[i].ID] = &items[i]
	}
	return registry, nil
}

// LoadRegistry loads and creates a registry from the embedded JSON files.
func LoadRegistry() (*Registry, error) {
	actors, err := LoadActors()
	if err != nil {
		return nil, err
	}
	if len(actors) == 0 {
		return nil, errors.New("no actors loaded from actors.json")
	}
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	return NewRegistry(actors, items)
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetActor returns the actor definition with the given ID, or nil if not found.
func (r *Registry) GetActor(id string) *ActorDef {
	return r.actors[id]
}

// GetItem returns the item definition with the given ID, or nil if not found.
func (r *Registry) GetItem(id string) *ItemDef {
	return r.items[id]
}

// Actors returns all actor definitions in file order.
func (r *Registry) Actors() []ActorDef {
	return r.allActors
}

// Items returns all item definitions in file order.
func (r *Registry) Items() []ItemDef {
	return r.allItems
}

// Count returns the number of templates in the registry.
func (r *Registry) Count() int {
	return len(r.allActors) + len(r.allItems)
}
