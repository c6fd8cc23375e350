package check

import (
	"sort"
	"sync"
)

// registry holds rule definitions keyed by ID.
type registry struct {
	mu    sync.RWMutex
	rules map[string]RuleDef
}

var globalRegistry = &registry{rules: make(map[string]RuleDef)}

// Register adds a rule definition to the global registry. Rules call
// this from init(), so importing a rules package is enough to make
// its rules available. Registering the same ID twice overwrites the
// earlier definition.
func Register(def RuleDef) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[def.ID] = def
}

// GetAll returns every registered rule sorted by ID.
func GetAll() []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	defs := make([]RuleDef, 0, len(globalRegistry.rules))
	for _, def := range globalRegistry.rules {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// GetByID looks up a single rule by its identifier.
func GetByID(id string) (RuleDef, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	def, ok := globalRegistry.rules[id]
	return def, ok
}

// GetByGroup returns the rules in the given group sorted by ID.
func GetByGroup(group string) []RuleDef {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var defs []RuleDef
	for _, def := range globalRegistry.rules {
		if def.Group == group {
			defs = append(defs, def)
		}
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Intended for tests.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]RuleDef)
}
