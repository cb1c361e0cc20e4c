package rule

import (
	"sync"

	"github.com/solguard/solguard/internal/errs"
)

// Registry is an ordered set of rule instances keyed by rule_id.
// Registration order is iteration order; rules run deterministically in
// that order per file.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Rule)}
}

// Register adds r to the registry. Fails with DuplicateRule if r's id is
// already present.
func (reg *Registry) Register(r Rule) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	id := r.Metadata().ID
	if _, exists := reg.byID[id]; exists {
		return &errs.DuplicateRule{RuleID: id}
	}
	reg.byID[id] = r
	reg.order = append(reg.order, id)
	return nil
}

// Get returns the rule registered under id, if any.
func (reg *Registry) Get(id string) (Rule, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	r, ok := reg.byID[id]
	return r, ok
}

// All returns every registered rule in registration order.
func (reg *Registry) All() []Rule {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	out := make([]Rule, 0, len(reg.order))
	for _, id := range reg.order {
		out = append(out, reg.byID[id])
	}
	return out
}

// AllByCategory returns every registered rule whose Metadata().Category
// equals category, in registration order.
func (reg *Registry) AllByCategory(category string) []Rule {
	var out []Rule
	for _, r := range reg.All() {
		if r.Metadata().Category == category {
			out = append(out, r)
		}
	}
	return out
}

// AllBySeverity returns every registered rule whose Metadata().Severity
// equals severity, in registration order.
func (reg *Registry) AllBySeverity(severity string) []Rule {
	var out []Rule
	for _, r := range reg.All() {
		if r.Metadata().Severity == severity {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of registered rules.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.order)
}
