package panels

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// GenerateFunc produces a panel's output from its field values.
type GenerateFunc func(Values) string

// Panel binds a descriptor to its generator.
type Panel struct {
	Descriptor
	generate GenerateFunc
}

// New constructs a panel. The descriptor fields are sorted by order.
func New(desc Descriptor, generate GenerateFunc) Panel {
	desc.Fields = append([]Field(nil), desc.Fields...)
	SortFields(desc.Fields)
	return Panel{Descriptor: desc, generate: generate}
}

// Generate applies descriptor defaults to values and returns the generator
// output. A panel without a generator returns "".
func (p Panel) Generate(values Values) string {
	if p.generate == nil {
		return ""
	}
	return p.generate(values.Normalize().WithDefaults(p.Descriptor))
}

// Registry stores panels by ID.
type Registry struct {
	mu     sync.RWMutex
	panels map[string]Panel
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		panels: make(map[string]Panel),
	}
}

// Register adds a panel. Empty and duplicate IDs are rejected.
func (r *Registry) Register(panel Panel) error {
	id := strings.TrimSpace(panel.ID)
	if id == "" {
		return errors.New("panels: panel id is required")
	}
	if panel.generate == nil {
		return fmt.Errorf("panels: panel %q has no generator", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.panels[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePanel, id)
	}
	panel.ID = id
	r.panels[id] = panel
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(panel Panel) {
	if err := r.Register(panel); err != nil {
		panic(err)
	}
}

// Get retrieves a panel by ID.
func (r *Registry) Get(id string) (Panel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	panel, ok := r.panels[id]
	if !ok {
		return Panel{}, fmt.Errorf("%w: %q", ErrPanelNotFound, id)
	}
	return panel, nil
}

// Has reports whether a panel is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.panels[id]
	return ok
}

// List returns panels ordered by descriptor order, then ID.
func (r *Registry) List() []Panel {
	r.mu.RLock()
	out := make([]Panel, 0, len(r.panels))
	for _, panel := range r.panels {
		out = append(out, panel)
	}
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order == out[j].Order {
			return out[i].ID < out[j].ID
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// IDs returns the registered IDs in List order.
func (r *Registry) IDs() []string {
	panels := r.List()
	ids := make([]string, 0, len(panels))
	for _, panel := range panels {
		ids = append(ids, panel.ID)
	}
	return ids
}

// Descriptors returns the descriptors in List order.
func (r *Registry) Descriptors() []Descriptor {
	panels := r.List()
	out := make([]Descriptor, 0, len(panels))
	for _, panel := range panels {
		out = append(out, panel.Descriptor)
	}
	return out
}
