package toolhub

import (
	"context"

	"go.uber.org/zap"
)

// Catalog aggregates tool descriptors from registered providers.
//
// Providers are held in a fixed registration order. Catalog assembly never
// fails as a whole: a provider whose ListTools errors contributes zero tools
// and the failure is logged.
type Catalog struct {
	providers []Provider
	logger    *zap.Logger
}

// NewCatalog creates a Catalog over the given providers. The provider slice
// is not copied; the catalog holds a read reference and never mutates it.
func NewCatalog(providers []Provider, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{providers: providers, logger: logger}
}

// ListAll queries every provider and returns their tools concatenated in
// registration order. An empty result means "no tools available", not an
// error.
func (c *Catalog) ListAll(ctx context.Context) []ToolDescriptor {
	var all []ToolDescriptor
	for _, p := range c.providers {
		if !p.Connected() {
			c.logger.Warn("skipping disconnected provider",
				zap.String("provider", p.Name()),
			)
			continue
		}
		tools, err := listToolsSafe(ctx, p)
		if err != nil {
			c.logger.Warn("provider failed to list tools",
				zap.String("provider", p.Name()),
				zap.Error(err),
			)
			continue
		}
		for _, t := range tools {
			t.Provider = p.Name()
			all = append(all, t)
		}
	}
	return all
}

// Snapshot captures the current catalog contents as an immutable per-session
// view. Name lookup resolves to the first registered provider's descriptor.
func (c *Catalog) Snapshot(ctx context.Context) *Snapshot {
	tools := c.ListAll(ctx)
	byName := make(map[string]ToolDescriptor, len(tools))
	for _, t := range tools {
		if _, exists := byName[t.Name]; !exists {
			byName[t.Name] = t
		}
	}
	return &Snapshot{tools: tools, byName: byName}
}

// listToolsSafe calls ListTools and converts a panic into an error, so a
// misbehaving provider cannot take down catalog assembly.
func listToolsSafe(ctx context.Context, p Provider) (tools []ToolDescriptor, err error) {
	defer func() {
		if r := recover(); r != nil {
			tools = nil
			err = &providerPanicError{provider: p.Name(), value: r}
		}
	}()
	return p.ListTools(ctx)
}

// Snapshot is a frozen view of the catalog taken at session start.
type Snapshot struct {
	tools  []ToolDescriptor
	byName map[string]ToolDescriptor
}

// Tools returns the snapshot's descriptors in catalog order.
func (s *Snapshot) Tools() []ToolDescriptor {
	out := make([]ToolDescriptor, len(s.tools))
	copy(out, s.tools)
	return out
}

// Find returns the descriptor for a tool name, first-registered wins.
func (s *Snapshot) Find(name string) (ToolDescriptor, bool) {
	d, ok := s.byName[name]
	return d, ok
}

// Len returns the number of descriptors in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.tools)
}
