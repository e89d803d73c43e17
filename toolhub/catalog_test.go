package toolhub

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func toolNamed(name string) ToolDescriptor {
	return ToolDescriptor{Name: name, Description: "test tool " + name}
}

func TestCatalogConcatenatesInRegistrationOrder(t *testing.T) {
	a := &stubProvider{name: "a", connected: true, tools: []ToolDescriptor{toolNamed("alpha"), toolNamed("beta")}}
	b := &stubProvider{name: "b", connected: true, tools: []ToolDescriptor{toolNamed("gamma")}}

	c := NewCatalog([]Provider{a, b}, zap.NewNop())
	tools := c.ListAll(context.Background())
	if len(tools) != 3 {
		t.Fatalf("expected 3 tools, got %d", len(tools))
	}
	want := []string{"alpha", "beta", "gamma"}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("tool %d: expected %q, got %q", i, name, tools[i].Name)
		}
	}
}

func TestCatalogStampsOriginProvider(t *testing.T) {
	a := &stubProvider{name: "files", connected: true, tools: []ToolDescriptor{toolNamed("read")}}
	c := NewCatalog([]Provider{a}, zap.NewNop())
	tools := c.ListAll(context.Background())
	if tools[0].Provider != "files" {
		t.Errorf("expected provider stamp %q, got %q", "files", tools[0].Provider)
	}
}

func TestCatalogFailingProviderContributesNothing(t *testing.T) {
	bad := &stubProvider{name: "bad", connected: true, listErr: errors.New("connection reset")}
	good := &stubProvider{name: "good", connected: true, tools: []ToolDescriptor{toolNamed("ok")}}

	c := NewCatalog([]Provider{bad, good}, zap.NewNop())
	tools := c.ListAll(context.Background())
	if len(tools) != 1 || tools[0].Name != "ok" {
		t.Fatalf("expected only the good provider's tool, got %v", tools)
	}
}

func TestCatalogEmptyIsNotAnError(t *testing.T) {
	c := NewCatalog(nil, zap.NewNop())
	tools := c.ListAll(context.Background())
	if len(tools) != 0 {
		t.Fatalf("expected empty catalog, got %v", tools)
	}
}

func TestCatalogSkipsDisconnectedProvider(t *testing.T) {
	offline := &stubProvider{name: "offline", connected: false, tools: []ToolDescriptor{toolNamed("hidden")}}
	c := NewCatalog([]Provider{offline}, zap.NewNop())
	if tools := c.ListAll(context.Background()); len(tools) != 0 {
		t.Fatalf("disconnected provider must contribute zero tools, got %v", tools)
	}
}

func TestSnapshotFirstRegisteredWins(t *testing.T) {
	first := &stubProvider{name: "first", connected: true, tools: []ToolDescriptor{toolNamed("shared")}}
	second := &stubProvider{name: "second", connected: true, tools: []ToolDescriptor{toolNamed("shared")}}

	c := NewCatalog([]Provider{first, second}, zap.NewNop())
	snap := c.Snapshot(context.Background())

	// Both entries stay in the listing.
	if snap.Len() != 2 {
		t.Fatalf("expected both colliding tools listed, got %d", snap.Len())
	}

	desc, ok := snap.Find("shared")
	if !ok {
		t.Fatal("expected to find shared tool")
	}
	if desc.Provider != "first" {
		t.Errorf("name lookup must resolve to the first registered provider, got %q", desc.Provider)
	}
}

func TestCatalogRecoversListPanic(t *testing.T) {
	bad := &panickyLister{}
	good := &stubProvider{name: "good", connected: true, tools: []ToolDescriptor{toolNamed("ok")}}

	c := NewCatalog([]Provider{bad, good}, zap.NewNop())
	tools := c.ListAll(context.Background())
	if len(tools) != 1 || tools[0].Name != "ok" {
		t.Fatalf("panicking provider must contribute zero tools, got %v", tools)
	}
}

type panickyLister struct{}

func (p *panickyLister) Name() string    { return "panicky" }
func (p *panickyLister) Connected() bool { return true }

func (p *panickyLister) ListTools(ctx context.Context) ([]ToolDescriptor, error) {
	panic("list exploded")
}

func (p *panickyLister) CallTool(ctx context.Context, name string, args map[string]interface{}) (ToolResult, error) {
	panic("call exploded")
}
