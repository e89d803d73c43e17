package toolhub

import "context"

// ToolResult is the outcome of executing one tool call. On failure, Content
// carries a human-readable error description rather than an error value; the
// loop feeds it back to the reasoning backend as text either way.
type ToolResult struct {
	Content  string `json:"content"`
	IsError  bool   `json:"is_error"`
	Provider string `json:"provider,omitempty"`
}

// Provider is an external source of tools. Implementations may return errors
// from either method; callers treat a ListTools error as "no tools from this
// provider" and a CallTool error as "try the next provider".
type Provider interface {
	// Name returns the provider's identity.
	Name() string

	// Connected reports liveness. Disconnected providers are skipped by the
	// catalog and dispatcher without being called.
	Connected() bool

	// ListTools returns the provider's tool descriptors.
	ListTools(ctx context.Context) ([]ToolDescriptor, error)

	// CallTool executes one tool by name with the given arguments.
	CallTool(ctx context.Context, name string, args map[string]interface{}) (ToolResult, error)
}
