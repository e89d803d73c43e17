package toolhub

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrEmptyToolName is returned when Call is given an empty tool name.
var ErrEmptyToolName = errors.New("tool name must not be empty")

// Dispatcher routes a single tool call to the first provider that executes it
// successfully. Providers are tried in registration order; providers after
// the winner are not consulted, and providers before it are not notified of
// non-selection.
type Dispatcher struct {
	providers []Provider
	logger    *zap.Logger
}

// NewDispatcher creates a Dispatcher over the given providers. The slice is
// held by reference, matching the catalog's ownership model.
func NewDispatcher(providers []Provider, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{providers: providers, logger: logger}
}

// Call executes the named tool with the given arguments. args may be empty
// but not nil-unfriendly: a nil map is treated as empty. On total failure the
// returned error is a *NotFoundError carrying the per-provider attempt log.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]interface{}) (ToolResult, error) {
	if name == "" {
		return ToolResult{}, ErrEmptyToolName
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	var attempts []Attempt
	for _, p := range d.providers {
		if !p.Connected() {
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: errors.New("provider not connected")})
			continue
		}

		result, err := callToolSafe(ctx, p, name, args)
		if err != nil {
			d.logger.Debug("provider failed tool call, trying next",
				zap.String("provider", p.Name()),
				zap.String("tool", name),
				zap.Error(err),
			)
			attempts = append(attempts, Attempt{Provider: p.Name(), Err: err})
			continue
		}

		result.Provider = p.Name()
		return result, nil
	}

	return ToolResult{}, &NotFoundError{Tool: name, Attempts: attempts}
}

// callToolSafe calls CallTool and converts a panic into an error so one
// provider cannot abort the fallback chain.
func callToolSafe(ctx context.Context, p Provider, name string, args map[string]interface{}) (result ToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ToolResult{}
			err = &providerPanicError{provider: p.Name(), value: r}
		}
	}()
	return p.CallTool(ctx, name, args)
}

type providerPanicError struct {
	provider string
	value    interface{}
}

func (e *providerPanicError) Error() string {
	return fmt.Sprintf("provider %s panicked: %v", e.provider, e.value)
}
