package toolhub

import (
	"fmt"
	"strings"
)

// Attempt records one provider tried by the dispatcher and why it failed.
type Attempt struct {
	Provider string
	Err      error
}

func (a Attempt) String() string {
	return fmt.Sprintf("%s: %v", a.Provider, a.Err)
}

// NotFoundError is returned when no provider could execute a tool call. It
// names the requested tool and carries the ordered attempt log so the failure
// is diagnosable instead of opaque.
type NotFoundError struct {
	Tool     string
	Attempts []Attempt
}

func (e *NotFoundError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("tool %q not found on any provider: no providers registered", e.Tool)
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.String()
	}
	return fmt.Sprintf("tool %q not found on any provider: %s", e.Tool, strings.Join(parts, "; "))
}

// ValidationError is returned when tool-call arguments violate the tool's
// parameter schema. It fails the specific call, never the session.
type ValidationError struct {
	Tool   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid arguments for tool %q: %s", e.Tool, e.Reason)
}
