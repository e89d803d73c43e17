package llm

import "strings"

// Role identifies who produced a message in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in an ordered conversation transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// SystemMessage creates a system Message.
func SystemMessage(text string) Message {
	return Message{Role: RoleSystem, Content: text}
}

// UserMessage creates a user Message.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: text}
}

// AssistantMessage creates an assistant Message.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: text}
}

// ToolDef is the serializable description of a callable tool, in the shape
// backends expect: name, human description, and a JSON-schema parameter map.
type ToolDef struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// ToolCall is a single tool invocation requested by the backend.
type ToolCall struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// ChatRequest is the input to a single blocking backend call.
//
// ToolsEnabled distinguishes the loop's planning and evaluation calls (tools
// off) from its execution call (tools on). Tools carries the catalog offered
// to the backend; it is ignored when ToolsEnabled is false.
type ChatRequest struct {
	Model        string    `json:"model"`
	Messages     []Message `json:"messages"`
	ToolsEnabled bool      `json:"tools_enabled"`
	Tools        []ToolDef `json:"tools,omitempty"`
}

// ChatResponse is the backend's answer to a ChatRequest.
type ChatResponse struct {
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Text returns the trimmed response content.
func (r *ChatResponse) Text() string {
	return strings.TrimSpace(r.Content)
}

// HasToolCalls reports whether the response requested any tool invocations.
func (r *ChatResponse) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}
