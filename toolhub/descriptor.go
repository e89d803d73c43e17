package toolhub

import "github.com/FredrikJCarlsson/AIAgent/llm"

// ParamSpec describes one parameter of a tool.
type ParamSpec struct {
	Type        string      `json:"type"` // "string", "number", "integer", "boolean", "array", "object"
	Description string      `json:"description,omitempty"`
	Required    bool        `json:"required,omitempty"`
	Default     interface{} `json:"default,omitempty"`
}

// ToolDescriptor describes one callable capability exposed by a provider.
// Name is unique within a provider but not globally. Provider is the identity
// of the provider that listed it, filled in during catalog assembly.
type ToolDescriptor struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Params      map[string]ParamSpec `json:"params,omitempty"`
	Provider    string               `json:"provider,omitempty"`
}

// Def converts the descriptor into the JSON-schema tool definition shape
// backends consume.
func (d ToolDescriptor) Def() llm.ToolDef {
	properties := make(map[string]interface{}, len(d.Params))
	var required []string
	for name, spec := range d.Params {
		prop := map[string]interface{}{"type": spec.Type}
		if spec.Description != "" {
			prop["description"] = spec.Description
		}
		if spec.Default != nil {
			prop["default"] = spec.Default
		}
		properties[name] = prop
		if spec.Required {
			required = append(required, name)
		}
	}

	params := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		params["required"] = required
	}

	return llm.ToolDef{
		Name:        d.Name,
		Description: d.Description,
		Parameters:  params,
	}
}

// Defs converts a descriptor list into backend tool definitions.
func Defs(descriptors []ToolDescriptor) []llm.ToolDef {
	defs := make([]llm.ToolDef, len(descriptors))
	for i, d := range descriptors {
		defs[i] = d.Def()
	}
	return defs
}
