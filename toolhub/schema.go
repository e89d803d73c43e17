package toolhub

import "fmt"

// ValidateArgs checks tool-call arguments against the descriptor's parameter
// schema: required parameters must be present and every supplied value must
// match its declared type. Unknown keys are rejected so typos surface as
// validation errors instead of silently ignored input.
func ValidateArgs(desc ToolDescriptor, args map[string]interface{}) error {
	if len(desc.Params) == 0 {
		return nil
	}

	for name, spec := range desc.Params {
		value, present := args[name]
		if !present {
			if spec.Required && spec.Default == nil {
				return &ValidationError{Tool: desc.Name, Reason: fmt.Sprintf("missing required parameter %q", name)}
			}
			continue
		}
		if !matchesType(value, spec.Type) {
			return &ValidationError{
				Tool:   desc.Name,
				Reason: fmt.Sprintf("parameter %q: expected %s, got %T", name, spec.Type, value),
			}
		}
	}

	for name := range args {
		if _, known := desc.Params[name]; !known {
			return &ValidationError{Tool: desc.Name, Reason: fmt.Sprintf("unknown parameter %q", name)}
		}
	}

	return nil
}

// ApplyDefaults returns a copy of args with descriptor defaults filled in for
// absent parameters. The input map is not mutated.
func ApplyDefaults(desc ToolDescriptor, args map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(args))
	for k, v := range args {
		out[k] = v
	}
	for name, spec := range desc.Params {
		if _, present := out[name]; !present && spec.Default != nil {
			out[name] = spec.Default
		}
	}
	return out
}

// matchesType checks a decoded JSON value against a schema type name. An
// empty or unknown type name accepts anything.
func matchesType(value interface{}, typeName string) bool {
	switch typeName {
	case "string":
		_, ok := value.(string)
		return ok
	case "number":
		switch value.(type) {
		case float64, float32, int, int64:
			return true
		}
		return false
	case "integer":
		switch n := value.(type) {
		case int, int64:
			return true
		case float64:
			return n == float64(int64(n))
		}
		return false
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "array":
		_, ok := value.([]interface{})
		return ok
	case "object":
		_, ok := value.(map[string]interface{})
		return ok
	default:
		return true
	}
}
