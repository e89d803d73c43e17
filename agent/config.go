package agent

// Config holds per-session loop configuration.
type Config struct {
	// MaxIterations bounds the Reason/Act/Evaluate cycle. This is the single
	// authoritative bound: both the loop condition and the limit report use
	// it. Counting starts at zero.
	MaxIterations int `json:"max_iterations"`

	// MaxBackendFailures is the number of consecutive reasoning-backend
	// transport failures (across phases) after which the session aborts with
	// ErrBackendUnavailable. Any successful call resets the count.
	MaxBackendFailures int `json:"max_backend_failures"`

	// ToolOutputLimit caps the characters of a single tool result carried
	// into prompt context. 0 disables truncation.
	ToolOutputLimit int `json:"tool_output_limit"`

	// EnableRepeatDetection turns on repeated tool-call detection. When the
	// recent window of executed calls forms a repeating pattern, a steering
	// note is appended to the accumulated results.
	EnableRepeatDetection bool `json:"enable_repeat_detection"`

	// RepeatDetectionWindow is the number of recent tool calls inspected.
	RepeatDetectionWindow int `json:"repeat_detection_window"`

	// EventBuffer sizes the event channel.
	EventBuffer int `json:"event_buffer"`
}

// DefaultConfig returns the default loop configuration.
func DefaultConfig() Config {
	return Config{
		MaxIterations:         10,
		MaxBackendFailures:    3,
		ToolOutputLimit:       20000,
		EnableRepeatDetection: true,
		RepeatDetectionWindow: 6,
		EventBuffer:           256,
	}
}
