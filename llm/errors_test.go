package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"authentication", &AuthenticationError{}, false},
		{"context length", &ContextLengthError{}, false},
		{"configuration", &ConfigurationError{}, false},
		{"abort", &AbortError{}, false},
		{"rate limit", &RateLimitError{}, true},
		{"server", &ServerError{}, true},
		{"timeout", &RequestTimeoutError{}, true},
		{"transport retryable", &TransportError{Retryable: true}, true},
		{"transport not retryable", &TransportError{Retryable: false}, false},
		{"unknown defaults retryable", errors.New("mystery"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%T) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestBackendErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &BackendError{Message: "wrapper", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("BackendError must unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("error text must include the cause: %q", err.Error())
	}
}

func TestTransportErrorFormat(t *testing.T) {
	err := &TransportError{
		BackendError: BackendError{Message: "gateway timeout"},
		Provider:     "openai",
		StatusCode:   504,
		Retryable:    true,
	}
	text := err.Error()
	for _, want := range []string{"openai", "gateway timeout", "504"} {
		if !strings.Contains(text, want) {
			t.Errorf("error text missing %q: %q", want, text)
		}
	}
}
