package llm

import "fmt"

// BackendError is the base error type for reasoning-backend failures.
type BackendError struct {
	Message string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

// TransportError represents a failure to reach or get an answer from the
// backend: network faults, timeouts, 5xx responses.
type TransportError struct {
	BackendError
	Provider   string
	StatusCode int
	Retryable  bool
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("[%s] %s (status=%d, retryable=%v)", e.Provider, e.Message, e.StatusCode, e.Retryable)
}

// Concrete transport error categories.

type AuthenticationError struct{ TransportError }
type RateLimitError struct{ TransportError }
type ServerError struct{ TransportError }
type ContextLengthError struct{ TransportError }

// Non-transport errors.

type RequestTimeoutError struct{ BackendError }
type AbortError struct{ BackendError }
type ConfigurationError struct{ BackendError }

// IsRetryable reports whether the error is safe to retry against the same
// backend. Unknown errors default to retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	switch e := err.(type) {
	case *AuthenticationError:
		return false
	case *ContextLengthError:
		return false
	case *ConfigurationError:
		return false
	case *AbortError:
		return false
	case *RateLimitError:
		return true
	case *ServerError:
		return true
	case *RequestTimeoutError:
		return true
	case *TransportError:
		return e.Retryable
	default:
		return true
	}
}
