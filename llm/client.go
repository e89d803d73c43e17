package llm

import "context"

// ChatClient is the reasoning-backend contract. A nil error guarantees a
// non-nil response; a non-nil error means no answer was produced.
type ChatClient interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

// Closer is implemented by clients that hold resources.
type Closer interface {
	Close() error
}

// ChatFunc adapts a plain function to the ChatClient interface.
type ChatFunc func(ctx context.Context, req ChatRequest) (*ChatResponse, error)

// Chat calls f.
func (f ChatFunc) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	return f(ctx, req)
}

// RetryingClient decorates a ChatClient with retry-on-retryable-error
// behavior. Non-retryable errors are returned immediately.
type RetryingClient struct {
	inner  ChatClient
	policy RetryPolicy
}

// NewRetryingClient wraps client with the given retry policy.
func NewRetryingClient(client ChatClient, policy RetryPolicy) *RetryingClient {
	return &RetryingClient{inner: client, policy: policy}
}

// Chat sends the request, retrying per the configured policy.
func (c *RetryingClient) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	return Retry(ctx, c.policy, func(ctx context.Context) (*ChatResponse, error) {
		return c.inner.Chat(ctx, req)
	})
}

// Close closes the wrapped client if it holds resources.
func (c *RetryingClient) Close() error {
	if closer, ok := c.inner.(Closer); ok {
		return closer.Close()
	}
	return nil
}
