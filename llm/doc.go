// Package llm defines the reasoning-backend contract consumed by the agent
// loop, together with the plumbing a real backend needs: a typed error
// hierarchy, retry with exponential backoff, a static model registry, and a
// concrete client backed by the gollm library.
//
// The agent loop depends only on the ChatClient interface:
//
//	type ChatClient interface {
//	    Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
//	}
//
// A non-nil error is the failure signal; implementations never panic across
// the interface boundary. Callers decide whether a failure is fatal.
//
// # Quick Start
//
//	client, err := llm.NewGollmClient("anthropic", os.Getenv("ANTHROPIC_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.Chat(ctx, llm.ChatRequest{
//	    Model:    "claude-sonnet-4-5",
//	    Messages: []llm.Message{llm.UserMessage("Hello")},
//	})
//
// Wrap any client with retry behavior:
//
//	retrying := llm.NewRetryingClient(client, llm.DefaultRetryPolicy())
package llm
