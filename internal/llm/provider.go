package llm

import "context"

// Provider is the AI gateway: it sends a prompt to a generative model and
// returns the raw text it produced.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
