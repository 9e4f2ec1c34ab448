// Package llmtest provides a scripted llm.Provider for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/ziadkadry99/ytgap/internal/llm"
)

// Fake is a Provider that records calls and returns canned content.
type Fake struct {
	mu       sync.Mutex
	Calls    []llm.CompletionRequest
	Content  string
	Err      error
	ProvName string
	// Hang makes Complete block until ctx is done and return its error.
	Hang bool
}

// New returns a Fake that answers every prompt with content.
func New(content string) *Fake {
	return &Fake{Content: content, ProvName: "fake"}
}

// Failing returns a Fake whose calls all fail with err.
func Failing(err error) *Fake {
	return &Fake{Err: err, ProvName: "fake"}
}

func (f *Fake) Name() string {
	return f.ProvName
}

func (f *Fake) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, req)
	if f.Hang {
		f.mu.Unlock()
		<-ctx.Done()
		f.mu.Lock()
		return nil, ctx.Err()
	}
	if f.Err != nil {
		return nil, f.Err
	}
	return &llm.CompletionResponse{
		Content:      f.Content,
		InputTokens:  len(req.Prompt) / 4,
		OutputTokens: len(f.Content) / 4,
		Model:        "fake-model",
		FinishReason: "stop",
	}, nil
}

// CallCount returns how many completions were requested.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Calls)
}

// LastRequest returns the most recent request, or the zero value.
func (f *Fake) LastRequest() llm.CompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Calls) == 0 {
		return llm.CompletionRequest{}
	}
	return f.Calls[len(f.Calls)-1]
}
