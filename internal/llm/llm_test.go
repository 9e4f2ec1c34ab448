package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &CompletionResponse{Content: "echo: " + req.Prompt, Model: "stub-model"}, nil
}

func clearCredentials(t *testing.T) {
	t.Helper()
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "API_KEY"} {
		t.Setenv(name, "")
	}
}

func TestFactoryReturnsErrorForMissingAPIKey(t *testing.T) {
	clearCredentials(t)

	for _, p := range []string{"google", "openai"} {
		_, err := NewProvider(Settings{Provider: p, Model: "m"})
		assert.ErrorIs(t, err, ErrMissingCredential, "provider %s", p)
	}
}

func TestFactoryReturnsErrorForUnknownProvider(t *testing.T) {
	_, err := NewProvider(Settings{Provider: "unknown", Model: "m"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingCredential)
}

func TestFactoryCredentialFallback(t *testing.T) {
	clearCredentials(t)
	t.Setenv("API_KEY", "generic")

	key, err := LookupCredential("google")
	require.NoError(t, err)
	assert.Equal(t, "generic", key)

	t.Setenv("GEMINI_API_KEY", "specific")
	key, err = LookupCredential("google")
	require.NoError(t, err)
	assert.Equal(t, "specific", key)
}

func TestFactoryCreatesProviders(t *testing.T) {
	clearCredentials(t)
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("OPENAI_API_KEY", "test-key")

	p, err := NewProvider(Settings{Provider: "google", Model: "gemini-2.5-flash"})
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())
	_, ok := p.(*GeminiProvider)
	assert.True(t, ok)

	p, err = NewProvider(Settings{Provider: "openai", Model: "gpt-4o-mini", RateLimitRPM: 10})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())
	_, ok = p.(*RateLimitedProvider)
	assert.True(t, ok, "rate limit should wrap the provider")
}

func TestGeminiProviderComplete(t *testing.T) {
	var got geminiRequest
	var gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates":[{"content":{"role":"model","parts":[{"text":"[{\"term\":"},{"text":"\"a\"}]"}]},"finishReason":"STOP"}],
			"usageMetadata":{"promptTokenCount":12,"candidatesTokenCount":7}
		}`))
	}))
	defer srv.Close()

	p := NewGeminiProvider("secret", "gemini-test", srv.URL)
	resp, err := p.Complete(context.Background(), CompletionRequest{
		Prompt:      "find gaps",
		Temperature: 0.7,
		Format:      FormatJSONArray,
	})
	require.NoError(t, err)

	assert.Equal(t, `[{"term":"a"}]`, resp.Content)
	assert.Equal(t, 12, resp.InputTokens)
	assert.Equal(t, 7, resp.OutputTokens)
	assert.Equal(t, "STOP", resp.FinishReason)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "/gemini-test:generateContent", gotPath)
	require.Len(t, got.Contents, 1)
	assert.Equal(t, "find gaps", got.Contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", got.GenerationConfig.ResponseMIMEType)
	assert.InDelta(t, 0.7, got.GenerationConfig.Temperature, 1e-9)
}

func TestGeminiProviderAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer srv.Close()

	_, err := NewGeminiProvider("bad", "m", srv.URL).Complete(context.Background(), CompletionRequest{Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiProviderNoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	_, err := NewGeminiProvider("k", "m", srv.URL).Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.Error(t, err)
}

func TestOpenAIProviderComplete(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id":"1","object":"chat.completion","model":"gpt-test",
			"choices":[{"index":0,"message":{"role":"assistant","content":"{\"titles\":[],\"outline\":\"\"}"},"finish_reason":"stop"}],
			"usage":{"prompt_tokens":5,"completion_tokens":3,"total_tokens":8}
		}`))
	}))
	defer srv.Close()

	p := NewOpenAIProvider("test-key", "gpt-test", srv.URL)
	resp, err := p.Complete(context.Background(), CompletionRequest{Prompt: "ideas", Format: FormatJSONObject})
	require.NoError(t, err)

	assert.Equal(t, `{"titles":[],"outline":""}`, resp.Content)
	assert.Equal(t, 5, resp.InputTokens)
	assert.Equal(t, "stop", resp.FinishReason)
	assert.Equal(t, map[string]any{"type": "json_object"}, got["response_format"])
}

func TestOpenAIProviderArrayFormatHasNoResponseFormat(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[]"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	_, err := NewOpenAIProvider("k", "m", srv.URL).Complete(context.Background(), CompletionRequest{Prompt: "x", Format: FormatJSONArray})
	require.NoError(t, err)
	_, present := got["response_format"]
	assert.False(t, present)
}

func TestRateLimitedProviderHonoursContext(t *testing.T) {
	stub := &stubProvider{}
	p := NewRateLimitedProvider(stub, 1)

	_, err := p.Complete(context.Background(), CompletionRequest{Prompt: "first"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = p.Complete(ctx, CompletionRequest{Prompt: "second"})
	assert.Error(t, err)
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "stub", p.Name())
}

func TestRateLimitedProviderDisabled(t *testing.T) {
	stub := &stubProvider{}
	assert.Same(t, Provider(stub), NewRateLimitedProvider(stub, 0))
}

func TestInstrumentedProviderPassesThrough(t *testing.T) {
	stub := &stubProvider{}
	p := NewInstrumentedProvider(stub, zerolog.Nop())

	resp, err := p.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", resp.Content)

	stub.err = errors.New("boom")
	_, err = p.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	assert.EqualError(t, err, "boom")
	assert.Equal(t, 2, stub.calls)
}
