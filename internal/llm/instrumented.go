package llm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/ytgap/internal/metrics"
)

// InstrumentedProvider logs every call and records it in the gateway metrics.
type InstrumentedProvider struct {
	provider Provider
	log      zerolog.Logger
}

// NewInstrumentedProvider wraps provider with logging and metrics.
func NewInstrumentedProvider(provider Provider, log zerolog.Logger) Provider {
	return &InstrumentedProvider{
		provider: provider,
		log:      log.With().Str("component", "gateway").Str("provider", provider.Name()).Logger(),
	}
}

func (p *InstrumentedProvider) Name() string {
	return p.provider.Name()
}

func (p *InstrumentedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	callID := uuid.NewString()
	start := time.Now()

	p.log.Debug().
		Str("call_id", callID).
		Int("prompt_chars", len(req.Prompt)).
		Float64("temperature", req.Temperature).
		Msg("sending prompt")

	resp, err := p.provider.Complete(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordGatewayCall(p.provider.Name(), "error", elapsed.Seconds(), 0, 0)
		p.log.Warn().Err(err).Str("call_id", callID).Dur("elapsed", elapsed).Msg("gateway call failed")
		return nil, err
	}

	metrics.RecordGatewayCall(p.provider.Name(), "ok", elapsed.Seconds(), resp.InputTokens, resp.OutputTokens)
	p.log.Info().
		Str("call_id", callID).
		Str("model", resp.Model).
		Int("input_tokens", resp.InputTokens).
		Int("output_tokens", resp.OutputTokens).
		Str("finish_reason", resp.FinishReason).
		Dur("elapsed", elapsed).
		Msg("gateway call completed")
	return resp, nil
}
