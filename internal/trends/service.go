// Package trends implements the content-gap endpoint: it turns a request
// into a prompt, asks the AI gateway, and validates what comes back.
package trends

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/ytgap/internal/llm"
	"github.com/ziadkadry99/ytgap/internal/parser"
	"github.com/ziadkadry99/ytgap/internal/prompt"
	"github.com/ziadkadry99/ytgap/internal/trend"
)

// FetchTrendsPayload is the payload of a fetchTrends action. Volume and
// saturation travel as strings.
type FetchTrendsPayload struct {
	SelectedDate    string `json:"selectedDate"`
	Niche           string `json:"niche"`
	SearchVolume    string `json:"searchVolume"`
	SaturationLevel string `json:"saturationLevel"`
}

// GenerateIdeasPayload is the payload of a generateIdeas action.
type GenerateIdeasPayload struct {
	Term string `json:"term"`
}

// Service composes prompt construction, the AI gateway and response parsing.
type Service struct {
	provider llm.Provider
	model    string
	log      zerolog.Logger
}

// NewService creates a Service that sends prompts to provider using model.
func NewService(provider llm.Provider, model string, log zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		model:    model,
		log:      log.With().Str("component", "trends").Logger(),
	}
}

// FetchTrends asks the model for low-saturation topics matching p.
// The result is never nil; an empty slice means no topic qualified.
func (s *Service) FetchTrends(ctx context.Context, p FetchTrendsPayload) ([]trend.Trend, error) {
	volume, err := strconv.ParseInt(p.SearchVolume, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid searchVolume %q", p.SearchVolume)
	}

	text := prompt.TrendDiscovery(prompt.TrendQuery{
		SelectedDate:    p.SelectedDate,
		Niche:           p.Niche,
		MinSearchVolume: volume,
		MaxSaturation:   p.SaturationLevel,
	})

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model:       s.model,
		Prompt:      text,
		Temperature: prompt.TrendTemperature,
		Format:      llm.FormatJSONArray,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching trends: %w", err)
	}

	trends, err := parser.ParseTrends(resp.Content)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Str("date", p.SelectedDate).
		Str("niche", p.Niche).
		Int("topics", len(trends)).
		Msg("trends fetched")
	return trends, nil
}

// GenerateIdeas asks the model for video titles and an outline for p.Term.
func (s *Service) GenerateIdeas(ctx context.Context, p GenerateIdeasPayload) (*trend.ContentIdeas, error) {
	text, err := prompt.IdeaGeneration(p.Term)
	if err != nil {
		return nil, err
	}

	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Model:       s.model,
		Prompt:      text,
		Temperature: prompt.IdeaTemperature,
		Format:      llm.FormatJSONObject,
	})
	if err != nil {
		return nil, fmt.Errorf("generating ideas: %w", err)
	}

	return parser.ParseIdeas(resp.Content)
}
