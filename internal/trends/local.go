package trends

import (
	"context"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

// LocalClient answers client calls with an in-process Service instead of a
// round trip to a deployed endpoint.
type LocalClient struct {
	svc *Service
}

// NewLocalClient wraps svc.
func NewLocalClient(svc *Service) *LocalClient {
	return &LocalClient{svc: svc}
}

func (c *LocalClient) FetchTrends(ctx context.Context, params trend.SearchParameters) ([]trend.Trend, error) {
	return c.svc.FetchTrends(ctx, FetchTrendsPayload{
		SelectedDate:    params.SelectedDate,
		Niche:           params.Niche,
		SearchVolume:    params.MinSearchVolume.String(),
		SaturationLevel: string(params.MaxSaturation),
	})
}

func (c *LocalClient) GenerateIdeas(ctx context.Context, term string) (*trend.ContentIdeas, error) {
	return c.svc.GenerateIdeas(ctx, GenerateIdeasPayload{Term: term})
}
