// Package view holds the search screen's state and the rules that derive
// what is displayed from it.
package view

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/ytgap/internal/storage"
	"github.com/ziadkadry99/ytgap/internal/trend"
)

// UnknownErrorMessage is shown when a failure carries no usable message.
const UnknownErrorMessage = "An unexpected error occurred."

// TrendsClient is the subset of the endpoint client the view needs.
type TrendsClient interface {
	FetchTrends(ctx context.Context, params trend.SearchParameters) ([]trend.Trend, error)
	GenerateIdeas(ctx context.Context, term string) (*trend.ContentIdeas, error)
}

// State is the search screen. It is not safe for concurrent use.
type State struct {
	Params      trend.SearchParameters
	Results     []trend.Trend
	Saved       []trend.Trend
	Tab         trend.Tab
	Loading     bool
	Err         string
	HasSearched bool

	client TrendsClient
	store  storage.Store
	log    zerolog.Logger
	now    func() time.Time
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(s *State) { s.log = log }
}

// WithClock overrides the clock used for the default search date.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// NewState creates the screen with default parameters and the saved list
// read from store.
func NewState(ctx context.Context, client TrendsClient, store storage.Store, opts ...Option) *State {
	s := &State{
		client: client,
		store:  store,
		log:    zerolog.Nop(),
		now:    time.Now,
		Tab:    trend.TabSearch,
	}
	for _, o := range opts {
		o(s)
	}
	s.Params = DefaultParams(s.now())
	s.Results = []trend.Trend{}
	s.Saved = store.Load(ctx)
	return s
}

// DefaultParams returns the parameters a fresh screen starts with.
func DefaultParams(now time.Time) trend.SearchParameters {
	return trend.SearchParameters{
		SelectedDate:    now.Format(trend.DateLayout),
		MinSearchVolume: trend.Volume50K,
		MaxSaturation:   trend.Saturation1Pct,
		SortBy:          trend.SortByDailySearches,
	}
}

// Search runs one query with the current parameters. On failure Results is
// empty and Err holds the message.
func (s *State) Search(ctx context.Context) error {
	s.Loading = true
	s.Results = []trend.Trend{}
	s.Err = ""
	s.HasSearched = true
	defer func() { s.Loading = false }()

	results, err := s.client.FetchTrends(ctx, s.Params)
	if err != nil {
		s.Err = errorMessage(err)
		return err
	}
	s.Results = results
	return nil
}

// ToggleSave removes t from the saved list if its term is present, otherwise
// appends it. The new list is persisted right away; a failed write is logged
// and the in-memory change is kept.
func (s *State) ToggleSave(ctx context.Context, t trend.Trend) {
	s.Saved = trend.Toggle(s.Saved, t)
	storage.SaveBestEffort(ctx, s.store, s.Saved, s.log)
}

// IsSaved reports whether term is in the saved list.
func (s *State) IsSaved(term string) bool {
	return trend.IndexOf(s.Saved, term) >= 0
}

// SetTab switches the displayed list.
func (s *State) SetTab(tab trend.Tab) {
	s.Tab = tab
}

// SetSort changes the ordering of the displayed list.
func (s *State) SetSort(by trend.SortBy) {
	s.Params.SortBy = by
}

// Visible returns the active list in the selected order.
func (s *State) Visible() []trend.Trend {
	list := s.Results
	if s.Tab == trend.TabSaved {
		list = s.Saved
	}
	return trend.Sort(list, s.Params.SortBy)
}

// errorMessage returns the text shown for err.
func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return UnknownErrorMessage
}
