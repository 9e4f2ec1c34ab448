package view

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/ytgap/internal/storage"
	"github.com/ziadkadry99/ytgap/internal/trend"
)

type fakeClient struct {
	trends  []trend.Trend
	ideas   *trend.ContentIdeas
	err     error
	params  []trend.SearchParameters
	terms   []string
	onIdeas func()
}

func (f *fakeClient) FetchTrends(_ context.Context, p trend.SearchParameters) ([]trend.Trend, error) {
	f.params = append(f.params, p)
	if f.err != nil {
		return nil, f.err
	}
	return f.trends, nil
}

func (f *fakeClient) GenerateIdeas(_ context.Context, term string) (*trend.ContentIdeas, error) {
	f.terms = append(f.terms, term)
	if f.onIdeas != nil {
		f.onIdeas()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.ideas, nil
}

type failingStore struct {
	storage.Store
	saves int
}

func (f *failingStore) Save(context.Context, []trend.Trend) error {
	f.saves++
	return errors.New("disk full")
}

var (
	a = trend.Trend{Term: "a", DailySearches: 100000, VideoCount: 50}
	b = trend.Trend{Term: "b", DailySearches: 200000, VideoCount: 10}
	z = trend.Trend{Term: "z", DailySearches: 0, VideoCount: 5}
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC)
}

func newFileStore(t *testing.T) storage.Store {
	return storage.NewFileStore(filepath.Join(t.TempDir(), "saved.json"), zerolog.Nop())
}

func TestNewStateDefaults(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	require.NoError(t, store.Save(ctx, []trend.Trend{a}))

	s := NewState(ctx, &fakeClient{}, store, WithClock(fixedClock))

	assert.Equal(t, trend.SearchParameters{
		SelectedDate:    "2024-05-01",
		MinSearchVolume: trend.Volume50K,
		MaxSaturation:   trend.Saturation1Pct,
		SortBy:          trend.SortByDailySearches,
	}, s.Params)
	assert.Equal(t, trend.TabSearch, s.Tab)
	assert.Equal(t, []trend.Trend{a}, s.Saved)
	assert.Empty(t, s.Results)
	assert.False(t, s.HasSearched)
}

func TestSearchSuccess(t *testing.T) {
	client := &fakeClient{trends: []trend.Trend{a, b}}
	s := NewState(context.Background(), client, newFileStore(t), WithClock(fixedClock))
	s.Params.Niche = "tech"
	s.Err = "previous failure"

	require.NoError(t, s.Search(context.Background()))

	assert.False(t, s.Loading)
	assert.True(t, s.HasSearched)
	assert.Empty(t, s.Err)
	assert.Equal(t, []trend.Trend{a, b}, s.Results)
	require.Len(t, client.params, 1)
	assert.Equal(t, "tech", client.params[0].Niche)
}

func TestSearchFailure(t *testing.T) {
	client := &fakeClient{trends: []trend.Trend{a}}
	s := NewState(context.Background(), client, newFileStore(t))
	require.NoError(t, s.Search(context.Background()))

	client.err = errors.New("Server error: boom")
	assert.Error(t, s.Search(context.Background()))

	assert.False(t, s.Loading)
	assert.Equal(t, "Server error: boom", s.Err)
	assert.Empty(t, s.Results)
}

func TestSearchEmptyErrorMessage(t *testing.T) {
	s := NewState(context.Background(), &fakeClient{err: errors.New("")}, newFileStore(t))
	s.Search(context.Background())
	assert.Equal(t, UnknownErrorMessage, s.Err)
}

func TestToggleSavePersists(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	s := NewState(ctx, &fakeClient{}, store)

	s.ToggleSave(ctx, a)
	s.ToggleSave(ctx, b)
	assert.True(t, s.IsSaved("a"))
	assert.Equal(t, []trend.Trend{a, b}, store.Load(ctx))

	s.ToggleSave(ctx, a)
	assert.False(t, s.IsSaved("a"))
	assert.Equal(t, []trend.Trend{b}, store.Load(ctx))
}

func TestToggleSaveTwiceRestores(t *testing.T) {
	ctx := context.Background()
	s := NewState(ctx, &fakeClient{}, newFileStore(t))
	s.ToggleSave(ctx, a)
	before := append([]trend.Trend(nil), s.Saved...)

	s.ToggleSave(ctx, b)
	s.ToggleSave(ctx, b)
	assert.Equal(t, before, s.Saved)
}

func TestToggleSaveWriteFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	store := &failingStore{Store: newFileStore(t)}
	s := NewState(ctx, &fakeClient{}, store)

	s.ToggleSave(ctx, a)
	assert.True(t, s.IsSaved("a"))
	assert.Equal(t, 1, store.saves)
}

func TestVisibleFollowsTabAndSort(t *testing.T) {
	ctx := context.Background()
	s := NewState(ctx, &fakeClient{trends: []trend.Trend{a, z, b}}, newFileStore(t))
	require.NoError(t, s.Search(ctx))
	s.ToggleSave(ctx, a)

	assert.Equal(t, []trend.Trend{b, a, z}, s.Visible())

	s.SetSort(trend.SortBySaturation)
	assert.Equal(t, []trend.Trend{b, a, z}, s.Visible())

	s.SetSort(trend.SortByVideoCount)
	assert.Equal(t, []trend.Trend{z, b, a}, s.Visible())

	s.SetTab(trend.TabSaved)
	assert.Equal(t, []trend.Trend{a}, s.Visible())

	// Sorting never reorders the underlying list.
	assert.Equal(t, []trend.Trend{a, z, b}, s.Results)
}

func TestIdeaPanelToggle(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{ideas: &trend.ContentIdeas{Titles: []string{"t"}, Outline: "o"}}
	p := NewIdeaPanel(client, "a")

	require.NoError(t, p.Toggle(ctx))
	assert.True(t, p.Visible())
	assert.Equal(t, []string{"t"}, p.Ideas.Titles)

	// Second press hides without a request.
	require.NoError(t, p.Toggle(ctx))
	assert.False(t, p.Visible())
	assert.Len(t, client.terms, 1)

	require.NoError(t, p.Toggle(ctx))
	assert.Len(t, client.terms, 2)
}

func TestIdeaPanelInFlight(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{ideas: &trend.ContentIdeas{}}
	p := NewIdeaPanel(client, "a")

	var nested error
	client.onIdeas = func() { nested = p.Toggle(ctx) }

	require.NoError(t, p.Toggle(ctx))
	assert.ErrorIs(t, nested, ErrIdeaInFlight)
	assert.Len(t, client.terms, 1)
}

func TestIdeaPanelFailure(t *testing.T) {
	p := NewIdeaPanel(&fakeClient{err: errors.New("Failed to generate content ideas.")}, "a")

	assert.Error(t, p.Toggle(context.Background()))
	assert.False(t, p.Loading)
	assert.False(t, p.Visible())
	assert.Equal(t, "Failed to generate content ideas.", p.Err)
}
