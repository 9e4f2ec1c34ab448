package view

import (
	"context"
	"errors"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

// ErrIdeaInFlight is returned when ideas are requested while a request for
// the same panel is still running.
var ErrIdeaInFlight = errors.New("ideas are already being generated")

// IdeaPanel is the per-card ideas section.
type IdeaPanel struct {
	Term    string
	Ideas   *trend.ContentIdeas
	Loading bool
	Err     string

	client TrendsClient
}

// NewIdeaPanel returns a collapsed panel for term.
func NewIdeaPanel(client TrendsClient, term string) *IdeaPanel {
	return &IdeaPanel{Term: term, client: client}
}

// Visible reports whether ideas are currently shown.
func (p *IdeaPanel) Visible() bool {
	return p.Ideas != nil
}

// Toggle hides ideas that are already shown; otherwise it requests them.
func (p *IdeaPanel) Toggle(ctx context.Context) error {
	if p.Ideas != nil {
		p.Ideas = nil
		return nil
	}
	if p.Loading {
		return ErrIdeaInFlight
	}

	p.Loading = true
	p.Err = ""
	defer func() { p.Loading = false }()

	ideas, err := p.client.GenerateIdeas(ctx, p.Term)
	if err != nil {
		p.Err = errorMessage(err)
		return err
	}
	p.Ideas = ideas
	return nil
}
