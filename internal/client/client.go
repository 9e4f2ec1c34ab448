// Package client calls a deployed trends endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ziadkadry99/ytgap/internal/trend"
)

// DefaultTimeout bounds a single round trip.
const DefaultTimeout = 90 * time.Second

// placeholderMarker appears in the backend URL shipped with fresh configs.
const placeholderMarker = "YOUR_BACKEND_URL"

var (
	// ErrConfiguration is returned when the backend URL is missing or still
	// the placeholder. No request is sent.
	ErrConfiguration = errors.New("backend URL is not configured")
	// ErrTransport is returned when the request could not reach the endpoint.
	ErrTransport = errors.New("could not reach the trends endpoint")
)

// APIError is returned for a non-2xx reply.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the trends endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a Client for the endpoint at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSpace(baseURL),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Configured reports whether the backend URL can be used.
func (c *Client) Configured() bool {
	return c.baseURL != "" && !strings.Contains(c.baseURL, placeholderMarker)
}

type envelope struct {
	Action  string `json:"action"`
	Payload any    `json:"payload"`
}

type fetchPayload struct {
	SelectedDate    string `json:"selectedDate"`
	Niche           string `json:"niche"`
	SearchVolume    string `json:"searchVolume"`
	SaturationLevel string `json:"saturationLevel"`
}

type ideasPayload struct {
	Term string `json:"term"`
}

// FetchTrends requests content-gap topics for params.
func (c *Client) FetchTrends(ctx context.Context, params trend.SearchParameters) ([]trend.Trend, error) {
	var trends []trend.Trend
	err := c.post(ctx, envelope{
		Action: "fetchTrends",
		Payload: fetchPayload{
			SelectedDate:    params.SelectedDate,
			Niche:           params.Niche,
			SearchVolume:    params.MinSearchVolume.String(),
			SaturationLevel: string(params.MaxSaturation),
		},
	}, "Failed to fetch trends.", &trends)
	if err != nil {
		return nil, err
	}
	if trends == nil {
		trends = []trend.Trend{}
	}
	return trends, nil
}

// GenerateIdeas requests titles and an outline for term.
func (c *Client) GenerateIdeas(ctx context.Context, term string) (*trend.ContentIdeas, error) {
	var ideas trend.ContentIdeas
	err := c.post(ctx, envelope{
		Action:  "generateIdeas",
		Payload: ideasPayload{Term: term},
	}, "Failed to generate content ideas.", &ideas)
	if err != nil {
		return nil, err
	}
	return &ideas, nil
}

// post sends one request and decodes a 2xx body into out. fallback is the
// message used when an error reply carries none.
func (c *Client) post(ctx context.Context, body envelope, fallback string, out any) error {
	if !c.Configured() {
		return ErrConfiguration
	}

	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Message string `json:"message"`
		}
		msg := fallback
		if json.Unmarshal(respBody, &e) == nil && e.Message != "" {
			msg = e.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
	}
	return nil
}
