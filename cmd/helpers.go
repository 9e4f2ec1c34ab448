package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/ytgap/internal/client"
	"github.com/ziadkadry99/ytgap/internal/config"
	"github.com/ziadkadry99/ytgap/internal/llm"
	"github.com/ziadkadry99/ytgap/internal/storage"
	"github.com/ziadkadry99/ytgap/internal/trend"
	"github.com/ziadkadry99/ytgap/internal/trends"
	"github.com/ziadkadry99/ytgap/internal/view"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `ytgap init` to create a config file", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return c, nil
}

// newService builds the trends service from config. A missing API key is
// reported with the variable to set.
func newService(c *config.Config) (*trends.Service, error) {
	provider, err := llm.NewProvider(c.GatewaySettings())
	if err != nil {
		if errors.Is(err, llm.ErrMissingCredential) {
			return nil, fmt.Errorf("%w (provider %s)", err, c.Provider)
		}
		return nil, fmt.Errorf("creating AI provider: %w", err)
	}
	return trends.NewService(llm.NewInstrumentedProvider(provider, log), c.Model, log), nil
}

// newTrendsClient returns the client used by search and ideas. With local
// set the service runs in-process; otherwise the configured backend is used.
func newTrendsClient(c *config.Config, local bool) (view.TrendsClient, error) {
	if local {
		svc, err := newService(c)
		if err != nil {
			return nil, err
		}
		return trends.NewLocalClient(svc), nil
	}

	cl := client.New(c.Client.BackendURL, client.WithTimeout(c.Client.Timeout))
	if !cl.Configured() {
		return nil, fmt.Errorf("%w: set client.backend_url in %s or pass --local", client.ErrConfiguration, cfgFile)
	}
	return cl, nil
}

func openStore(c *config.Config) (storage.Store, error) {
	s, err := storage.Open(c.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("opening %s storage: %w", c.Storage.Driver, err)
	}
	return s, nil
}

// searchFlags holds the raw values of the search parameter flags.
type searchFlags struct {
	date       string
	niche      string
	volume     string
	saturation string
	sortBy     string
}

// params validates the flags into search parameters.
func (f searchFlags) params(now time.Time) (trend.SearchParameters, error) {
	p := view.DefaultParams(now)
	if f.date != "" {
		if _, err := time.Parse(trend.DateLayout, f.date); err != nil {
			return p, fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", f.date)
		}
		p.SelectedDate = f.date
	}
	p.Niche = f.niche

	var err error
	if p.MinSearchVolume, err = trend.ParseSearchVolume(f.volume); err != nil {
		return p, err
	}
	if p.MaxSaturation, err = trend.ParseSaturationLevel(f.saturation); err != nil {
		return p, err
	}
	if p.SortBy, err = trend.ParseSortBy(f.sortBy); err != nil {
		return p, err
	}
	return p, nil
}
