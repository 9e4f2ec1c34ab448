package trend

import (
	"fmt"
	"strconv"
)

// Trend is a search term with its estimated daily demand and existing supply.
// Term is the identity key; comparisons are case-sensitive.
type Trend struct {
	Term          string `json:"term"`
	DailySearches int64  `json:"dailySearches"`
	VideoCount    int64  `json:"videoCount"`
}

// ContentIdeas holds generated video titles and a markdown outline for a term.
type ContentIdeas struct {
	Titles  []string `json:"titles"`
	Outline string   `json:"outline"`
}

// SearchVolume is the minimum daily search volume a topic must exceed.
type SearchVolume int64

const (
	Volume10K  SearchVolume = 10000
	Volume50K  SearchVolume = 50000
	Volume100K SearchVolume = 100000
	Volume500K SearchVolume = 500000
)

// SearchVolumes lists the accepted volume thresholds in ascending order.
var SearchVolumes = []SearchVolume{Volume10K, Volume50K, Volume100K, Volume500K}

// String returns the wire encoding of the volume.
func (v SearchVolume) String() string {
	return strconv.FormatInt(int64(v), 10)
}

// ParseSearchVolume parses one of the accepted volume thresholds.
func ParseSearchVolume(s string) (SearchVolume, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid search volume %q: %w", s, err)
	}
	for _, v := range SearchVolumes {
		if int64(v) == n {
			return v, nil
		}
	}
	return 0, fmt.Errorf("invalid search volume %q: must be one of 10000, 50000, 100000, 500000", s)
}

// SaturationLevel is the maximum videoCount/dailySearches ratio a topic may have.
// The value is kept in its decimal string form because that is how it travels
// to the endpoint and into the prompt.
type SaturationLevel string

const (
	Saturation5Pct         SaturationLevel = "0.05"
	Saturation1Pct         SaturationLevel = "0.01"
	SaturationTenthPct     SaturationLevel = "0.001"
	SaturationHundredthPct SaturationLevel = "0.0001"
)

// SaturationLevels lists the accepted saturation ceilings, loosest first.
var SaturationLevels = []SaturationLevel{Saturation5Pct, Saturation1Pct, SaturationTenthPct, SaturationHundredthPct}

// ParseSaturationLevel parses one of the accepted saturation ceilings.
// "1e-2" and "0.010" are accepted as spellings of "0.01".
func ParseSaturationLevel(s string) (SaturationLevel, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return "", fmt.Errorf("invalid saturation level %q: %w", s, err)
	}
	for _, l := range SaturationLevels {
		if l.Float() == f {
			return l, nil
		}
	}
	return "", fmt.Errorf("invalid saturation level %q: must be one of 0.05, 0.01, 0.001, 0.0001", s)
}

// Float returns the numeric ratio.
func (l SaturationLevel) Float() float64 {
	f, _ := strconv.ParseFloat(string(l), 64)
	return f
}

// SortBy selects the ordering applied to a trend list.
type SortBy string

const (
	SortByDailySearches SortBy = "dailySearches"
	SortBySaturation    SortBy = "saturation"
	SortByVideoCount    SortBy = "videoCount"
)

// ParseSortBy validates a sort option.
func ParseSortBy(s string) (SortBy, error) {
	switch SortBy(s) {
	case SortByDailySearches, SortBySaturation, SortByVideoCount:
		return SortBy(s), nil
	default:
		return "", fmt.Errorf("invalid sort option %q: must be one of dailySearches, saturation, videoCount", s)
	}
}

// Tab is the list currently displayed: fresh search results or saved terms.
type Tab string

const (
	TabSearch Tab = "search"
	TabSaved  Tab = "saved"
)

// DateLayout is the calendar date format used for SelectedDate.
const DateLayout = "2006-01-02"

// SearchParameters describes one content-gap query.
type SearchParameters struct {
	SelectedDate    string
	Niche           string
	MinSearchVolume SearchVolume
	MaxSaturation   SaturationLevel
	SortBy          SortBy
}
