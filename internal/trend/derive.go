package trend

import (
	"math"
	"sort"
)

// Saturation returns videoCount/dailySearches. Terms with no searches are
// treated as infinitely saturated so they rank last, never first.
func Saturation(t Trend) float64 {
	if t.DailySearches > 0 {
		return float64(t.VideoCount) / float64(t.DailySearches)
	}
	return math.Inf(1)
}

// SaturationPercent is the display form of Saturation. It reports 0 for terms
// with no searches, matching what the result cards show.
func SaturationPercent(t Trend) float64 {
	if t.DailySearches > 0 {
		return float64(t.VideoCount) / float64(t.DailySearches) * 100
	}
	return 0
}

// Sort returns a sorted copy of data. The input slice is left untouched and
// equal elements keep their relative order.
func Sort(data []Trend, by SortBy) []Trend {
	out := make([]Trend, len(data))
	copy(out, data)

	var less func(a, b Trend) bool
	switch by {
	case SortByVideoCount:
		less = func(a, b Trend) bool { return a.VideoCount < b.VideoCount }
	case SortBySaturation:
		less = func(a, b Trend) bool { return Saturation(a) < Saturation(b) }
	default:
		less = func(a, b Trend) bool { return a.DailySearches > b.DailySearches }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// IndexOf returns the position of the trend with the given term, or -1.
func IndexOf(list []Trend, term string) int {
	for i, t := range list {
		if t.Term == term {
			return i
		}
	}
	return -1
}

// Toggle removes the trend whose term matches t, or appends t when absent.
// A new slice is returned; list is not modified.
func Toggle(list []Trend, t Trend) []Trend {
	if i := IndexOf(list, t.Term); i >= 0 {
		out := make([]Trend, 0, len(list)-1)
		out = append(out, list[:i]...)
		return append(out, list[i+1:]...)
	}
	out := make([]Trend, 0, len(list)+1)
	out = append(out, list...)
	return append(out, t)
}
