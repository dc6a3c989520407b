package domain

import (
	"fmt"
	"sort"
)

// EraRange is an inclusive [Start, End] release-year window.
type EraRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether year falls within the range, inclusive.
func (r EraRange) Contains(year int) bool {
	return year >= r.Start && year <= r.End
}

// eraRanges maps era labels to fixed year windows. Adjacent eras may
// touch at boundary years.
var eraRanges = map[string]EraRange{
	"any":         {1895, 2024},
	"silent":      {1895, 1927},
	"golden":      {1927, 1948},
	"postwar":     {1948, 1965},
	"new":         {1965, 1983},
	"blockbuster": {1983, 1999},
	"digital":     {2000, 2010},
	"streaming":   {2010, 2024},
}

// ResolveEra maps an era label to its year range. Unknown labels return
// ErrInvalidEra.
func ResolveEra(label string) (EraRange, error) {
	r, ok := eraRanges[label]
	if !ok {
		return EraRange{}, fmt.Errorf("%w: %q", ErrInvalidEra, label)
	}
	return r, nil
}

// Eras returns a copy of the era table for API consumers.
func Eras() map[string]EraRange {
	out := make(map[string]EraRange, len(eraRanges))
	for label, r := range eraRanges {
		out[label] = r
	}
	return out
}

// EraLabels returns the known era labels in sorted order.
func EraLabels() []string {
	labels := make([]string, 0, len(eraRanges))
	for label := range eraRanges {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
