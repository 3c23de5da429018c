package launch

import (
	"sort"
	"strings"
	"time"
)

// MatchMode selects how rocket and launchpad name filters compare against
// resolved names. Both comparisons are case-insensitive.
type MatchMode string

const (
	// MatchContains matches when the filter value is a substring of the
	// name. This is the default policy.
	MatchContains MatchMode = "contains"

	// MatchExact matches on full equality.
	MatchExact MatchMode = "exact"
)

// SortOrder optionally orders filtered results by launch date. The zero
// value preserves upstream order.
type SortOrder string

const (
	SortNone     SortOrder = ""
	SortDateAsc  SortOrder = "asc"
	SortDateDesc SortOrder = "desc"
)

// Filter restricts a joined launch sequence. All set fields must match
// (conjunction); zero fields are unconstrained.
type Filter struct {
	// StartDate and EndDate bound the launch date inclusively. Inputs in
	// any timezone are normalized to UTC before comparison.
	StartDate *time.Time
	EndDate   *time.Time

	// Rocket matches the resolved rocket name per Mode.
	Rocket string

	// Success matches the tri-state outcome exactly. nil = unconstrained.
	Success *bool

	// Launchpad matches the resolved launchpad name per Mode.
	Launchpad string

	// Mode is the name matching policy. Empty defaults to MatchContains.
	Mode MatchMode

	// Sort optionally orders the result by launch date.
	Sort SortOrder
}

// Apply returns the subsequence of views satisfying every set predicate,
// in upstream order unless a sort is requested.
func (f Filter) Apply(views []View) []View {
	out := make([]View, 0, len(views))
	for _, v := range views {
		if f.matches(v) {
			out = append(out, v)
		}
	}

	switch f.Sort {
	case SortDateAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DateUTC.Before(out[j].DateUTC) })
	case SortDateDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[j].DateUTC.Before(out[i].DateUTC) })
	}

	return out
}

func (f Filter) matches(v View) bool {
	date := v.DateUTC.UTC()
	if f.StartDate != nil && date.Before(f.StartDate.UTC()) {
		return false
	}
	if f.EndDate != nil && date.After(f.EndDate.UTC()) {
		return false
	}
	if f.Rocket != "" && !matchName(v.RocketName, f.Rocket, f.Mode) {
		return false
	}
	if f.Success != nil && !successEqual(v.Success, *f.Success) {
		return false
	}
	if f.Launchpad != "" && !matchName(v.LaunchpadName, f.Launchpad, f.Mode) {
		return false
	}
	return true
}

// matchName compares a resolved name against a filter value. A launch with
// an unresolved (empty) name never matches a name filter.
func matchName(name, filter string, mode MatchMode) bool {
	if name == "" {
		return false
	}
	name = strings.ToLower(name)
	filter = strings.ToLower(filter)

	if mode == MatchExact {
		return name == filter
	}
	return strings.Contains(name, filter)
}

func successEqual(actual *bool, want bool) bool {
	return actual != nil && *actual == want
}
