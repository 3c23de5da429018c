// Package launch contains the domain model and aggregation logic for
// SpaceX launch data: joining launches with rockets and launchpads,
// filtering, statistics, pagination, and export.
package launch

import (
	"time"
)

// Launch is a single launch record as published by the upstream API.
// Success is tri-state: true, false, or nil when the outcome is unknown
// (upcoming launches). Rocket and Launchpad are identifier references into
// the independently fetched collections.
type Launch struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DateUTC   time.Time `json:"date_utc"`
	Success   *bool     `json:"success"`
	Rocket    string    `json:"rocket"`
	Launchpad string    `json:"launchpad"`
}

// Rocket is a rocket record.
type Rocket struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Launchpad is a launch site record.
type Launchpad struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// View is a Launch with its rocket and launchpad references resolved to
// names. An unresolvable reference leaves the name empty; that is a data
// gap, not an error.
type View struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	DateUTC       time.Time `json:"date_utc"`
	Success       *bool     `json:"success"`
	RocketName    string    `json:"rocket"`
	LaunchpadName string    `json:"launchpad"`
}

// RocketStats summarizes launch outcomes for one rocket.
type RocketStats struct {
	RocketName  string  `json:"rocket_name"`
	Total       int     `json:"total"`
	Success     int     `json:"success"`
	SuccessRate float64 `json:"success_rate"`
}

// SiteStats is the launch count for one launch site.
type SiteStats struct {
	LaunchpadName string `json:"launchpad_name"`
	Total         int    `json:"total"`
}

// FrequencyStats buckets launch counts by year (YYYY) and by
// year-month (YYYY-MM).
type FrequencyStats struct {
	ByYear  map[string]int `json:"by_year"`
	ByMonth map[string]int `json:"by_month"`
}
