package launch

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// RocketSuccessRate groups launches by rocket and reports per-rocket
// totals and the percentage of successful launches. A rocket with no
// launches would divide by zero; the rate is pinned to 0 in that case.
// Results are ordered by rocket name for deterministic output.
func (s *Service) RocketSuccessRate(ctx context.Context) ([]RocketStats, error) {
	launches, rockets, _, err := s.fetchStats(ctx, false)
	if err != nil {
		return nil, err
	}

	rocketNames := make(map[string]string, len(rockets))
	for _, r := range rockets {
		rocketNames[r.ID] = r.Name
	}

	type counts struct {
		total   int
		success int
	}
	byRocket := make(map[string]*counts)
	for _, l := range launches {
		c := byRocket[l.Rocket]
		if c == nil {
			c = &counts{}
			byRocket[l.Rocket] = c
		}
		c.total++
		if l.Success != nil && *l.Success {
			c.success++
		}
	}

	stats := make([]RocketStats, 0, len(byRocket))
	for rocketID, c := range byRocket {
		rate := 0.0
		if c.total > 0 {
			rate = float64(c.success) / float64(c.total) * 100
		}
		stats = append(stats, RocketStats{
			RocketName:  rocketNames[rocketID],
			Total:       c.total,
			Success:     c.success,
			SuccessRate: rate,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].RocketName < stats[j].RocketName })

	s.logger.Info().Int("rockets", len(stats)).Msg("Computed rocket success rates")
	return stats, nil
}

// LaunchSiteRate counts launches per launch site name. Launches without a
// launchpad reference are skipped. Results are ordered by site name.
func (s *Service) LaunchSiteRate(ctx context.Context) ([]SiteStats, error) {
	launches, _, launchpads, err := s.fetchStats(ctx, true)
	if err != nil {
		return nil, err
	}

	padNames := make(map[string]string, len(launchpads))
	for _, p := range launchpads {
		padNames[p.ID] = p.Name
	}

	byPad := make(map[string]int)
	for _, l := range launches {
		if l.Launchpad == "" {
			continue
		}
		byPad[padNames[l.Launchpad]]++
	}

	stats := make([]SiteStats, 0, len(byPad))
	for name, total := range byPad {
		stats = append(stats, SiteStats{LaunchpadName: name, Total: total})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].LaunchpadName < stats[j].LaunchpadName })

	s.logger.Info().Int("launchpads", len(stats)).Msg("Computed launch site counts")
	return stats, nil
}

// LaunchFrequency buckets launches by year and by year-month of their
// launch date (UTC).
func (s *Service) LaunchFrequency(ctx context.Context) (FrequencyStats, error) {
	launches, err := s.source.Launches(ctx)
	if err != nil {
		return FrequencyStats{}, err
	}

	stats := FrequencyStats{
		ByYear:  make(map[string]int),
		ByMonth: make(map[string]int),
	}
	for _, l := range launches {
		date := l.DateUTC.UTC()
		stats.ByYear[fmt.Sprintf("%04d", date.Year())]++
		stats.ByMonth[fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))]++
	}

	s.logger.Info().
		Int("years", len(stats.ByYear)).
		Int("months", len(stats.ByMonth)).
		Msg("Computed launch frequency")
	return stats, nil
}

// fetchStats fetches launches plus whichever reference collection the
// statistic needs, concurrently.
func (s *Service) fetchStats(ctx context.Context, wantPads bool) ([]Launch, []Rocket, []Launchpad, error) {
	var (
		launches   []Launch
		rockets    []Rocket
		launchpads []Launchpad
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		launches, err = s.source.Launches(gctx)
		return err
	})
	if wantPads {
		g.Go(func() error {
			var err error
			launchpads, err = s.source.Launchpads(gctx)
			return err
		})
	} else {
		g.Go(func() error {
			var err error
			rockets, err = s.source.Rockets(gctx)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return launches, rockets, launchpads, nil
}
