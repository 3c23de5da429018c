package launch

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/MrAnandSharan/spacex-launch-tracker/pkg/logging"
)

// Source supplies the three raw collections. Implementations are expected
// to be cache-backed; the service treats every call as cheap enough to
// repeat per request.
type Source interface {
	Launches(ctx context.Context) ([]Launch, error)
	Rockets(ctx context.Context) ([]Rocket, error)
	Launchpads(ctx context.Context) ([]Launchpad, error)
}

// Service joins and aggregates launch data fetched from a Source. It holds
// no state of its own; every result is recomputed from a fresh fetch.
type Service struct {
	source Source
	logger zerolog.Logger
}

// NewService creates a Service over the given source.
func NewService(source Source) *Service {
	if source == nil {
		panic("source cannot be nil")
	}
	return &Service{
		source: source,
		logger: logging.NewLogger("launch-service"),
	}
}

// fetchAll retrieves the three collections concurrently. The fetches are
// independent until the join step; the first failure cancels the rest.
func (s *Service) fetchAll(ctx context.Context) ([]Launch, []Rocket, []Launchpad, error) {
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
	g.Go(func() error {
		var err error
		rockets, err = s.source.Rockets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		launchpads, err = s.source.Launchpads(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	s.logger.Info().
		Int("launches", len(launches)).
		Int("rockets", len(rockets)).
		Int("launchpads", len(launchpads)).
		Msg("Fetched collections")

	return launches, rockets, launchpads, nil
}

// join resolves rocket and launchpad references by identifier. Indexes are
// built once per call; references absent from the fetched collections
// resolve to an empty name.
func join(launches []Launch, rockets []Rocket, launchpads []Launchpad) []View {
	rocketNames := make(map[string]string, len(rockets))
	for _, r := range rockets {
		rocketNames[r.ID] = r.Name
	}
	padNames := make(map[string]string, len(launchpads))
	for _, p := range launchpads {
		padNames[p.ID] = p.Name
	}

	views := make([]View, 0, len(launches))
	for _, l := range launches {
		views = append(views, View{
			ID:            l.ID,
			Name:          l.Name,
			DateUTC:       l.DateUTC,
			Success:       l.Success,
			RocketName:    rocketNames[l.Rocket],
			LaunchpadName: padNames[l.Launchpad],
		})
	}
	return views
}

// GetLaunches returns the joined launch views satisfying the filter, in
// upstream order unless the filter requests a sort.
func (s *Service) GetLaunches(ctx context.Context, f Filter) ([]View, error) {
	launches, rockets, launchpads, err := s.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	views := f.Apply(join(launches, rockets, launchpads))

	s.logger.Debug().
		Int("total", len(launches)).
		Int("filtered", len(views)).
		Msg("Filtered launches")

	return views, nil
}
