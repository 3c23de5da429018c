package launch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeSource serves fixed collections and counts calls per endpoint.
type fakeSource struct {
	launches   []Launch
	rockets    []Rocket
	launchpads []Launchpad

	launchErr error
	rocketErr error
	padErr    error

	launchCalls int32
	rocketCalls int32
	padCalls    int32
}

func (f *fakeSource) Launches(ctx context.Context) ([]Launch, error) {
	atomic.AddInt32(&f.launchCalls, 1)
	if f.launchErr != nil {
		return nil, f.launchErr
	}
	return f.launches, nil
}

func (f *fakeSource) Rockets(ctx context.Context) ([]Rocket, error) {
	atomic.AddInt32(&f.rocketCalls, 1)
	if f.rocketErr != nil {
		return nil, f.rocketErr
	}
	return f.rockets, nil
}

func (f *fakeSource) Launchpads(ctx context.Context) ([]Launchpad, error) {
	atomic.AddInt32(&f.padCalls, 1)
	if f.padErr != nil {
		return nil, f.padErr
	}
	return f.launchpads, nil
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		launches: []Launch{
			{ID: "l1", Name: "CRS-20", DateUTC: date("2020-03-07T04:50:31Z"), Success: boolPtr(true), Rocket: "r1", Launchpad: "p1"},
			{ID: "l2", Name: "Starlink-15", DateUTC: date("2020-10-24T15:31:00Z"), Success: boolPtr(false), Rocket: "r1", Launchpad: "p2"},
			{ID: "l3", Name: "Arabsat-6A", DateUTC: date("2019-04-11T22:35:00Z"), Success: boolPtr(true), Rocket: "r2", Launchpad: "p2"},
			{ID: "l4", Name: "TBD Mission", DateUTC: date("2022-11-01T12:00:00Z"), Rocket: "r1", Launchpad: "p-unknown"},
		},
		rockets: []Rocket{
			{ID: "r1", Name: "Falcon 9"},
			{ID: "r2", Name: "Falcon Heavy"},
		},
		launchpads: []Launchpad{
			{ID: "p1", Name: "CCSFS SLC 40"},
			{ID: "p2", Name: "KSC LC 39A"},
		},
	}
}

func TestNewService_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewService should panic with nil source")
		}
	}()
	NewService(nil)
}

func TestService_GetLaunches_Join(t *testing.T) {
	svc := NewService(newFakeSource())

	views, err := svc.GetLaunches(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("GetLaunches failed: %v", err)
	}

	want := []View{
		{ID: "l1", Name: "CRS-20", DateUTC: date("2020-03-07T04:50:31Z"), Success: boolPtr(true), RocketName: "Falcon 9", LaunchpadName: "CCSFS SLC 40"},
		{ID: "l2", Name: "Starlink-15", DateUTC: date("2020-10-24T15:31:00Z"), Success: boolPtr(false), RocketName: "Falcon 9", LaunchpadName: "KSC LC 39A"},
		{ID: "l3", Name: "Arabsat-6A", DateUTC: date("2019-04-11T22:35:00Z"), Success: boolPtr(true), RocketName: "Falcon Heavy", LaunchpadName: "KSC LC 39A"},
		{ID: "l4", Name: "TBD Mission", DateUTC: date("2022-11-01T12:00:00Z"), RocketName: "Falcon 9", LaunchpadName: ""},
	}
	if diff := cmp.Diff(want, views); diff != "" {
		t.Errorf("Joined views mismatch (-want +got):\n%s", diff)
	}
}

func TestService_GetLaunches_UnresolvedReferenceIsNotAnError(t *testing.T) {
	src := newFakeSource()
	src.launchpads = nil // every launchpad reference now dangles

	svc := NewService(src)
	views, err := svc.GetLaunches(context.Background(), Filter{})
	if err != nil {
		t.Fatalf("GetLaunches failed: %v", err)
	}

	for _, v := range views {
		if v.LaunchpadName != "" {
			t.Errorf("Expected empty launchpad name for %q, got %q", v.ID, v.LaunchpadName)
		}
	}
}

func TestService_GetLaunches_FetchesEachCollectionOnce(t *testing.T) {
	src := newFakeSource()
	svc := NewService(src)

	if _, err := svc.GetLaunches(context.Background(), Filter{}); err != nil {
		t.Fatalf("GetLaunches failed: %v", err)
	}

	if n := atomic.LoadInt32(&src.launchCalls); n != 1 {
		t.Errorf("Expected 1 launches call, got %d", n)
	}
	if n := atomic.LoadInt32(&src.rocketCalls); n != 1 {
		t.Errorf("Expected 1 rockets call, got %d", n)
	}
	if n := atomic.LoadInt32(&src.padCalls); n != 1 {
		t.Errorf("Expected 1 launchpads call, got %d", n)
	}
}

func TestService_GetLaunches_PropagatesFetchError(t *testing.T) {
	wantErr := errors.New("upstream down")

	for _, tt := range []struct {
		name   string
		mutate func(*fakeSource)
	}{
		{"launches fail", func(s *fakeSource) { s.launchErr = wantErr }},
		{"rockets fail", func(s *fakeSource) { s.rocketErr = wantErr }},
		{"launchpads fail", func(s *fakeSource) { s.padErr = wantErr }},
	} {
		t.Run(tt.name, func(t *testing.T) {
			src := newFakeSource()
			tt.mutate(src)

			_, err := NewService(src).GetLaunches(context.Background(), Filter{})
			if !errors.Is(err, wantErr) {
				t.Errorf("Expected fetch error to propagate, got %v", err)
			}
		})
	}
}

func TestService_GetLaunches_AppliesFilter(t *testing.T) {
	svc := NewService(newFakeSource())

	views, err := svc.GetLaunches(context.Background(), Filter{Rocket: "heavy"})
	if err != nil {
		t.Fatalf("GetLaunches failed: %v", err)
	}

	if len(views) != 1 || views[0].ID != "l3" {
		t.Errorf("Expected only l3, got %v", ids(views))
	}
}
