package launch

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func boolPtr(b bool) *bool { return &b }

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(t time.Time) *time.Time { return &t }

// testViews is a small joined fixture: two Falcon 9 launches (one success,
// one failure), one successful Falcon Heavy, and one upcoming launch with
// an unresolved launchpad.
func testViews() []View {
	return []View{
		{
			ID:            "l1",
			Name:          "CRS-20",
			DateUTC:       date("2020-03-07T04:50:31Z"),
			Success:       boolPtr(true),
			RocketName:    "Falcon 9",
			LaunchpadName: "CCSFS SLC 40",
		},
		{
			ID:            "l2",
			Name:          "Starlink-15",
			DateUTC:       date("2020-10-24T15:31:00Z"),
			Success:       boolPtr(false),
			RocketName:    "Falcon 9",
			LaunchpadName: "KSC LC 39A",
		},
		{
			ID:            "l3",
			Name:          "Arabsat-6A",
			DateUTC:       date("2019-04-11T22:35:00Z"),
			Success:       boolPtr(true),
			RocketName:    "Falcon Heavy",
			LaunchpadName: "KSC LC 39A",
		},
		{
			ID:         "l4",
			Name:       "TBD Mission",
			DateUTC:    date("2022-11-01T12:00:00Z"),
			Success:    nil,
			RocketName: "Falcon 9",
			// LaunchpadName unresolved
		},
	}
}

func ids(views []View) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.ID)
	}
	return out
}

func TestFilter_Empty(t *testing.T) {
	views := testViews()
	got := Filter{}.Apply(views)

	if diff := cmp.Diff(views, got); diff != "" {
		t.Errorf("Empty filter changed the sequence (-want +got):\n%s", diff)
	}
}

func TestFilter_DateWindow(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "start date only",
			filter: Filter{StartDate: timePtr(date("2020-01-01T00:00:00Z"))},
			want:   []string{"l1", "l2", "l4"},
		},
		{
			name:   "end date only",
			filter: Filter{EndDate: timePtr(date("2019-12-31T23:59:59Z"))},
			want:   []string{"l3"},
		},
		{
			name: "window",
			filter: Filter{
				StartDate: timePtr(date("2020-01-01T00:00:00Z")),
				EndDate:   timePtr(date("2020-12-31T23:59:59Z")),
			},
			want: []string{"l1", "l2"},
		},
		{
			name:   "start boundary is inclusive",
			filter: Filter{StartDate: timePtr(date("2020-03-07T04:50:31Z"))},
			want:   []string{"l1", "l2", "l4"},
		},
		{
			name: "end boundary is inclusive",
			filter: Filter{
				StartDate: timePtr(date("2020-01-01T00:00:00Z")),
				EndDate:   timePtr(date("2020-10-24T15:31:00Z")),
			},
			want: []string{"l1", "l2"},
		},
		{
			name: "start date in non-UTC zone is normalized",
			// 2020-03-07T04:50:31Z expressed as +05:30
			filter: Filter{
				StartDate: timePtr(date("2020-03-07T10:20:31+05:30")),
				EndDate:   timePtr(date("2020-03-08T00:00:00Z")),
			},
			want: []string{"l1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(testViews())
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Filtered ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_NameMatching(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "rocket contains is default",
			filter: Filter{Rocket: "falcon"},
			want:   []string{"l1", "l2", "l3", "l4"},
		},
		{
			name:   "rocket contains substring",
			filter: Filter{Rocket: "heavy"},
			want:   []string{"l3"},
		},
		{
			name:   "rocket exact",
			filter: Filter{Rocket: "falcon 9", Mode: MatchExact},
			want:   []string{"l1", "l2", "l4"},
		},
		{
			name:   "rocket exact does not match substring",
			filter: Filter{Rocket: "falcon", Mode: MatchExact},
			want:   []string{},
		},
		{
			name:   "launchpad contains",
			filter: Filter{Launchpad: "ksc"},
			want:   []string{"l2", "l3"},
		},
		{
			name:   "launchpad exact",
			filter: Filter{Launchpad: "ksc lc 39a", Mode: MatchExact},
			want:   []string{"l2", "l3"},
		},
		{
			name:   "unresolved launchpad never matches",
			filter: Filter{Launchpad: "tbd"},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(testViews())
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Filtered ids mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_Success(t *testing.T) {
	views := testViews()

	succeeded := Filter{Success: boolPtr(true)}.Apply(views)
	if diff := cmp.Diff([]string{"l1", "l3"}, ids(succeeded)); diff != "" {
		t.Errorf("Success=true mismatch (-want +got):\n%s", diff)
	}

	failed := Filter{Success: boolPtr(false)}.Apply(views)
	if diff := cmp.Diff([]string{"l2"}, ids(failed)); diff != "" {
		t.Errorf("Success=false mismatch (-want +got):\n%s", diff)
	}

	// Unknown outcome (l4) matches neither true nor false
	for _, v := range append(succeeded, failed...) {
		if v.ID == "l4" {
			t.Error("Launch with unknown outcome must not match a success filter")
		}
	}
}

func TestFilter_Conjunction(t *testing.T) {
	filter := Filter{
		StartDate: timePtr(date("2020-01-01T00:00:00Z")),
		Rocket:    "falcon 9",
		Success:   boolPtr(true),
	}
	got := filter.Apply(testViews())

	if diff := cmp.Diff([]string{"l1"}, ids(got)); diff != "" {
		t.Errorf("Conjunction mismatch (-want +got):\n%s", diff)
	}
}

// Every filtered result is a subset of the unfiltered sequence and each
// record satisfies all active predicates.
func TestFilter_SubsetProperty(t *testing.T) {
	views := testViews()
	all := map[string]View{}
	for _, v := range views {
		all[v.ID] = v
	}

	filters := []Filter{
		{Rocket: "falcon"},
		{Success: boolPtr(true)},
		{Launchpad: "ksc"},
		{StartDate: timePtr(date("2020-01-01T00:00:00Z"))},
		{Rocket: "falcon 9", Mode: MatchExact, Success: boolPtr(false)},
	}

	for _, f := range filters {
		got := f.Apply(views)
		if len(got) > len(views) {
			t.Fatalf("Filter produced more records than input")
		}
		for _, v := range got {
			orig, ok := all[v.ID]
			if !ok {
				t.Errorf("Filter produced record %q not present in input", v.ID)
				continue
			}
			if diff := cmp.Diff(orig, v); diff != "" {
				t.Errorf("Filter mutated record %q (-want +got):\n%s", v.ID, diff)
			}
			if !f.matches(v) {
				t.Errorf("Record %q does not satisfy its own filter", v.ID)
			}
		}
	}
}

func TestFilter_Sort(t *testing.T) {
	asc := Filter{Sort: SortDateAsc}.Apply(testViews())
	if diff := cmp.Diff([]string{"l3", "l1", "l2", "l4"}, ids(asc)); diff != "" {
		t.Errorf("Ascending sort mismatch (-want +got):\n%s", diff)
	}

	desc := Filter{Sort: SortDateDesc}.Apply(testViews())
	if diff := cmp.Diff([]string{"l4", "l2", "l1", "l3"}, ids(desc)); diff != "" {
		t.Errorf("Descending sort mismatch (-want +got):\n%s", diff)
	}

	// No sort preserves upstream order
	unsorted := Filter{}.Apply(testViews())
	if diff := cmp.Diff([]string{"l1", "l2", "l3", "l4"}, ids(unsorted)); diff != "" {
		t.Errorf("Unsorted order mismatch (-want +got):\n%s", diff)
	}
}
