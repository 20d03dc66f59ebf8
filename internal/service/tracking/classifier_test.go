package tracking

import (
	"testing"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func zoneA() *geofence.Zone {
	return &geofence.Zone{ID: "z-a", SiteID: "site-a", SiteName: "Site A"}
}

func TestClassify_NoHistory(t *testing.T) {
	// First ever ping inside a zone is an entry
	assert.Equal(t, tracking.EventEntry, Classify(nil, zoneA()))

	// First ever ping outside every zone
	assert.Equal(t, tracking.EventOutside, Classify(nil, nil))
}

func TestClassify_InsideZone(t *testing.T) {
	tests := []struct {
		name string
		prev *tracking.Event
		want tracking.EventKind
	}{
		{
			name: "prev entry at same site stays inside",
			prev: &tracking.Event{Kind: tracking.EventEntry, SiteID: strPtr("site-a")},
			want: tracking.EventInside,
		},
		{
			name: "prev inside at same site stays inside",
			prev: &tracking.Event{Kind: tracking.EventInside, SiteID: strPtr("site-a")},
			want: tracking.EventInside,
		},
		{
			name: "prev meal_resume at same site stays inside",
			prev: &tracking.Event{Kind: tracking.EventMealResume, SiteID: strPtr("site-a")},
			want: tracking.EventInside,
		},
		{
			name: "prev at different site is a new entry",
			prev: &tracking.Event{Kind: tracking.EventInside, SiteID: strPtr("site-b")},
			want: tracking.EventEntry,
		},
		{
			name: "prev exit re-enters",
			prev: &tracking.Event{Kind: tracking.EventExit, SiteID: strPtr("site-a")},
			want: tracking.EventEntry,
		},
		{
			name: "prev outside enters",
			prev: &tracking.Event{Kind: tracking.EventOutside},
			want: tracking.EventEntry,
		},
		{
			name: "prev without site enters",
			prev: &tracking.Event{Kind: tracking.EventRawLocation},
			want: tracking.EventEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prev, zoneA()))
		})
	}
}

func TestClassify_OutsideZones(t *testing.T) {
	tests := []struct {
		name string
		prev *tracking.Event
		want tracking.EventKind
	}{
		{
			name: "leaving a site is an exit",
			prev: &tracking.Event{Kind: tracking.EventInside, SiteID: strPtr("site-a")},
			want: tracking.EventExit,
		},
		{
			name: "prev entry then outside is an exit",
			prev: &tracking.Event{Kind: tracking.EventEntry, SiteID: strPtr("site-a")},
			want: tracking.EventExit,
		},
		{
			name: "already exited stays outside",
			prev: &tracking.Event{Kind: tracking.EventExit, SiteID: strPtr("site-a")},
			want: tracking.EventOutside,
		},
		{
			name: "already outside stays outside",
			prev: &tracking.Event{Kind: tracking.EventOutside},
			want: tracking.EventOutside,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.prev, nil))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	prev := &tracking.Event{Kind: tracking.EventEntry, SiteID: strPtr("site-a")}
	first := Classify(prev, zoneA())
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, Classify(prev, zoneA()))
	}
}
