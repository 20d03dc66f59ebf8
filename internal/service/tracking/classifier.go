package tracking

import (
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/geofence"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
)

// Classify derives the event kind for a new ping from the employee's most
// recent prior event and the zone the ping resolved to. It is a pure function
// of prev.Kind, prev.SiteID and the resolved zone; callers supplying an
// explicit kind bypass it entirely.
func Classify(prev *tracking.Event, zone *geofence.Zone) tracking.EventKind {
	if zone != nil {
		if prev == nil || prev.SiteID == nil || *prev.SiteID != zone.SiteID ||
			prev.Kind == tracking.EventExit || prev.Kind == tracking.EventOutside {
			return tracking.EventEntry
		}
		return tracking.EventInside
	}

	if prev != nil && prev.SiteID != nil &&
		prev.Kind != tracking.EventExit && prev.Kind != tracking.EventOutside {
		return tracking.EventExit
	}
	return tracking.EventOutside
}
