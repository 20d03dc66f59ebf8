package report

import (
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
)

// dayTimeline is the reconstructed working day for one employee. Minutes stay
// floating-point through the whole pipeline; rounding happens once at the
// response boundary.
type dayTimeline struct {
	Day           time.Time // midnight of the local calendar day
	InsideMinutes float64
	MealMinutes   float64
	HadEntry      bool
	FirstEntryAt  *time.Time
	LastEventAt   time.Time
	// LastCloseAt is when the day's last working period closed; the early
	// departure check compares it against the scheduled clock-out.
	LastCloseAt *time.Time
}

func (d *dayTimeline) EffectiveMinutes() float64 {
	return d.InsideMinutes - d.MealMinutes
}

// reconstruct walks one employee's chronologically sorted events and returns
// one timeline per local calendar day that has events. Day bucketing uses the
// configured reporting zone, never a fixed offset.
func reconstruct(events []tracking.Event, loc *time.Location) []dayTimeline {
	if len(events) == 0 {
		return nil
	}

	var days []dayTimeline
	var cur *dayTimeline
	var insideSince, mealStartedAt *time.Time

	closeDay := func() {
		if cur == nil {
			return
		}
		if insideSince != nil {
			// Flush against the day's last event, not midnight: an employee
			// who stopped pinging is under-counted, which is the accepted
			// approximation
			cur.InsideMinutes += cur.LastEventAt.Sub(*insideSince).Minutes()
			last := cur.LastEventAt
			cur.LastCloseAt = &last
		}
		days = append(days, *cur)
		cur = nil
		insideSince = nil
		mealStartedAt = nil
	}

	for i := range events {
		e := &events[i]
		ts := e.OccurredAt.In(loc)
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, loc)

		if cur == nil || !cur.Day.Equal(day) {
			closeDay()
			cur = &dayTimeline{Day: day}
		}
		cur.LastEventAt = ts

		switch e.Kind {
		case tracking.EventEntry, tracking.EventInside:
			if insideSince == nil {
				t := ts
				insideSince = &t
			}
			if e.Kind == tracking.EventEntry {
				cur.HadEntry = true
				if cur.FirstEntryAt == nil {
					t := ts
					cur.FirstEntryAt = &t
				}
			}
		case tracking.EventExit, tracking.EventOutside:
			if insideSince != nil {
				cur.InsideMinutes += ts.Sub(*insideSince).Minutes()
				t := ts
				cur.LastCloseAt = &t
				insideSince = nil
			}
		case tracking.EventMealStart:
			if insideSince != nil {
				cur.InsideMinutes += ts.Sub(*insideSince).Minutes()
				t := ts
				cur.LastCloseAt = &t
				insideSince = nil
				m := ts
				mealStartedAt = &m
			}
		case tracking.EventMealResume:
			if mealStartedAt != nil {
				cur.MealMinutes += ts.Sub(*mealStartedAt).Minutes()
				mealStartedAt = nil
				t := ts
				insideSince = &t
			}
		case tracking.EventRawLocation:
			// Position sample only, no state transition
		}
	}
	closeDay()

	return days
}
