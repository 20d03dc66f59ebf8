package report

import (
	"testing"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLoc = func() *time.Location {
	loc, err := time.LoadLocation("America/Mexico_City")
	if err != nil {
		panic(err)
	}
	return loc
}()

func ev(kind tracking.EventKind, day string, clock string) tracking.Event {
	ts, err := time.ParseInLocation("2006-01-02 15:04", day+" "+clock, testLoc)
	if err != nil {
		panic(err)
	}
	site := "site-a"
	e := tracking.Event{
		EmployeeID:   "emp-1",
		EmployeeName: "Juan Pérez",
		Kind:         kind,
		OccurredAt:   ts,
	}
	if kind != tracking.EventOutside {
		e.SiteID = &site
	}
	return e
}

func TestReconstruct_FullDayWithMeal(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:00"),
		ev(tracking.EventMealStart, "2026-03-02", "12:00"),
		ev(tracking.EventMealResume, "2026-03-02", "13:00"),
		ev(tracking.EventExit, "2026-03-02", "17:00"),
	}, testLoc)

	require.Len(t, days, 1)
	d := days[0]
	assert.InDelta(t, 480, d.InsideMinutes, 0.001)
	assert.InDelta(t, 60, d.MealMinutes, 0.001)
	assert.InDelta(t, 420, d.EffectiveMinutes(), 0.001)
	assert.True(t, d.HadEntry)
	require.NotNil(t, d.FirstEntryAt)
	assert.Equal(t, "08:00", d.FirstEntryAt.Format("15:04"))
	require.NotNil(t, d.LastCloseAt)
	assert.Equal(t, "17:00", d.LastCloseAt.Format("15:04"))
}

func TestReconstruct_SingleEntryDay(t *testing.T) {
	// A lone entry closes against itself: zero minutes, still an attended day
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:00"),
	}, testLoc)

	require.Len(t, days, 1)
	assert.Zero(t, days[0].InsideMinutes)
	assert.Zero(t, days[0].MealMinutes)
	assert.True(t, days[0].HadEntry)
}

func TestReconstruct_EndOfDayFlushUsesLastEvent(t *testing.T) {
	// Employee stops pinging after a mid-morning inside sample
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:00"),
		ev(tracking.EventInside, "2026-03-02", "10:30"),
	}, testLoc)

	require.Len(t, days, 1)
	assert.InDelta(t, 150, days[0].InsideMinutes, 0.001)
	require.NotNil(t, days[0].LastCloseAt)
	assert.Equal(t, "10:30", days[0].LastCloseAt.Format("15:04"))
}

func TestReconstruct_MultipleDays(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:00"),
		ev(tracking.EventExit, "2026-03-02", "16:00"),
		ev(tracking.EventEntry, "2026-03-03", "09:00"),
		ev(tracking.EventExit, "2026-03-03", "17:00"),
	}, testLoc)

	require.Len(t, days, 2)
	assert.InDelta(t, 480, days[0].InsideMinutes, 0.001)
	assert.InDelta(t, 480, days[1].InsideMinutes, 0.001)
	assert.Equal(t, "2026-03-02", days[0].Day.Format("2006-01-02"))
	assert.Equal(t, "2026-03-03", days[1].Day.Format("2006-01-02"))
}

func TestReconstruct_MealWithoutResume(t *testing.T) {
	// meal_start closes the working period; without a resume the meal
	// interval is never accumulated
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:00"),
		ev(tracking.EventMealStart, "2026-03-02", "12:00"),
		ev(tracking.EventExit, "2026-03-02", "17:00"),
	}, testLoc)

	require.Len(t, days, 1)
	assert.InDelta(t, 240, days[0].InsideMinutes, 0.001)
	assert.Zero(t, days[0].MealMinutes)
}

func TestReconstruct_OutsideOnlyDay(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventOutside, "2026-03-02", "08:00"),
		ev(tracking.EventOutside, "2026-03-02", "12:00"),
	}, testLoc)

	require.Len(t, days, 1)
	assert.Zero(t, days[0].InsideMinutes)
	assert.False(t, days[0].HadEntry)
	assert.Nil(t, days[0].FirstEntryAt)
}

func TestReconstruct_Conservation(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "07:58"),
		ev(tracking.EventInside, "2026-03-02", "09:13"),
		ev(tracking.EventMealStart, "2026-03-02", "12:07"),
		ev(tracking.EventMealResume, "2026-03-02", "12:49"),
		ev(tracking.EventExit, "2026-03-02", "16:31"),
	}, testLoc)

	require.Len(t, days, 1)
	d := days[0]
	assert.GreaterOrEqual(t, d.InsideMinutes, d.MealMinutes)
	assert.GreaterOrEqual(t, d.MealMinutes, 0.0)
	assert.InDelta(t, d.InsideMinutes-d.MealMinutes, d.EffectiveMinutes(), 0.001)
}

func TestReconstruct_Empty(t *testing.T) {
	assert.Nil(t, reconstruct(nil, testLoc))
}
