package report

import (
	"testing"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/notification"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// weekdaySchedule covers Monday to Friday, 08:00-17:00 with a 15-minute
// tolerance and an 8-hour expected day.
func weekdaySchedule() *schedule.WorkSchedule {
	return &schedule.WorkSchedule{
		ID:               "sched-1",
		SiteID:           "site-a",
		Name:             "Turno matutino",
		Weekdays:         []int{1, 2, 3, 4, 5},
		ClockIn:          "08:00",
		ClockOut:         "17:00",
		ToleranceMinutes: 15,
		ExpectedHours:    8,
		Active:           true,
	}
}

func day(s string) time.Time {
	d, err := time.ParseInLocation("2006-01-02", s, testLoc)
	if err != nil {
		panic(err)
	}
	return d
}

func collectEmits() (*[]notification.EmitRequest, func(notification.EmitRequest)) {
	var got []notification.EmitRequest
	return &got, func(req notification.EmitRequest) { got = append(got, req) }
}

func subject() evalSubject {
	return evalSubject{EmployeeID: "emp-1", EmployeeName: "Juan Pérez", SiteID: strPtr("site-a")}
}

// 2026-03-02 is a Monday.

func TestEvaluate_WithinTolerance(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:05"),
		ev(tracking.EventExit, "2026-03-02", "17:00"),
	}, testLoc)

	emits, emit := collectEmits()
	agg := evaluate(subject(), days, day("2026-03-02"), day("2026-03-02"), weekdaySchedule(), testLoc, emit)

	require.NotNil(t, agg.Schedule)
	assert.Zero(t, agg.Schedule.LatenessCount)
	assert.Zero(t, agg.Schedule.LateMinutes)
	assert.Empty(t, *emits)
}

func TestEvaluate_LatenessOverTolerance(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:20"),
		ev(tracking.EventExit, "2026-03-02", "17:00"),
	}, testLoc)

	emits, emit := collectEmits()
	agg := evaluate(subject(), days, day("2026-03-02"), day("2026-03-02"), weekdaySchedule(), testLoc, emit)

	require.NotNil(t, agg.Schedule)
	assert.Equal(t, 1, agg.Schedule.LatenessCount)
	assert.InDelta(t, 5, agg.Schedule.LateMinutes, 0.001)

	require.Len(t, *emits, 1)
	e := (*emits)[0]
	assert.Equal(t, notification.KindLateness, e.Kind)
	assert.Equal(t, notification.PriorityMedium, e.Priority)
}

func TestEvaluate_SevereLatenessIsHighPriority(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "09:00"),
		ev(tracking.EventExit, "2026-03-02", "17:00"),
	}, testLoc)

	emits, emit := collectEmits()
	evaluate(subject(), days, day("2026-03-02"), day("2026-03-02"), weekdaySchedule(), testLoc, emit)

	require.Len(t, *emits, 1)
	assert.Equal(t, notification.PriorityHigh, (*emits)[0].Priority)
}

func TestEvaluate_AbsenceExactlyOnce(t *testing.T) {
	// Working Monday with no events at all
	emits, emit := collectEmits()
	agg := evaluate(subject(), nil, day("2026-03-02"), day("2026-03-02"), weekdaySchedule(), testLoc, emit)

	require.NotNil(t, agg.Schedule)
	assert.Equal(t, 1, agg.Schedule.DaysAbsent)

	require.Len(t, *emits, 1)
	assert.Equal(t, notification.KindAbsence, (*emits)[0].Kind)
	assert.Equal(t, notification.PriorityHigh, (*emits)[0].Priority)
}

func TestEvaluate_DayWithoutEntryIsAbsent(t *testing.T) {
	// Events exist but none is an entry
	days := reconstruct([]tracking.Event{
		ev(tracking.EventOutside, "2026-03-02", "08:00"),
		ev(tracking.EventOutside, "2026-03-02", "12:00"),
	}, testLoc)

	emits, emit := collectEmits()
	agg := evaluate(subject(), days, day("2026-03-02"), day("2026-03-02"), weekdaySchedule(), testLoc, emit)

	assert.Equal(t, 1, agg.Schedule.DaysAbsent)
	require.Len(t, *emits, 1)
	assert.Equal(t, notification.KindAbsence, (*emits)[0].Kind)
}

func TestEvaluate_NonWorkingDayExcluded(t *testing.T) {
	// 2026-03-01 is a Sunday: no absence, no lateness, no expected hours,
	// whatever the events say
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-01", "11:00"),
		ev(tracking.EventExit, "2026-03-01", "12:00"),
	}, testLoc)

	emits, emit := collectEmits()
	agg := evaluate(subject(), days, day("2026-03-01"), day("2026-03-01"), weekdaySchedule(), testLoc, emit)

	require.NotNil(t, agg.Schedule)
	assert.Zero(t, agg.Schedule.DaysAbsent)
	assert.Zero(t, agg.Schedule.LatenessCount)
	assert.Zero(t, agg.Schedule.ExpectedMinutes)
	assert.Zero(t, agg.Schedule.OvertimeMinutes)
	assert.Empty(t, *emits)

	// Raw totals still include the Sunday hour
	assert.InDelta(t, 60, agg.InsideMinutes, 0.001)
	assert.Equal(t, 1, agg.DaysWorked)
}

func TestEvaluate_EarlyDeparture(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:00"),
		ev(tracking.EventExit, "2026-03-02", "16:00"),
	}, testLoc)

	emits, emit := collectEmits()
	agg := evaluate(subject(), days, day("2026-03-02"), day("2026-03-02"), weekdaySchedule(), testLoc, emit)

	assert.Equal(t, 1, agg.Schedule.EarlyDepartureCount)
	assert.InDelta(t, 60, agg.Schedule.EarlyMinutes, 0.001)

	require.Len(t, *emits, 1)
	assert.Equal(t, notification.KindEarlyDeparture, (*emits)[0].Kind)
	assert.Equal(t, notification.PriorityMedium, (*emits)[0].Priority)
}

func TestEvaluate_Overtime(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:00"),
		ev(tracking.EventExit, "2026-03-02", "18:00"),
	}, testLoc)

	emits, emit := collectEmits()
	agg := evaluate(subject(), days, day("2026-03-02"), day("2026-03-02"), weekdaySchedule(), testLoc, emit)

	assert.InDelta(t, 120, agg.Schedule.OvertimeMinutes, 0.001)

	// Overtime itself emits nothing
	for _, e := range *emits {
		assert.NotEqual(t, notification.KindOvertime, e.Kind)
	}
}

func TestEvaluate_NoScheduleMeansNilAggregates(t *testing.T) {
	days := reconstruct([]tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "10:00"),
		ev(tracking.EventExit, "2026-03-02", "15:00"),
	}, testLoc)

	emits, emit := collectEmits()
	agg := evaluate(subject(), days, day("2026-03-02"), day("2026-03-02"), nil, testLoc, emit)

	assert.Nil(t, agg.Schedule)
	assert.Empty(t, *emits)
	assert.InDelta(t, 300, agg.InsideMinutes, 0.001)
}

func TestEvaluate_WeekSpan(t *testing.T) {
	// Monday worked, Tuesday absent, Wednesday late, weekend ignored
	events := []tracking.Event{
		ev(tracking.EventEntry, "2026-03-02", "08:00"),
		ev(tracking.EventExit, "2026-03-02", "17:00"),
		ev(tracking.EventEntry, "2026-03-04", "08:30"),
		ev(tracking.EventExit, "2026-03-04", "17:00"),
	}
	days := reconstruct(events, testLoc)

	emits, emit := collectEmits()
	agg := evaluate(subject(), days, day("2026-03-02"), day("2026-03-08"), weekdaySchedule(), testLoc, emit)

	require.NotNil(t, agg.Schedule)
	// Thu + Fri also count as absences; Sat/Sun do not
	assert.Equal(t, 3, agg.Schedule.DaysAbsent)
	assert.Equal(t, 1, agg.Schedule.LatenessCount)
	assert.InDelta(t, 15, agg.Schedule.LateMinutes, 0.001)
	assert.InDelta(t, 5*8*60, agg.Schedule.ExpectedMinutes, 0.001)
	assert.Equal(t, 2, agg.DaysWorked)

	var absences, latenesses int
	for _, e := range *emits {
		switch e.Kind {
		case notification.KindAbsence:
			absences++
		case notification.KindLateness:
			latenesses++
		}
	}
	assert.Equal(t, 3, absences)
	assert.Equal(t, 1, latenesses)
	assert.Len(t, *emits, 4)
}
