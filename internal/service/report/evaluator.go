package report

import (
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/notification"
	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/RobertoAguirre/amn-backend-go/internal/pkg/validator"
)

// latenessUrgentThreshold is how many minutes past tolerance promote a
// lateness notification from medium to high priority.
const latenessUrgentThreshold = 30.0

// scheduleAggregates accumulates schedule-comparison totals in minutes; the
// service converts to hours when assembling the response.
type scheduleAggregates struct {
	ScheduleName        string
	ExpectedMinutes     float64
	DaysAbsent          int
	LatenessCount       int
	LateMinutes         float64
	EarlyDepartureCount int
	EarlyMinutes        float64
	OvertimeMinutes     float64
}

type employeeAggregates struct {
	InsideMinutes    float64
	MealMinutes      float64
	EffectiveMinutes float64
	DaysWorked       int
	Schedule         *scheduleAggregates
}

type evalSubject struct {
	EmployeeID   string
	EmployeeName string
	SiteID       *string
}

// evaluate aggregates one employee's reconstructed days over [from, to]
// against the matched schedule. With no schedule only raw totals are
// produced. emit receives notification intents; the caller decides whether
// emission is wired to a real sink.
func evaluate(
	subject evalSubject,
	days []dayTimeline,
	from, to time.Time,
	sched *schedule.WorkSchedule,
	loc *time.Location,
	emit func(notification.EmitRequest),
) employeeAggregates {
	agg := employeeAggregates{}

	byDay := make(map[time.Time]*dayTimeline, len(days))
	for i := range days {
		d := &days[i]
		byDay[d.Day] = d
		agg.InsideMinutes += d.InsideMinutes
		agg.MealMinutes += d.MealMinutes
		agg.EffectiveMinutes += d.EffectiveMinutes()
		if d.HadEntry {
			agg.DaysWorked++
		}
	}

	if sched == nil {
		return agg
	}

	sa := &scheduleAggregates{ScheduleName: sched.Name}
	agg.Schedule = sa

	expectedIn, errIn := validator.ParseClockTime(sched.ClockIn)
	expectedOut, errOut := validator.ParseClockTime(sched.ClockOut)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		// Non-working days are excluded from schedule aggregates entirely
		if !sched.AppliesOn(int(day.Weekday())) {
			continue
		}
		sa.ExpectedMinutes += sched.ExpectedHours * 60

		d := byDay[day]

		if d == nil || !d.HadEntry {
			sa.DaysAbsent++
			emit(notification.EmitRequest{
				Kind:         notification.KindAbsence,
				EmployeeID:   subject.EmployeeID,
				EmployeeName: subject.EmployeeName,
				SiteID:       subject.SiteID,
				EventDate:    day,
				Priority:     notification.PriorityHigh,
				Detail:       notification.AbsenceDetail{Date: day.Format("2006-01-02")},
			})
			continue
		}

		// Lateness against expected clock-in plus tolerance
		if errIn == nil && d.FirstEntryAt != nil {
			actual := minutesOfDay(*d.FirstEntryAt, loc)
			over := actual - float64(expectedIn) - float64(sched.ToleranceMinutes)
			if over > 0 {
				sa.LatenessCount++
				sa.LateMinutes += over

				priority := notification.PriorityMedium
				if over > latenessUrgentThreshold {
					priority = notification.PriorityHigh
				}
				emit(notification.EmitRequest{
					Kind:         notification.KindLateness,
					EmployeeID:   subject.EmployeeID,
					EmployeeName: subject.EmployeeName,
					SiteID:       subject.SiteID,
					EventDate:    day,
					Priority:     priority,
					Detail: notification.LatenessDetail{
						MinutesOver: over,
						ExpectedIn:  sched.ClockIn,
						ActualIn:    d.FirstEntryAt.In(loc).Format("15:04"),
					},
				})
			}
		}

		// Early departure against expected clock-out
		if errOut == nil && d.LastCloseAt != nil {
			actual := minutesOfDay(*d.LastCloseAt, loc)
			early := float64(expectedOut) - actual
			if early > 0 {
				sa.EarlyDepartureCount++
				sa.EarlyMinutes += early
				emit(notification.EmitRequest{
					Kind:         notification.KindEarlyDeparture,
					EmployeeID:   subject.EmployeeID,
					EmployeeName: subject.EmployeeName,
					SiteID:       subject.SiteID,
					EventDate:    day,
					Priority:     notification.PriorityMedium,
					Detail: notification.EarlyDepartureDetail{
						MinutesEarly: early,
						ExpectedOut:  sched.ClockOut,
						ActualOut:    d.LastCloseAt.In(loc).Format("15:04"),
					},
				})
			}
		}

		// Overtime accumulates silently, there is no notification for it
		if excess := d.EffectiveMinutes() - sched.ExpectedHours*60; excess > 0 {
			sa.OvertimeMinutes += excess
		}
	}

	return agg
}

func minutesOfDay(t time.Time, loc *time.Location) float64 {
	local := t.In(loc)
	return float64(local.Hour()*60+local.Minute()) + float64(local.Second())/60
}
