package schedule

import (
	"log/slog"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
)

// pickSchedule resolves the applicable schedule from candidates ordered
// employee-specific first, then site-wide, each tier by creation time. An
// employee-specific row always beats a site-wide one. Multiple rows in the
// same tier are a configuration error; the first one wins and a warning is
// logged so the report is never silently dropped.
func pickSchedule(employeeID, siteID string, candidates []schedule.WorkSchedule) *schedule.WorkSchedule {
	var employeeTier, siteTier []*schedule.WorkSchedule
	for i := range candidates {
		c := &candidates[i]
		// An employee override is scoped to its site; it never follows the
		// employee to a different site.
		if c.EmployeeID != nil && *c.EmployeeID == employeeID && c.SiteID == siteID {
			employeeTier = append(employeeTier, c)
		} else if c.EmployeeID == nil && c.SiteID == siteID {
			siteTier = append(siteTier, c)
		}
	}

	if len(employeeTier) > 0 {
		if len(employeeTier) > 1 {
			slog.Warn("Multiple employee schedules match, using first",
				"employee_id", employeeID,
				"site_id", siteID,
				"schedule_id", employeeTier[0].ID,
				"match_count", len(employeeTier))
		}
		return employeeTier[0]
	}

	if len(siteTier) > 0 {
		if len(siteTier) > 1 {
			slog.Warn("Multiple site schedules match, using first",
				"site_id", siteID,
				"schedule_id", siteTier[0].ID,
				"match_count", len(siteTier))
		}
		return siteTier[0]
	}

	return nil
}
