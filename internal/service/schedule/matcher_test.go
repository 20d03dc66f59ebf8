package schedule

import (
	"testing"
	"time"

	"github.com/RobertoAguirre/amn-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sched(id string, employeeID *string, siteID string, created time.Time) schedule.WorkSchedule {
	return schedule.WorkSchedule{
		ID:         id,
		EmployeeID: employeeID,
		SiteID:     siteID,
		Active:     true,
		CreatedAt:  created,
	}
}

func TestPickSchedule_EmployeeOverrideWins(t *testing.T) {
	base := time.Now()
	candidates := []schedule.WorkSchedule{
		sched("s-emp", strPtr("emp-1"), "site-1", base),
		sched("s-site", nil, "site-1", base.Add(-time.Hour)),
	}

	got := pickSchedule("emp-1", "site-1", candidates)
	require.NotNil(t, got)
	assert.Equal(t, "s-emp", got.ID)
}

func TestPickSchedule_SiteWideFallback(t *testing.T) {
	candidates := []schedule.WorkSchedule{
		sched("s-site", nil, "site-1", time.Now()),
	}

	got := pickSchedule("emp-1", "site-1", candidates)
	require.NotNil(t, got)
	assert.Equal(t, "s-site", got.ID)
}

func TestPickSchedule_EmployeeOverrideScopedToSite(t *testing.T) {
	base := time.Now()
	candidates := []schedule.WorkSchedule{
		sched("s-emp-other-site", strPtr("emp-1"), "site-2", base),
		sched("s-site", nil, "site-1", base.Add(-time.Hour)),
	}

	// The override belongs to site-2; at site-1 the site-wide default applies
	got := pickSchedule("emp-1", "site-1", candidates)
	require.NotNil(t, got)
	assert.Equal(t, "s-site", got.ID)

	// With no site-wide row either, nothing matches at site-1
	got = pickSchedule("emp-1", "site-1", candidates[:1])
	assert.Nil(t, got)
}

func TestPickSchedule_NoMatch(t *testing.T) {
	assert.Nil(t, pickSchedule("emp-1", "site-1", nil))

	candidates := []schedule.WorkSchedule{
		sched("s-other", strPtr("emp-2"), "site-2", time.Now()),
	}
	assert.Nil(t, pickSchedule("emp-1", "site-1", candidates))
}

func TestPickSchedule_AmbiguousTierUsesFirst(t *testing.T) {
	base := time.Now()
	candidates := []schedule.WorkSchedule{
		sched("s-first", nil, "site-1", base.Add(-2*time.Hour)),
		sched("s-second", nil, "site-1", base),
	}

	got := pickSchedule("emp-1", "site-1", candidates)
	require.NotNil(t, got)
	assert.Equal(t, "s-first", got.ID)
}
