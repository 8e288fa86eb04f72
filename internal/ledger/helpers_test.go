package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/stpnv0/HoursLedger/internal/calendar"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	n := 0
	return New(calendar.New(time.UTC), DefaultPolicy(), WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("b%d", n)
	}))
}

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func emptyPackage(total float64) domain.Package {
	return domain.Package{ID: "p1", Name: "Maths", TotalHours: total, RemainingHours: total}
}

func recurring(id string, start time.Time, hours float64, weeks int, days ...domain.Weekday) domain.Booking {
	return domain.Booking{
		ID:          id,
		Type:        domain.BookingTypeRecurring,
		StartDate:   start,
		HoursBooked: hours,
		Recurrence:  &domain.Recurrence{Weeks: weeks, Days: days},
	}
}

func single(id string, start time.Time, hours float64) domain.Booking {
	return domain.Booking{
		ID:          id,
		Type:        domain.BookingTypeSingle,
		DateTime:    start,
		HoursBooked: hours,
	}
}

func keysOf(occs []Occurrence) []string {
	out := make([]string, 0, len(occs))
	for _, o := range occs {
		out = append(out, o.DateKey)
	}
	return out
}

func mustResolve(t *testing.T, e *Engine, pkg domain.Package, now time.Time) PackageView {
	t.Helper()
	view, err := e.Resolve(pkg, now)
	require.NoError(t, err)
	return view
}
