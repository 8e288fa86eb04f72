package ledger

import (
	"testing"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_SingleYesterday(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	pkg := emptyPackage(20)
	pkg.Bookings = []domain.Booking{single("s1", now.AddDate(0, 0, -1), 2)}

	res, err := e.Reconcile(pkg, now)
	require.NoError(t, err)

	assert.True(t, res.Changed)
	require.Len(t, res.Completed, 1)
	assert.Equal(t, "s1", res.Completed[0].Key)
	assert.True(t, res.Package.Bookings[0].IsProcessed)
	assert.Equal(t, 18.0, res.Package.RemainingHours)
	assert.False(t, pkg.Bookings[0].IsProcessed)
}

func TestReconcile_Idempotent(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 23, 12, 0)

	pkg := emptyPackage(20)
	pkg.Bookings = []domain.Booking{
		recurring("r1", at(2026, 10, 12, 10, 0), 1, 3, domain.Monday, domain.Wednesday, domain.Friday),
		single("s1", at(2026, 10, 20, 9, 0), 2),
	}

	first, err := e.Reconcile(pkg, now)
	require.NoError(t, err)
	require.True(t, first.Changed)

	second, err := e.Reconcile(first.Package, now)
	require.NoError(t, err)

	assert.False(t, second.Changed)
	assert.Empty(t, second.Completed)
	assert.Equal(t, first.Package, second.Package)
	assert.Equal(t, mustResolve(t, e, first.Package, now).Statuses(), mustResolve(t, e, second.Package, now).Statuses())
}

func TestReconcile_RecurringMarksElapsedDates(t *testing.T) {
	e := newTestEngine()
	// Wednesday after the 17:00 lesson
	now := at(2026, 10, 21, 18, 0)

	r := recurring("r1", at(2026, 10, 19, 17, 0), 1.5, 2, domain.Monday, domain.Wednesday)
	r.CancelledDates = []string{"2026-10-19"}
	pkg := emptyPackage(10)
	pkg.Bookings = []domain.Booking{r}

	res, err := e.Reconcile(pkg, now)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-10-21"}, res.Package.Bookings[0].ProcessedDates)
	assert.Equal(t, []string{"r1-2026-10-21"}, []string{res.Completed[0].Key})
	assert.Equal(t, StatusCompleted, res.Completed[0].Status)
	assert.Equal(t, 8.5, res.Package.RemainingHours)
}

func TestReconcile_PendingRequestFreezesCompletion(t *testing.T) {
	e := newTestEngine()
	before := at(2026, 10, 10, 12, 0)
	after := at(2026, 10, 21, 12, 0)

	pkg, _, err := e.RequestChange(lessonPackage(), lessonRef, domain.RequestChangeInput{Kind: domain.RequestKindCancellation}, before)
	require.NoError(t, err)

	res, err := e.Reconcile(pkg, after)
	require.NoError(t, err)

	b := res.Package.Bookings[0]
	assert.False(t, b.IsDateProcessed("2026-10-21"))
	assert.True(t, b.IsDateProcessed("2026-10-14"))
	assert.Equal(t, StatusPendingRequest, mustResolve(t, e, res.Package, after).Statuses()["r1-2026-10-21"])

	// once rejected the lesson completes on the next sweep
	resolved, err := e.ResolveRequest(res.Package, lessonRef, domain.Resolution{Outcome: domain.OutcomeRejected}, after)
	require.NoError(t, err)

	res, err = e.Reconcile(resolved.Package, after)
	require.NoError(t, err)

	assert.True(t, res.Package.Bookings[0].IsDateProcessed("2026-10-21"))
	assert.Equal(t, 16.0, res.Package.RemainingHours)
}

func TestReconcile_PendingSingleStaysPending(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	s := single("s1", at(2026, 10, 17, 9, 0), 2)
	s.Requests = map[string]domain.Request{"2026-10-17": {Kind: domain.RequestKindCancellation}}
	pkg := emptyPackage(10)
	pkg.Bookings = []domain.Booking{s}

	res, err := e.Reconcile(pkg, now)
	require.NoError(t, err)

	assert.False(t, res.Package.Bookings[0].IsProcessed)
	assert.Empty(t, res.Completed)
	assert.False(t, res.Changed)
	assert.Equal(t, 10.0, res.Package.RemainingHours)
}

func TestReconcile_FixesStaleCache(t *testing.T) {
	e := newTestEngine()
	pkg := emptyPackage(10)
	pkg.RemainingHours = 3

	res, err := e.Reconcile(pkg, at(2026, 10, 18, 12, 0))
	require.NoError(t, err)

	assert.True(t, res.Changed)
	assert.Empty(t, res.Completed)
	assert.Equal(t, 10.0, res.Package.RemainingHours)
}
