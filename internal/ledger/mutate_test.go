package ledger

import (
	"testing"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking_Recurring(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	pkg, b, err := e.CreateBooking(emptyPackage(20), domain.CreateBookingInput{
		Type:        domain.BookingTypeRecurring,
		Start:       at(2026, 10, 19, 10, 0),
		HoursBooked: 1,
		Weeks:       4,
		Days:        []domain.Weekday{domain.Monday, domain.Wednesday},
	}, now)

	require.NoError(t, err)
	assert.Equal(t, "b1", b.ID)
	require.Len(t, pkg.Bookings, 1)
	assert.Equal(t, b, pkg.Bookings[0])
	assert.Equal(t, 20.0, pkg.RemainingHours)

	view := mustResolve(t, e, pkg, now)
	assert.Len(t, view.Occurrences, 8)
	assert.Equal(t, 12.0, view.Balance.BookableHours)
}

func TestCreateBooking_Single(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	pkg, b, err := e.CreateBooking(emptyPackage(10), domain.CreateBookingInput{
		Type:        domain.BookingTypeSingle,
		Start:       at(2026, 10, 17, 10, 0),
		HoursBooked: 2,
	}, now)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingTypeSingle, b.Type)
	// already in the past, so it counts as completed straight away
	assert.Equal(t, 8.0, pkg.RemainingHours)
}

func TestCreateBooking_InsufficientHours(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	pkg := emptyPackage(20)
	pkg.Bookings = []domain.Booking{single("s1", at(2026, 11, 2, 9, 0), 10)}
	before := pkg.Clone()

	out, _, err := e.CreateBooking(pkg, domain.CreateBookingInput{
		Type:        domain.BookingTypeRecurring,
		Start:       at(2026, 10, 19, 10, 0),
		HoursBooked: 2,
		Weeks:       5,
		Days:        []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday},
	}, now)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientHours)
	assert.Equal(t, before, out)
	assert.Equal(t, before, pkg)
}

func TestCreateBooking_ExactFit(t *testing.T) {
	e := newTestEngine()

	_, _, err := e.CreateBooking(emptyPackage(6), domain.CreateBookingInput{
		Type:        domain.BookingTypeRecurring,
		Start:       at(2026, 10, 19, 10, 0),
		HoursBooked: 1.5,
		Weeks:       2,
		Days:        []domain.Weekday{domain.Tuesday, domain.Thursday},
	}, at(2026, 10, 18, 12, 0))

	assert.NoError(t, err)
}

func TestCreateBooking_Validation(t *testing.T) {
	e := newTestEngine()
	start := at(2026, 10, 19, 10, 0)

	tests := []struct {
		name string
		in   domain.CreateBookingInput
	}{
		{"zero hours", domain.CreateBookingInput{Type: domain.BookingTypeSingle, Start: start}},
		{"negative hours", domain.CreateBookingInput{Type: domain.BookingTypeSingle, Start: start, HoursBooked: -1}},
		{"missing start", domain.CreateBookingInput{Type: domain.BookingTypeSingle, HoursBooked: 1}},
		{"unknown type", domain.CreateBookingInput{Type: "weekly", Start: start, HoursBooked: 1}},
		{"no weeks", domain.CreateBookingInput{Type: domain.BookingTypeRecurring, Start: start, HoursBooked: 1, Days: []domain.Weekday{domain.Monday}}},
		{"too many weeks", domain.CreateBookingInput{Type: domain.BookingTypeRecurring, Start: start, HoursBooked: 0.1, Weeks: 105, Days: []domain.Weekday{domain.Monday}}},
		{"no days", domain.CreateBookingInput{Type: domain.BookingTypeRecurring, Start: start, HoursBooked: 1, Weeks: 2}},
		{"bad day", domain.CreateBookingInput{Type: domain.BookingTypeRecurring, Start: start, HoursBooked: 1, Weeks: 2, Days: []domain.Weekday{"monday"}}},
		{"duplicate day", domain.CreateBookingInput{Type: domain.BookingTypeRecurring, Start: start, HoursBooked: 1, Weeks: 2, Days: []domain.Weekday{domain.Monday, domain.Monday}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := emptyPackage(1000)
			out, _, err := e.CreateBooking(pkg, tt.in, start)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Empty(t, out.Bookings)
		})
	}
}

func TestDeleteOccurrence_RecurringKeepsSeries(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	pkg := emptyPackage(20)
	pkg.Bookings = []domain.Booking{
		recurring("r1", at(2026, 10, 19, 10, 0), 1, 2, domain.Monday, domain.Friday),
	}
	second := mustResolve(t, e, pkg, now).Visible()[1]

	out, err := e.DeleteOccurrence(pkg, OccurrenceRef{BookingID: "r1", DateKey: second.DateKey}, now)
	require.NoError(t, err)

	require.Len(t, out.Bookings, 1)
	assert.Equal(t, []string{"2026-10-23"}, out.Bookings[0].CancelledDates)

	view := mustResolve(t, e, out, now)
	assert.Len(t, view.Visible(), 3)
	assert.Equal(t, 3.0, view.Balance.BookedHours)
	assert.Empty(t, pkg.Bookings[0].CancelledDates)

	_, err = e.DeleteOccurrence(out, OccurrenceRef{BookingID: "r1", DateKey: second.DateKey}, now)
	assert.ErrorIs(t, err, domain.ErrOccurrenceNotFound)
}

func TestDeleteOccurrence_ProcessedDateRestoresHours(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 20, 12, 0)

	r := recurring("r1", at(2026, 10, 19, 10, 0), 2, 1, domain.Monday, domain.Friday)
	r.ProcessedDates = []string{"2026-10-19"}
	pkg := emptyPackage(10)
	pkg.Bookings = []domain.Booking{r}
	pkg.RemainingHours = 8

	out, err := e.DeleteOccurrence(pkg, OccurrenceRef{BookingID: "r1", DateKey: "2026-10-19"}, now)
	require.NoError(t, err)

	assert.Empty(t, out.Bookings[0].ProcessedDates)
	assert.Equal(t, 10.0, out.RemainingHours)
}

func TestDeleteOccurrence_DropsPendingRequest(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	r := recurring("r1", at(2026, 10, 19, 10, 0), 1, 1, domain.Monday)
	r.Requests = map[string]domain.Request{"2026-10-19": {Kind: domain.RequestKindCancellation}}
	pkg := emptyPackage(10)
	pkg.Bookings = []domain.Booking{r}

	out, err := e.DeleteOccurrence(pkg, OccurrenceRef{BookingID: "r1", DateKey: "2026-10-19"}, now)
	require.NoError(t, err)

	assert.NotContains(t, out.Bookings[0].Requests, "2026-10-19")
	assert.Contains(t, pkg.Bookings[0].Requests, "2026-10-19")
}

func TestDeleteOccurrence_Single(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	pkg := emptyPackage(10)
	pkg.Bookings = []domain.Booking{
		single("s1", at(2026, 10, 10, 9, 0), 2),
		single("s2", at(2026, 10, 25, 9, 0), 1),
	}

	out, err := e.DeleteOccurrence(pkg, OccurrenceRef{BookingID: "s1"}, now)
	require.NoError(t, err)

	require.Len(t, out.Bookings, 1)
	assert.Equal(t, "s2", out.Bookings[0].ID)
	assert.Equal(t, 10.0, out.RemainingHours)
}

func TestDeleteOccurrence_NotFound(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)
	pkg := emptyPackage(10)
	pkg.Bookings = []domain.Booking{recurring("r1", at(2026, 10, 19, 10, 0), 1, 1, domain.Monday)}

	_, err := e.DeleteOccurrence(pkg, OccurrenceRef{BookingID: "missing", DateKey: "2026-10-19"}, now)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	_, err = e.DeleteOccurrence(pkg, OccurrenceRef{BookingID: "r1", DateKey: "2026-10-20"}, now)
	assert.ErrorIs(t, err, domain.ErrOccurrenceNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEditPackageHours(t *testing.T) {
	e := newTestEngine()
	now := at(2026, 10, 18, 12, 0)

	pkg := emptyPackage(10)
	pkg.Bookings = []domain.Booking{single("s1", at(2026, 10, 10, 9, 0), 3)}

	out, err := e.EditPackageHours(pkg, 25, now)
	require.NoError(t, err)
	assert.Equal(t, 25.0, out.TotalHours)
	assert.Equal(t, 22.0, out.RemainingHours)

	_, err = e.EditPackageHours(pkg, 0, now)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
