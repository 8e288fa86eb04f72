package ledger

import (
	"testing"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_RecurringFourWeeks(t *testing.T) {
	e := newTestEngine()
	// Monday
	b := recurring("r1", at(2026, 10, 19, 10, 0), 1, 4, domain.Monday, domain.Wednesday)

	occs, err := e.Expand(b)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"2026-10-19", "2026-10-21",
		"2026-10-26", "2026-10-28",
		"2026-11-02", "2026-11-04",
		"2026-11-09", "2026-11-11",
	}, keysOf(occs))

	seen := make(map[string]bool)
	for _, o := range occs {
		assert.False(t, seen[o.Key], "duplicate key %s", o.Key)
		seen[o.Key] = true
		assert.Equal(t, OccurrenceKey("r1", o.DateKey), o.Key)
		assert.Equal(t, 10, o.Start.Hour())
		assert.Equal(t, o.Start.Add(hoursDuration(1)), o.End)
	}
}

func TestExpand_Ascending(t *testing.T) {
	e := newTestEngine()
	b := recurring("r1", at(2026, 10, 19, 16, 0), 1.5, 2, domain.Friday, domain.Monday)

	occs, err := e.Expand(b)
	require.NoError(t, err)

	require.Len(t, occs, 4)
	assert.Equal(t, []string{"2026-10-19", "2026-10-23", "2026-10-26", "2026-10-30"}, keysOf(occs))
	for i := 1; i < len(occs); i++ {
		assert.True(t, occs[i-1].Start.Before(occs[i].Start))
	}
}

func TestExpand_DaysBeforeAnchorInFirstWeek(t *testing.T) {
	e := newTestEngine()
	// Wednesday anchor; Monday of the same week comes first
	b := recurring("r1", at(2026, 10, 14, 9, 0), 1, 1, domain.Monday, domain.Wednesday)

	occs, err := e.Expand(b)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-10-12", "2026-10-14"}, keysOf(occs))
}

func TestExpand_Single(t *testing.T) {
	e := newTestEngine()
	b := single("s1", at(2026, 10, 20, 15, 0), 2)
	b.Requests = map[string]domain.Request{
		"2026-10-20": {Kind: domain.RequestKindCancellation, Status: "Cancellation requested"},
	}

	occs, err := e.Expand(b)
	require.NoError(t, err)
	require.Len(t, occs, 1)

	o := occs[0]
	assert.Equal(t, "s1", o.Key)
	assert.Equal(t, "2026-10-20", o.DateKey)
	assert.Equal(t, at(2026, 10, 20, 17, 0), o.End)
	require.NotNil(t, o.Request)
	assert.Equal(t, domain.RequestKindCancellation, o.Request.Kind)
}

func TestExpand_FlagsCancelledAndProcessed(t *testing.T) {
	e := newTestEngine()
	b := recurring("r1", at(2026, 10, 19, 10, 0), 1, 1, domain.Monday, domain.Wednesday, domain.Friday)
	b.ProcessedDates = []string{"2026-10-19"}
	b.CancelledDates = []string{"2026-10-21"}

	occs, err := e.Expand(b)
	require.NoError(t, err)
	require.Len(t, occs, 3)

	assert.True(t, occs[0].IsProcessed)
	assert.True(t, occs[1].IsCancelled)
	assert.False(t, occs[2].IsProcessed || occs[2].IsCancelled)
}

func TestExpand_InvalidBookings(t *testing.T) {
	e := newTestEngine()
	start := at(2026, 10, 19, 10, 0)

	tests := []struct {
		name    string
		booking domain.Booking
	}{
		{"zero hours", recurring("r1", start, 0, 2, domain.Monday)},
		{"zero weeks", recurring("r1", start, 1, 0, domain.Monday)},
		{"no days", recurring("r1", start, 1, 2)},
		{"unknown day", recurring("r1", start, 1, 2, domain.Weekday("xyz"))},
		{"missing recurrence", domain.Booking{ID: "r1", Type: domain.BookingTypeRecurring, StartDate: start, HoursBooked: 1}},
		{"single without date", domain.Booking{ID: "s1", Type: domain.BookingTypeSingle, HoursBooked: 1}},
		{"unknown type", domain.Booking{ID: "x", Type: "weekly", HoursBooked: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Expand(tt.booking)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestExpandPackage_MergesAndSorts(t *testing.T) {
	e := newTestEngine()
	pkg := emptyPackage(20)
	pkg.Bookings = []domain.Booking{
		single("s1", at(2026, 10, 22, 9, 0), 1),
		recurring("r1", at(2026, 10, 19, 10, 0), 1, 1, domain.Monday, domain.Friday),
	}

	occs, err := e.ExpandPackage(pkg)
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-10-19", "2026-10-22", "2026-10-23"}, keysOf(occs))
	assert.Equal(t, "s1", occs[1].BookingID)
}

func TestExpandPackage_EqualStartsKeepBookingOrder(t *testing.T) {
	e := newTestEngine()
	start := at(2026, 10, 19, 10, 0)

	tests := []struct {
		name     string
		bookings []domain.Booking
		want     []string
	}{
		{
			name: "single recurring single",
			bookings: []domain.Booking{
				single("z", start, 1),
				recurring("a", start, 1, 1, domain.Monday),
				single("m", start, 1),
			},
			want: []string{"z", "a", "m"},
		},
		{
			name: "recurring first",
			bookings: []domain.Booking{
				recurring("a", start, 1, 1, domain.Monday),
				single("z", start, 1),
				single("m", start, 1),
			},
			want: []string{"a", "z", "m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := emptyPackage(20)
			pkg.Bookings = tt.bookings

			occs, err := e.ExpandPackage(pkg)
			require.NoError(t, err)

			ids := make([]string, 0, len(occs))
			for _, o := range occs {
				ids = append(ids, o.BookingID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
