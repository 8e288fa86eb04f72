package repository

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f.values[i].(string)
		case *sql.NullString:
			*p = f.values[i].(sql.NullString)
		case **int64:
			*p = f.values[i].(*int64)
		case *[]byte:
			*p = f.values[i].([]byte)
		case *time.Time:
			*p = f.values[i].(time.Time)
		}
	}
	return nil
}

func TestEncodePackages_DocumentShape(t *testing.T) {
	data, err := encodePackages([]domain.Package{{
		ID:         "p1",
		Name:       "Maths",
		TotalHours: 10,
		Bookings: []domain.Booking{{
			ID:             "r1",
			Type:           domain.BookingTypeRecurring,
			StartDate:      time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
			HoursBooked:    1.5,
			Recurrence:     &domain.Recurrence{Weeks: 4, Days: []domain.Weekday{domain.Monday}},
			CancelledDates: []string{"2026-10-26"},
		}},
	}})
	require.NoError(t, err)

	var doc []map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	booking := doc[0]["bookings"].([]any)[0].(map[string]any)
	assert.Equal(t, "recurring", booking["type"])
	assert.Equal(t, "2026-10-19T10:00:00Z", booking["startDate"])
	assert.NotContains(t, booking, "dateTime")
	assert.Equal(t, map[string]any{"weeks": 4.0, "days": []any{"mon"}}, booking["recurrence"])
	assert.Equal(t, []any{"2026-10-26"}, booking["cancelledDates"])
}

func TestEncodePackages_NilIsEmptyArray(t *testing.T) {
	data, err := encodePackages(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestScanClient(t *testing.T) {
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	chatID := int64(77)
	row := fakeRow{values: []any{
		"c1", "Anna",
		sql.NullString{String: "anna@example.com", Valid: true},
		&chatID,
		[]byte(`[{"id":"p1","name":"Maths","totalHours":10,"remainingHours":8,"bookings":[{"id":"s1","type":"single","dateTime":"2026-10-02T09:00:00Z","hoursBooked":2,"isProcessed":true}]}]`),
		created, created,
	}}

	c, err := scanClient(row)
	require.NoError(t, err)

	assert.Equal(t, "anna@example.com", c.Email)
	assert.Equal(t, int64(77), *c.TelegramChatID)
	require.Len(t, c.Packages, 1)
	require.Len(t, c.Packages[0].Bookings, 1)
	assert.True(t, c.Packages[0].Bookings[0].IsProcessed)
	assert.Equal(t, domain.BookingTypeSingle, c.Packages[0].Bookings[0].Type)
}

func TestScanClient_NotFound(t *testing.T) {
	_, err := scanClient(fakeRow{err: sql.ErrNoRows})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestScanClient_EmptyPackages(t *testing.T) {
	row := fakeRow{values: []any{
		"c1", "Anna", sql.NullString{}, (*int64)(nil), []byte(nil), time.Time{}, time.Time{},
	}}

	c, err := scanClient(row)
	require.NoError(t, err)
	assert.Empty(t, c.Email)
	assert.NotNil(t, c.Packages)
	assert.Empty(t, c.Packages)
}
