// Package calendar holds the date arithmetic behind lesson occurrences.
// All date-keys are computed in a single location so that cancellation,
// processed and request lookups agree regardless of where a time came from.
package calendar

import (
	"fmt"
	"time"
)

const DateKeyLayout = "2006-01-02"

type Calendar struct {
	loc *time.Location
}

func New(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// Load builds a Calendar from an IANA zone name.
func Load(name string) (Calendar, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Calendar{}, fmt.Errorf("load location %q: %w", name, err)
	}
	return New(loc), nil
}

func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c Calendar) In(t time.Time) time.Time {
	return t.In(c.Location())
}

func (c Calendar) DateKey(t time.Time) string {
	return t.In(c.Location()).Format(DateKeyLayout)
}

// ParseDateKey returns midnight of the keyed day in the calendar location.
func (c Calendar) ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, c.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

func (c Calendar) StartOfDay(t time.Time) time.Time {
	t = t.In(c.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Location())
}

// OccurrenceDate returns the given weekday of the week that contains
// anchor+weekIndex*7 days, keeping the anchor's wall-clock time. Weeks run
// Sunday to Saturday, so the result can precede the anchor inside week 0.
func (c Calendar) OccurrenceDate(anchor time.Time, weekIndex int, weekday time.Weekday) time.Time {
	return OccurrenceDate(anchor.In(c.Location()), weekIndex, weekday)
}

func OccurrenceDate(anchor time.Time, weekIndex int, weekday time.Weekday) time.Time {
	week := anchor.AddDate(0, 0, weekIndex*7)
	return week.AddDate(0, 0, int(weekday)-int(week.Weekday()))
}

// Workdays lists the Monday–Friday date-keys from the day after now up to,
// but not including, the day of before.
func (c Calendar) Workdays(now, before time.Time) []string {
	day := c.StartOfDay(now).AddDate(0, 0, 1)
	limit := c.StartOfDay(before)

	var out []string
	for day.Before(limit) {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, day.Format(DateKeyLayout))
		}
		day = day.AddDate(0, 0, 1)
	}
	return out
}
