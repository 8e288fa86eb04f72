package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// Series enumerates every occurrence of a weekly series in ascending order:
// the given weekdays of weeks 0..weeks-1, where week 0 is the Sunday-based
// week containing anchor. It is the rule form of OccurrenceDate.
func (c Calendar) Series(anchor time.Time, weeks int, days []time.Weekday) ([]time.Time, error) {
	if weeks < 1 {
		return nil, errors.New("series: weeks must be at least 1")
	}
	if len(days) == 0 {
		return nil, errors.New("series: no weekdays")
	}

	byDay := make([]rrule.Weekday, 0, len(days))
	for _, d := range days {
		wd, ok := rruleWeekdays[d]
		if !ok {
			return nil, fmt.Errorf("series: invalid weekday %d", d)
		}
		byDay = append(byDay, wd)
	}

	weekStart := c.OccurrenceDate(anchor.Truncate(time.Second), 0, time.Sunday)

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   weekStart,
		Wkst:      rrule.SU,
		Byweekday: byDay,
		Until:     weekStart.AddDate(0, 0, weeks*7).Add(-time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("series: build rule: %w", err)
	}

	return r.All(), nil
}
