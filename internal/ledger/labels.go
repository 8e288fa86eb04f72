package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/stpnv0/HoursLedger/internal/domain"
)

const displayDate = "02/01/2006"

func occurrenceLabel(o Occurrence) string {
	switch o.Status {
	case StatusPendingRequest:
		return o.Request.Status
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Scheduled"
	}
}

func (e *Engine) requestLabel(r domain.Request) string {
	switch {
	case r.Urgency == domain.UrgencyUrgentNoAlternatives:
		return fmt.Sprintf("Urgent request (less than %d days notice)", days(e.policy.ShortNotice))
	case r.Kind == domain.RequestKindCancellation:
		return "Cancellation requested"
	case r.Urgency == domain.UrgencyUrgent:
		windows := make([]string, 0, len(r.Details.Availability))
		for _, w := range r.Details.Availability {
			windows = append(windows, fmt.Sprintf("%s (%s-%s)", e.displayKey(w.Date), w.From, w.To))
		}
		return fmt.Sprintf("Urgent reschedule requested (available: %s)", strings.Join(windows, "; "))
	default:
		return fmt.Sprintf("Reschedule requested to %s (%s-%s)",
			e.displayKey(r.Details.ProposedDate), r.Details.From, r.Details.To)
	}
}

func resolvedLabel(r domain.Request) string {
	kind := "Reschedule"
	if r.Kind == domain.RequestKindCancellation {
		kind = "Cancellation"
	}
	if r.Outcome == domain.OutcomeApproved {
		return kind + " approved"
	}
	return kind + " rejected"
}

func (e *Engine) displayKey(key string) string {
	t, err := e.cal.ParseDateKey(key)
	if err != nil {
		return key
	}
	return t.Format(displayDate)
}

func (e *Engine) displayTime(t time.Time) string {
	return e.cal.In(t).Format(displayDate + " 15:04")
}

func days(d time.Duration) int {
	return int(d / (24 * time.Hour))
}
