// Package export renders client lessons for external calendar apps.
package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/stpnv0/HoursLedger/internal/ledger"
)

const productID = "-//HoursLedger//Lessons//EN"

// ClientCalendar builds an iCalendar document with one VEVENT per visible
// occurrence. Cancelled lessons are left out; lessons with an open
// request are marked tentative.
func ClientCalendar(client *domain.Client, views []ledger.PackageView, now time.Time) []byte {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(fmt.Sprintf("Lessons: %s", client.Name))

	for _, view := range views {
		for _, o := range view.Visible() {
			ev := cal.AddEvent(eventUID(client.ID, view.Package.ID, o))
			ev.SetDtStampTime(now)
			ev.SetStartAt(o.Start)
			ev.SetEndAt(o.End)
			ev.SetSummary(fmt.Sprintf("%s (%gh)", view.Package.Name, o.Hours))
			ev.SetDescription(o.Label)

			status := ical.ObjectStatusConfirmed
			if o.Status == ledger.StatusPendingRequest {
				status = ical.ObjectStatusTentative
			}
			ev.SetStatus(status)
		}
	}

	return []byte(cal.Serialize())
}

func eventUID(clientID, packageID string, o ledger.Occurrence) string {
	return fmt.Sprintf("%s@%s.%s.hoursledger", o.Key, packageID, clientID)
}
