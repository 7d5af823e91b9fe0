package scheduling

import (
	"time"

	"medicare-portal/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// SlotLabel is the 12-hour slot time format, e.g. "09:00 AM".
const SlotLabel = "03:04 PM"

// istOffset is the fixed UTC+5:30 offset the platform uses as "current time"
// for status reconciliation. It deliberately ignores the real device or server
// timezone; the deployment is single-region.
const istOffset = 5*time.Hour + 30*time.Minute

// NowIST returns the current instant shifted by the fixed IST offset.
func NowIST() time.Time {
	return time.Now().UTC().Add(istOffset)
}

// SlotTime parses an appointment's date and slot label into a single instant.
func SlotTime(date, slot string) (time.Time, error) {
	return time.Parse(DateOnly+" "+SlotLabel, NormalizeDate(date)+" "+slot)
}

// Reconcile derives the displayed status of an appointment: once its slot is
// strictly before now, the effective status becomes completed regardless of
// the stored status. Cancelled appointments are left alone (a cancelled visit
// did not happen), and unparseable date/time pairs pass through unchanged.
// The stored record is never written back.
func Reconcile(appt entity.Appointment, now time.Time) entity.Appointment {
	if appt.Status == entity.AppointmentStatusCancelled {
		return appt
	}

	slot, err := SlotTime(appt.Date, appt.Time)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"appointment_id": appt.ID,
			"date":           appt.Date,
			"time":           appt.Time,
		}).Warn("Unparseable appointment slot, keeping stored status")
		return appt
	}

	if slot.Before(now) {
		appt.Status = entity.AppointmentStatusCompleted
	}
	return appt
}

// ReconcileAll applies Reconcile to every appointment in the list.
func ReconcileAll(appts []entity.Appointment, now time.Time) []entity.Appointment {
	out := make([]entity.Appointment, len(appts))
	for i, appt := range appts {
		out[i] = Reconcile(appt, now)
	}
	return out
}
