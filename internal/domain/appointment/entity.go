package appointment

import (
	"time"

	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// CancelLeadTime is the minimum remaining time before the start instant for
// a cancellation to be accepted. Exactly the lead time is already too late.
const CancelLeadTime = 3 * time.Hour

// Cancel flips the appointment to cancelled and returns the ledger row to be
// persisted in the same transaction as the status change.
func Cancel(ap *models.Appointment, reason string, now time.Time) (*models.Cancelation, error) {
	if Status(ap.Status) == StatusCancelled {
		return nil, httperr.ErrBusiness(httperr.CodeAlreadyCancelled)
	}
	if ap.Date.Sub(now) <= CancelLeadTime {
		return nil, httperr.ErrBusiness(httperr.CodeTooLateToCancel)
	}

	ap.Status = string(StatusCancelled)
	return &models.Cancelation{
		AppointmentID: ap.ID,
		Reason:        reason,
	}, nil
}

// Complete marks the appointment done. Terminal states stay terminal.
func Complete(ap *models.Appointment) error {
	switch Status(ap.Status) {
	case StatusCompleted:
		return httperr.ErrBusiness(httperr.CodeAlreadyCompleted)
	case StatusCancelled:
		return httperr.ErrBusiness(httperr.CodeCannotCompleteCancelled)
	}

	ap.Status = string(StatusCompleted)
	return nil
}
