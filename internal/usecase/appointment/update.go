package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/velvetnails/salon-scheduler/internal/audit"
	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/models"
	"github.com/velvetnails/salon-scheduler/internal/timeutil"
)

// ======================================================
// INPUT
// ======================================================

// UpdateAppointmentInput is the allow-listed patch. Nil fields stay
// untouched.
type UpdateAppointmentInput struct {
	Date       *time.Time
	Notes      *string
	Status     *string
	ServiceIDs *[]uint
	Cancelled  *bool
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in UpdateAppointmentInput,
	actor domain.Actor,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	if err != nil {
		return nil, err
	}

	if !actor.MayManage(ap) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if in.Status != nil && !domain.IsValidStatus(*in.Status) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidArgument)
	}

	// Raw status writes skip the lead-time and terminal-state rules of the
	// dedicated cancel/complete operations. That override stays available,
	// to admins only.
	if (in.Status != nil || in.Cancelled != nil) && !actor.IsAdmin() {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	var services []models.Service
	if in.ServiceIDs != nil {
		ids := dedupe(*in.ServiceIDs)
		if len(ids) == 0 {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidArgument)
		}
		services, err = uc.repo.GetServicesByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if len(services) != len(ids) {
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		}
	}

	if in.Date != nil {
		ap.Date = timeutil.Naive(*in.Date)
	}
	if in.Notes != nil {
		ap.Notes = *in.Notes
	}
	if in.Status != nil {
		ap.Status = *in.Status
	}
	if in.Cancelled != nil && *in.Cancelled {
		ap.Status = string(domain.StatusCancelled)
	}

	durationSource := ap.Services
	if services != nil {
		durationSource = services
	}
	ap.EndTime = ap.Date.Add(domain.TotalDuration(durationSource))

	// A moved or re-composed booking competes for its new window like a
	// fresh one; cancelled rows vacate the timeline and need no check.
	recheck := (in.Date != nil || in.ServiceIDs != nil) &&
		domain.Status(ap.Status) != domain.StatusCancelled

	if err := uc.repo.UpdateAppointment(ctx, ap, services, recheck); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
