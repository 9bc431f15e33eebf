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

// Notifier receives the booked appointment for a best-effort confirmation
// email. Delivery failures never reach the caller.
type Notifier interface {
	AppointmentBooked(ap *models.Appointment)
}

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID   uint
	Date       time.Time
	ServiceIDs []uint
	Notes      string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetClientByID(ctx, in.ClientID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness(httperr.CodeClientNotFound)
	}
	if err != nil {
		return nil, err
	}

	serviceIDs := dedupe(in.ServiceIDs)
	if len(serviceIDs) == 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidArgument)
	}

	services, err := uc.repo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	// Any unknown id fails the whole request, no partial booking.
	if len(services) != len(serviceIDs) {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
	}

	start := timeutil.Naive(in.Date)
	end := start.Add(domain.TotalDuration(services))
	window := domain.Window{Start: start, End: end}

	overlapping, err := uc.repo.FindActiveOverlapping(ctx, start, end, 0)
	if err != nil {
		return nil, err
	}
	if domain.ConflictsWith(window, overlapping) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	ap := &models.Appointment{
		ClientID: client.ID,
		Date:     start,
		EndTime:  end,
		Status:   string(domain.InitialStatus()),
		Notes:    in.Notes,
		Services: services,
	}

	// The repository repeats the scan under lock before inserting; the
	// pre-check above only gives a fast, friendly failure.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}
	ap.Client = *client

	uc.audit.Dispatch(audit.Event{
		UserID:   &client.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.notifier.AppointmentBooked(ap)

	return ap, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
