package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/velvetnails/salon-scheduler/internal/audit"
	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actor domain.Actor,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	if err != nil {
		return err
	}

	if !actor.MayManage(ap) {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
