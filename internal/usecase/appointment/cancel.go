package appointment

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/velvetnails/salon-scheduler/internal/audit"
	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/models"
	"github.com/velvetnails/salon-scheduler/internal/timeutil"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	reason string,
	actor domain.Actor,
) (*models.Cancelation, error) {

	if strings.TrimSpace(reason) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidArgument)
	}

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

	cancelation, err := domain.Cancel(ap, reason, timeutil.Now())
	if err != nil {
		return nil, err
	}

	// Status flip and ledger insert commit together or not at all.
	if err := uc.repo.CancelAppointment(ctx, ap, cancelation); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return cancelation, nil
}
