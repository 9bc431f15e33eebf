package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lists every appointment, optionally filtered by client name.
// Admin-only at the route level.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	q domain.ListQuery,
) ([]models.Appointment, int64, error) {
	return uc.repo.ListAppointments(ctx, q)
}

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

// Execute lists the actor's own bookings, optionally filtered by notes.
func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
	q domain.ListQuery,
) ([]models.Appointment, int64, error) {

	client, err := uc.repo.GetClientByUserID(ctx, actor.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, httperr.ErrBusiness(httperr.CodeClientNotFound)
	}
	if err != nil {
		return nil, 0, err
	}

	return uc.repo.ListAppointmentsByClient(ctx, client.ID, q)
}
