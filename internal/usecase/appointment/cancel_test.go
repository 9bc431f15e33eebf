package appointment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/models"
	uc "github.com/velvetnails/salon-scheduler/internal/usecase/appointment"
)

func TestCancelAppointment(t *testing.T) {
	owner := domain.Actor{UserID: 10, Role: models.RoleClient}
	admin := domain.Actor{UserID: 1, Role: models.RoleAdmin}
	stranger := domain.Actor{UserID: 77, Role: models.RoleClient}

	setup := func(startsIn time.Duration, status string) (*fakeRepo, *uc.CancelAppointment, *models.Appointment) {
		repo := newFakeRepo()
		client := repo.addClient(1, 10, "Ana", "ana@example.com")
		svc := repo.addService(1, "Gel Manicure", 45)
		ap := repo.addAppointment(models.Appointment{
			ClientID: client.ID,
			Client:   *client,
			Date:     time.Now().UTC().Add(startsIn),
			Status:   status,
			Services: []models.Service{svc},
		})
		return repo, uc.NewCancelAppointment(repo, nil), ap
	}

	t.Run("owner cancels with enough lead time", func(t *testing.T) {
		repo, cancel, ap := setup(4*time.Hour, string(domain.StatusConfirmed))

		c, err := cancel.Execute(context.Background(), ap.ID, "family emergency", owner)
		require.NoError(t, err)

		assert.Equal(t, ap.ID, c.AppointmentID)
		assert.Equal(t, "family emergency", c.Reason)

		stored, err := repo.GetAppointmentByID(context.Background(), ap.ID)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), stored.Status)
		require.Len(t, repo.cancelations, 1)
	})

	t.Run("inside the lead-time window", func(t *testing.T) {
		repo, cancel, ap := setup(2*time.Hour, string(domain.StatusPending))

		_, err := cancel.Execute(context.Background(), ap.ID, "running late", owner)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeTooLateToCancel, httperr.BusinessCode(err))

		stored, _ := repo.GetAppointmentByID(context.Background(), ap.ID)
		assert.Equal(t, string(domain.StatusPending), stored.Status)
		assert.Empty(t, repo.cancelations)
	})

	t.Run("already cancelled", func(t *testing.T) {
		_, cancel, ap := setup(48*time.Hour, string(domain.StatusCancelled))

		_, err := cancel.Execute(context.Background(), ap.ID, "again", owner)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeAlreadyCancelled, httperr.BusinessCode(err))
	})

	t.Run("reason is required", func(t *testing.T) {
		_, cancel, ap := setup(48*time.Hour, string(domain.StatusPending))

		_, err := cancel.Execute(context.Background(), ap.ID, "   ", owner)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeInvalidArgument, httperr.BusinessCode(err))
	})

	t.Run("stranger may not cancel", func(t *testing.T) {
		_, cancel, ap := setup(48*time.Hour, string(domain.StatusPending))

		_, err := cancel.Execute(context.Background(), ap.ID, "not mine", stranger)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeForbidden, httperr.BusinessCode(err))
	})

	t.Run("admin cancels on behalf of the client", func(t *testing.T) {
		repo, cancel, ap := setup(48*time.Hour, string(domain.StatusConfirmed))

		c, err := cancel.Execute(context.Background(), ap.ID, "salon closed that day", admin)
		require.NoError(t, err)
		assert.Equal(t, ap.ID, c.AppointmentID)
		require.Len(t, repo.cancelations, 1)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, cancel, _ := setup(48*time.Hour, string(domain.StatusPending))

		_, err := cancel.Execute(context.Background(), 999, "whatever", admin)
		require.Error(t, err)
		assert.Equal(t, httperr.CodeAppointmentNotFound, httperr.BusinessCode(err))
	})

	t.Run("lookup failure is not a not-found", func(t *testing.T) {
		repo, cancel, ap := setup(48*time.Hour, string(domain.StatusPending))
		repo.appointmentErr = errors.New("connection refused")

		_, err := cancel.Execute(context.Background(), ap.ID, "sick", owner)
		require.Error(t, err)
		assert.Empty(t, httperr.BusinessCode(err))
		assert.ErrorContains(t, err, "connection refused")
		assert.Empty(t, repo.cancelations)
	})
}
