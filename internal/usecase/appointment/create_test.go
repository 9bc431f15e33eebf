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
	uc "github.com/velvetnails/salon-scheduler/internal/usecase/appointment"
)

func TestCreateAppointment(t *testing.T) {
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	setup := func() (*fakeRepo, *fakeNotifier, *uc.CreateAppointment) {
		repo := newFakeRepo()
		repo.addClient(1, 10, "Ana", "ana@example.com")
		repo.addService(1, "Gel Manicure", 45)
		repo.addService(2, "Pedicure", 30)
		notifier := &fakeNotifier{}
		return repo, notifier, uc.NewCreateAppointment(repo, nil, notifier)
	}

	t.Run("books a free slot and notifies", func(t *testing.T) {
		repo, notifier, create := setup()

		ap, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: []uint{1},
			Notes:      "first visit",
		})
		require.NoError(t, err)

		assert.NotZero(t, ap.ID)
		assert.Equal(t, string(domain.StatusPending), ap.Status)
		assert.Equal(t, day.Add(10*time.Hour), ap.Date)
		assert.Equal(t, day.Add(10*time.Hour+45*time.Minute), ap.EndTime)
		assert.Equal(t, "Ana", ap.Client.Name)

		require.Len(t, notifier.booked, 1)
		assert.Equal(t, ap.ID, notifier.booked[0].ID)
		assert.Len(t, repo.appointments, 1)
	})

	t.Run("rejects an overlapping slot, accepts the next free one", func(t *testing.T) {
		repo, notifier, create := setup()

		// 10:00-10:45 taken.
		_, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: []uint{1},
		})
		require.NoError(t, err)

		// 10:30-11:00 collides with the tail of the first booking.
		_, err = create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10*time.Hour + 30*time.Minute),
			ServiceIDs: []uint{2},
		})
		require.Error(t, err)
		assert.Equal(t, httperr.CodeSlotUnavailable, httperr.BusinessCode(err))

		// 10:45-11:15 starts exactly where the first ends.
		ap, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10*time.Hour + 45*time.Minute),
			ServiceIDs: []uint{2},
		})
		require.NoError(t, err)
		assert.Equal(t, day.Add(11*time.Hour+15*time.Minute), ap.EndTime)

		assert.Len(t, repo.appointments, 2)
		assert.Len(t, notifier.booked, 2)
	})

	t.Run("sums durations across services", func(t *testing.T) {
		_, _, create := setup()

		ap, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(9 * time.Hour),
			ServiceIDs: []uint{1, 2},
		})
		require.NoError(t, err)
		assert.Equal(t, day.Add(9*time.Hour+75*time.Minute), ap.EndTime)
	})

	t.Run("duplicate service ids count once", func(t *testing.T) {
		_, _, create := setup()

		ap, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(9 * time.Hour),
			ServiceIDs: []uint{1, 1, 1},
		})
		require.NoError(t, err)
		assert.Equal(t, day.Add(9*time.Hour+45*time.Minute), ap.EndTime)
		assert.Len(t, ap.Services, 1)
	})

	t.Run("normalizes offset datetimes before comparing", func(t *testing.T) {
		_, _, create := setup()

		// 10:00 UTC expressed as 07:00-03:00.
		offset := time.FixedZone("BRT", -3*60*60)
		inOffset := time.Date(2026, 9, 14, 7, 0, 0, 0, offset)

		_, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       inOffset,
			ServiceIDs: []uint{1},
		})
		require.NoError(t, err)

		// The same instant in UTC must now collide.
		_, err = create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: []uint{2},
		})
		require.Error(t, err)
		assert.Equal(t, httperr.CodeSlotUnavailable, httperr.BusinessCode(err))
	})

	t.Run("unknown client", func(t *testing.T) {
		_, notifier, create := setup()

		_, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   99,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: []uint{1},
		})
		require.Error(t, err)
		assert.Equal(t, httperr.CodeClientNotFound, httperr.BusinessCode(err))
		assert.Empty(t, notifier.booked)
	})

	t.Run("unknown service fails the whole request", func(t *testing.T) {
		repo, _, create := setup()

		_, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: []uint{1, 99},
		})
		require.Error(t, err)
		assert.Equal(t, httperr.CodeServiceNotFound, httperr.BusinessCode(err))
		assert.Empty(t, repo.appointments)
	})

	t.Run("empty service list", func(t *testing.T) {
		_, _, create := setup()

		_, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: nil,
		})
		require.Error(t, err)
		assert.Equal(t, httperr.CodeInvalidArgument, httperr.BusinessCode(err))
	})

	t.Run("lookup failure is not a not-found", func(t *testing.T) {
		repo, notifier, create := setup()
		repo.clientErr = errors.New("connection refused")

		_, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: []uint{1},
		})
		require.Error(t, err)
		assert.Empty(t, httperr.BusinessCode(err))
		assert.ErrorContains(t, err, "connection refused")
		assert.Empty(t, notifier.booked)
	})

	t.Run("no notification on conflict", func(t *testing.T) {
		_, notifier, create := setup()

		_, err := create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: []uint{1},
		})
		require.NoError(t, err)

		_, err = create.Execute(context.Background(), uc.CreateAppointmentInput{
			ClientID:   1,
			Date:       day.Add(10 * time.Hour),
			ServiceIDs: []uint{2},
		})
		require.Error(t, err)
		assert.Len(t, notifier.booked, 1)
	})
}
