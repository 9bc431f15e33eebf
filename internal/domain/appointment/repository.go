package appointment

import (
	"context"
	"time"

	"github.com/velvetnails/salon-scheduler/internal/models"
)

// ListQuery carries offset pagination plus an optional search term.
type ListQuery struct {
	Skip   int
	Limit  int
	Search string
}

type Repository interface {
	// -------- Client --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetClientByUserID(
		ctx context.Context,
		userID uint,
	) (*models.Client, error)

	// -------- Service catalog --------
	// GetServicesByIDs returns the resolved services; a shorter result than
	// ids means at least one id is unknown.
	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Appointment (create / conflict) --------
	// CreateAppointment runs the conflict scan and the insert in one
	// transaction, locking the overlapping window. Returns slot_unavailable
	// when the window is taken.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindActiveOverlapping(
		ctx context.Context,
		start time.Time,
		end time.Time,
		excludeID uint,
	) ([]models.Appointment, error)

	// -------- Appointment (read / state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// UpdateAppointment persists field changes; when services is non-nil the
	// association is replaced. recheck re-runs the locked conflict scan for
	// the new window inside the same transaction.
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		services []models.Service,
		recheck bool,
	) error

	DeleteAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CancelAppointment commits the status change and the ledger insert
	// atomically; neither survives without the other.
	CancelAppointment(
		ctx context.Context,
		ap *models.Appointment,
		cancelation *models.Cancelation,
	) error

	// -------- Listing --------
	ListAppointments(
		ctx context.Context,
		q ListQuery,
	) ([]models.Appointment, int64, error)

	ListAppointmentsByClient(
		ctx context.Context,
		clientID uint,
		q ListQuery,
	) ([]models.Appointment, int64, error)

	// ListActiveExcludingClient feeds the blocked-slot projection: pending
	// and confirmed appointments of every other client, services preloaded.
	ListActiveExcludingClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
