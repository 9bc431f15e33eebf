package appointment_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "github.com/velvetnails/salon-scheduler/internal/domain/appointment"
	"github.com/velvetnails/salon-scheduler/internal/httperr"
	"github.com/velvetnails/salon-scheduler/internal/models"
)

// fakeRepo is an in-memory stand-in for the GORM repository, mirroring its
// conflict semantics: the scan-and-insert is atomic from the caller's view.
type fakeRepo struct {
	clients      map[uint]*models.Client
	services     map[uint]models.Service
	appointments map[uint]*models.Appointment
	cancelations []*models.Cancelation
	nextID       uint

	// Injectable lookup failures, standing in for a broken connection.
	clientErr      error
	appointmentErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      make(map[uint]*models.Client),
		services:     make(map[uint]models.Service),
		appointments: make(map[uint]*models.Appointment),
	}
}

func (r *fakeRepo) addClient(id, userID uint, name, email string) *models.Client {
	c := &models.Client{ID: id, UserID: userID, Name: name, Email: email}
	r.clients[id] = c
	return c
}

func (r *fakeRepo) addService(id uint, name string, durationMin int) models.Service {
	s := models.Service{ID: id, Name: name, DurationMin: durationMin}
	r.services[id] = s
	return s
}

func (r *fakeRepo) addAppointment(ap models.Appointment) *models.Appointment {
	if ap.ID == 0 {
		r.nextID++
		ap.ID = r.nextID
	} else if ap.ID > r.nextID {
		r.nextID = ap.ID
	}
	if ap.EndTime.IsZero() {
		ap.EndTime = ap.DerivedEnd()
	}
	stored := ap
	r.appointments[stored.ID] = &stored
	return &stored
}

// --------------------------------------------------
// domain.Repository
// --------------------------------------------------

func (r *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	if r.clientErr != nil {
		return nil, r.clientErr
	}
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeRepo) GetClientByUserID(_ context.Context, userID uint) (*models.Client, error) {
	if r.clientErr != nil {
		return nil, r.clientErr
	}
	for _, c := range r.clients {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetServicesByIDs(_ context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeRepo) overlapping(start, end time.Time, excludeID uint) []models.Appointment {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ID == excludeID {
			continue
		}
		if ap.Status == string(domain.StatusCancelled) {
			continue
		}
		if !ap.EndTime.After(ap.Date) {
			continue
		}
		if ap.Date.Before(end) && ap.EndTime.After(start) {
			out = append(out, *ap)
		}
	}
	return out
}

func (r *fakeRepo) FindActiveOverlapping(_ context.Context, start, end time.Time, excludeID uint) ([]models.Appointment, error) {
	return r.overlapping(start, end, excludeID), nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if len(r.overlapping(ap.Date, ap.EndTime, 0)) > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	r.nextID++
	ap.ID = r.nextID
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if r.appointmentErr != nil {
		return nil, r.appointmentErr
	}
	ap, ok := r.appointments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment, services []models.Service, recheck bool) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if recheck && len(r.overlapping(ap.Date, ap.EndTime, ap.ID)) > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	if services != nil {
		ap.Services = services
	}
	stored := *ap
	r.appointments[ap.ID] = &stored
	return nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, ap *models.Appointment) error {
	delete(r.appointments, ap.ID)

	kept := r.cancelations[:0]
	for _, c := range r.cancelations {
		if c.AppointmentID != ap.ID {
			kept = append(kept, c)
		}
	}
	r.cancelations = kept
	return nil
}

func (r *fakeRepo) CancelAppointment(_ context.Context, ap *models.Appointment, cancelation *models.Cancelation) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *ap
	r.appointments[ap.ID] = &stored

	cancelation.ID = uint(len(r.cancelations) + 1)
	r.cancelations = append(r.cancelations, cancelation)
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, q domain.ListQuery) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if q.Search != "" && !strings.Contains(strings.ToLower(ap.Client.Name), strings.ToLower(q.Search)) {
			continue
		}
		out = append(out, *ap)
	}
	sortByDate(out)
	return paginate(out, q), int64(len(out)), nil
}

func (r *fakeRepo) ListAppointmentsByClient(_ context.Context, clientID uint, q domain.ListQuery) ([]models.Appointment, int64, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID != clientID {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(ap.Notes), strings.ToLower(q.Search)) {
			continue
		}
		out = append(out, *ap)
	}
	sortByDate(out)
	return paginate(out, q), int64(len(out)), nil
}

func (r *fakeRepo) ListActiveExcludingClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			continue
		}
		if !domain.IsActive(domain.Status(ap.Status)) {
			continue
		}
		out = append(out, *ap)
	}
	sortByDate(out)
	return out, nil
}

func sortByDate(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool { return aps[i].Date.Before(aps[j].Date) })
}

func paginate(aps []models.Appointment, q domain.ListQuery) []models.Appointment {
	if q.Skip >= len(aps) {
		return nil
	}
	aps = aps[q.Skip:]
	if q.Limit > 0 && q.Limit < len(aps) {
		aps = aps[:q.Limit]
	}
	return aps
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeNotifier records the bookings it was asked to confirm.
type fakeNotifier struct {
	booked []*models.Appointment
}

func (n *fakeNotifier) AppointmentBooked(ap *models.Appointment) {
	n.booked = append(n.booked, ap)
}
