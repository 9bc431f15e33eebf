package appointment

import "github.com/velvetnails/salon-scheduler/internal/models"

// Actor is the authenticated principal acting on an appointment, as resolved
// by the request boundary.
type Actor struct {
	UserID uint
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// MayManage reports whether the actor can update, delete or cancel the given
// appointment: admins always, clients only on their own bookings.
func (a Actor) MayManage(ap *models.Appointment) bool {
	if a.IsAdmin() {
		return true
	}
	return ap.Client.UserID == a.UserID
}
