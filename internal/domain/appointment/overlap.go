package appointment

import (
	"time"

	"github.com/velvetnails/salon-scheduler/internal/models"
)

// ===============================
// Overlap detection
// ===============================

// Window is a half-open [Start, End) time interval on the shared timeline.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps implements the half-open interval test: S < end && E > start.
// Touching boundaries (E == start or S == end) do not overlap, so
// back-to-back bookings are allowed.
func (w Window) Overlaps(other Window) bool {
	return other.Start.Before(w.End) && other.End.After(w.Start)
}

func (w Window) DurationMin() int {
	return int(w.End.Sub(w.Start) / time.Minute)
}

// TotalDuration sums the durations of a resolved service set.
func TotalDuration(services []models.Service) time.Duration {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}
	return time.Duration(total) * time.Minute
}

// WindowOf derives the occupied window of a stored appointment from its
// loaded services. An appointment with no services spans zero minutes and
// cannot conflict with anything.
func WindowOf(ap *models.Appointment) Window {
	return Window{
		Start: ap.Date,
		End:   ap.Date.Add(TotalDuration(ap.Services)),
	}
}

// ConflictsWith reports whether the candidate window collides with any of
// the given appointments. Cancelled rows and rows without services are
// skipped; everything else occupies its derived window.
func ConflictsWith(candidate Window, existing []models.Appointment) bool {
	for i := range existing {
		ap := &existing[i]
		if Status(ap.Status) == StatusCancelled {
			continue
		}
		if len(ap.Services) == 0 {
			continue
		}
		if candidate.Overlaps(WindowOf(ap)) {
			return true
		}
	}
	return false
}
