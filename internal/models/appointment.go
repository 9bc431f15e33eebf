package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	// Date is the start instant, stored as naive UTC. EndTime is derived from
	// the sum of the associated service durations and kept in sync on every
	// write so the overlap query and the exclusion constraint can use it.
	Date    time.Time `gorm:"not null" json:"date"`
	EndTime time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	Services []Service `gorm:"many2many:appointment_services;constraint:OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TotalDurationMin sums the durations of the associated services. An
// appointment without services has zero duration and never conflicts.
func (a *Appointment) TotalDurationMin() int {
	total := 0
	for _, s := range a.Services {
		total += s.DurationMin
	}
	return total
}

// DerivedEnd computes Date + total duration from the loaded services.
func (a *Appointment) DerivedEnd() time.Time {
	return a.Date.Add(time.Duration(a.TotalDurationMin()) * time.Minute)
}
