package models

import "time"

// Cancelation records why a booking was cancelled. One row per cancelled
// appointment, written by the cancel operation only.
type Cancelation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"uniqueIndex;not null" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Reason string `gorm:"type:text;not null" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
