package dto

import (
	"time"

	"github.com/velvetnails/salon-scheduler/internal/models"
)

type AppointmentDTO struct {
	ID         uint             `json:"id"`
	ClientID   uint             `json:"client_id"`
	Client     models.Client    `json:"client"`
	ServiceIDs []uint           `json:"service_ids"`
	Services   []models.Service `json:"services"`
	Date       time.Time        `json:"date"`
	EndTime    time.Time        `json:"end_time"`
	Status     string           `json:"status"`
	Notes      string           `json:"notes,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	ids := make([]uint, 0, len(ap.Services))
	for _, s := range ap.Services {
		ids = append(ids, s.ID)
	}

	return AppointmentDTO{
		ID:         ap.ID,
		ClientID:   ap.ClientID,
		Client:     ap.Client,
		ServiceIDs: ids,
		Services:   ap.Services,
		Date:       ap.Date,
		EndTime:    ap.EndTime,
		Status:     ap.Status,
		Notes:      ap.Notes,
		CreatedAt:  ap.CreatedAt,
	}
}

func NewAppointmentDTOs(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentDTO(&aps[i]))
	}
	return out
}
