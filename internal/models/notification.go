package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	To      string `gorm:"size:100;not null" json:"to"`
	Subject string `gorm:"size:255;not null" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`

	ProviderID string `gorm:"size:100" json:"provider_id"`
	Status     string `gorm:"size:20;default:'sent'" json:"status"`

	SentAt time.Time `gorm:"autoCreateTime" json:"sent_at"`
}
