package models

import "time"

const (
	RoleClient = "client"
	RoleStaff  = "staff"
	RoleAdmin  = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:100" json:"full_name"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	Role         string `gorm:"size:20;default:'client'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case RoleClient, RoleStaff, RoleAdmin:
		return true
	}
	return false
}
