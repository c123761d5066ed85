package models

import (
	"time"

	"github.com/google/uuid"
)

type Doctor struct {
	ID             uuid.UUID        `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID         uuid.UUID        `json:"user_id" gorm:"type:uuid;uniqueIndex"`
	User           User             `json:"user" gorm:"foreignKey:UserID"`
	Specialisation string           `json:"specialisation"`
	Gender         string           `json:"gender"`
	IsActive       bool             `json:"is_active" gorm:"default:true"`
	WorkingHours   []DoctorSchedule `json:"working_hours,omitempty" gorm:"foreignKey:DoctorID"`
	Visits         []Visit          `json:"visits,omitempty" gorm:"foreignKey:DoctorID"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}
