package models

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

type Patient struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone" gorm:"uniqueIndex"`
	Email     string     `json:"email,omitempty"`
	Gender    Gender     `json:"gender" gorm:"type:varchar(10)"`
	DOB       *time.Time `json:"dob,omitempty"`
	Address   string     `json:"address,omitempty"`
	Visits    []Visit    `json:"visits,omitempty" gorm:"foreignKey:PatientID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
