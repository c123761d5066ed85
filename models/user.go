package models

import (
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	RoleAdmin        StaffRole = "ADMIN"
	RoleReceptionist StaffRole = "RECEPTIONIST"
	RoleDoctor       StaffRole = "DOCTOR"
)

// User is a staff account. Patients are not users; they are managed by the
// front desk and never log in.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Phone     string    `json:"phone" gorm:"uniqueIndex"`
	Password  string    `json:"password,omitempty"`
	Role      StaffRole `json:"role" gorm:"type:varchar(20);default:'RECEPTIONIST'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
