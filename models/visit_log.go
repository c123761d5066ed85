package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitLog is the append-only trail of a visit. One row is written on visit
// creation and on every status transition; rows are never updated and are
// removed only when their visit is deleted.
type VisitLog struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	VisitID   uuid.UUID   `json:"visit_id" gorm:"type:uuid;index"`
	Status    VisitStatus `json:"status" gorm:"type:varchar(15)"`
	Timestamp time.Time   `json:"timestamp"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// AppendVisitLog writes one log row on the caller's transaction so the entry
// is atomic with the visit update it records. The caller supplies the clock.
func AppendVisitLog(tx *gorm.DB, visitID uuid.UUID, status VisitStatus, note string, at time.Time) error {
	entry := VisitLog{
		VisitID:   visitID,
		Status:    status,
		Timestamp: at.UTC(),
		Notes:     note,
	}
	return tx.Create(&entry).Error
}
