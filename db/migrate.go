package db

import (
	"fmt"
	"log"

	"github.com/Rohitsah12/healthFirst/models"
)

// Migrate runs schema migrations. Call after Init.
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Doctor{},
		&models.DoctorSchedule{},
		&models.Patient{},
		&models.Visit{},
		&models.VisitLog{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// Double-booking backstop: a losing concurrent writer fails at commit
	// time instead of silently creating a second visit on the same slot.
	// Partial so cancelled and completed visits free the slot again.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_doctor_scheduled_slot
		ON visits (doctor_id, scheduled_time)
		WHERE current_status NOT IN ('CANCELLED', 'COMPLETED')
	`).Error
	if err != nil {
		log.Fatal("Failed to create booking uniqueness index: ", err)
	}

	// Same pattern for the queue invariant: a patient holds at most one visit
	// in CHECKED_IN or WITH_DOCTOR, even under concurrent check-ins.
	err = DB.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_patient_active_visit
		ON visits (patient_id)
		WHERE current_status IN ('CHECKED_IN', 'WITH_DOCTOR')
	`).Error
	if err != nil {
		log.Fatal("Failed to create active visit uniqueness index: ", err)
	}

	fmt.Println("✅ Migrations applied successfully!")
}
