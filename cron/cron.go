package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Rohitsah12/healthFirst/db"
	"github.com/Rohitsah12/healthFirst/models"
	"github.com/Rohitsah12/healthFirst/utils"
)

// StartCronJobs initializes and starts the cron scheduler for appointment reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for appointments in the next hour
	_, err := c.AddFunc("* * * * *", sendAppointmentReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for appointment reminders")
}

// sendAppointmentReminders checks for upcoming appointments and sends reminders
func sendAppointmentReminders() {
	var visits []models.Visit
	now := time.Now().UTC()
	// Look for appointments starting in the next hour
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Patient").Preload("Doctor.User").
		Where("current_status = ? AND scheduled_time BETWEEN ? AND ?",
			models.StatusScheduled, startWindow, endWindow).
		Find(&visits).Error
	if err != nil {
		log.Printf("Error fetching appointments for reminders: %v", err)
		return
	}

	for _, visit := range visits {
		if err := sendReminderEmail(&visit); err != nil {
			log.Printf("Failed to send reminder for visit %s: %v", visit.ID, err)
			continue
		}
		log.Printf("Sent reminder for visit %s to %s", visit.ID, visit.Patient.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(visit *models.Visit) error {
	subject := "Reminder: Upcoming Appointment"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your upcoming appointment scheduled in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Please arrive on time. If you need to reschedule or cancel, contact the front desk as soon as possible.</p>
		<p>Best regards,</p>
		<p>HealthFirst Clinic</p>
	`, visit.Patient.Name, visit.Doctor.User.Name,
		utils.FormatClinicTime(*visit.ScheduledTime))

	return utils.SendEmail(visit.Patient.Email, subject, body)
}
