package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/db"
	"github.com/Rohitsah12/healthFirst/models"
	"github.com/Rohitsah12/healthFirst/utils"
)

// GetDashboardOverview returns today's front-desk numbers plus the head of
// the queue and the next few appointments.
func GetDashboardOverview(c *fiber.Ctx) error {
	dayStart, dayEnd := utils.DayBounds(time.Now().UTC())

	var stats struct {
		Waiting        int64 `json:"waiting"`
		WithDoctor     int64 `json:"with_doctor"`
		CompletedToday int64 `json:"completed_today"`
		UpcomingToday  int64 `json:"upcoming_today"`
	}

	db.DB.Model(&models.Visit{}).
		Where("current_status = ? AND check_in_time >= ? AND check_in_time < ?",
			models.StatusCheckedIn, dayStart, dayEnd).
		Count(&stats.Waiting)
	db.DB.Model(&models.Visit{}).
		Where("current_status = ? AND with_doctor_time >= ? AND with_doctor_time < ?",
			models.StatusWithDoctor, dayStart, dayEnd).
		Count(&stats.WithDoctor)
	db.DB.Model(&models.Visit{}).
		Where("current_status = ? AND complete_time >= ? AND complete_time < ?",
			models.StatusCompleted, dayStart, dayEnd).
		Count(&stats.CompletedToday)
	db.DB.Model(&models.Visit{}).
		Where("current_status = ? AND scheduled_time >= ? AND scheduled_time < ?",
			models.StatusScheduled, dayStart, dayEnd).
		Count(&stats.UpcomingToday)

	var queueHead []models.Visit
	db.DB.Preload("Patient").Preload("Doctor.User").
		Where("current_status = ? AND check_in_time >= ? AND check_in_time < ?",
			models.StatusCheckedIn, dayStart, dayEnd).
		Order("priority desc").
		Order("check_in_time asc").
		Limit(5).
		Find(&queueHead)

	var upcoming []models.Visit
	db.DB.Preload("Patient").Preload("Doctor.User").
		Where("current_status = ? AND scheduled_time >= ? AND scheduled_time < ?",
			models.StatusScheduled, dayStart, dayEnd).
		Order("scheduled_time asc").
		Limit(5).
		Find(&upcoming)

	return c.JSON(fiber.Map{
		"stats":                 stats,
		"current_queue":         queueHead,
		"upcoming_appointments": upcoming,
	})
}
