package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Rohitsah12/healthFirst/apperrors"
	"github.com/Rohitsah12/healthFirst/db"
	"github.com/Rohitsah12/healthFirst/models"
	"github.com/Rohitsah12/healthFirst/utils"
)

type scheduleEntryRequest struct {
	DayOfWeek models.DayOfWeek `json:"day_of_week"`
	StartTime string           `json:"start_time"`
	EndTime   string           `json:"end_time"`
}

type upsertScheduleRequest struct {
	Schedules []scheduleEntryRequest `json:"schedules"`
}

// validateScheduleEntries checks HH:MM format, start < end, known weekday and
// same-day overlaps. Midnight-crossing windows fail the start < end rule here
// so the slot engine never sees one. Multiple non-overlapping windows per day
// are allowed.
func validateScheduleEntries(entries []scheduleEntryRequest) ([]models.DoctorSchedule, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: at least one schedule entry is required", apperrors.ErrInvalidInput)
	}

	parsed := make([]models.DoctorSchedule, 0, len(entries))
	for _, entry := range entries {
		if !models.IsValidDay(entry.DayOfWeek) {
			return nil, fmt.Errorf("%w: invalid day of week %q", apperrors.ErrInvalidInput, entry.DayOfWeek)
		}
		start, err := utils.ParseClockTime(entry.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := utils.ParseClockTime(entry.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, fmt.Errorf("%w: end time must be after start time", apperrors.ErrInvalidInput)
		}
		parsed = append(parsed, models.DoctorSchedule{
			DayOfWeek:   entry.DayOfWeek,
			StartMinute: start,
			EndMinute:   end,
		})
	}

	for i := range parsed {
		for j := i + 1; j < len(parsed); j++ {
			if parsed[i].Overlaps(parsed[j]) {
				return nil, fmt.Errorf("%w: time slots cannot overlap on the same day", apperrors.ErrInvalidInput)
			}
		}
	}
	return parsed, nil
}

// UpsertDoctorSchedule replaces the schedule for every weekday named in the
// request: existing windows for those days are dropped and the new ones
// written, atomically. Days not named are untouched.
func UpsertDoctorSchedule(c *fiber.Ctx) error {
	doctorID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid doctor ID", err)
	}

	var req upsertScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	entries, err := validateScheduleEntries(req.Schedules)
	if err != nil {
		return utils.ErrorJSON(c, "Invalid schedule", err)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, "id = ?", doctorID).Error; err != nil {
			return fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound)
		}

		days := make([]models.DayOfWeek, 0, len(entries))
		seen := map[models.DayOfWeek]bool{}
		for _, entry := range entries {
			if !seen[entry.DayOfWeek] {
				seen[entry.DayOfWeek] = true
				days = append(days, entry.DayOfWeek)
			}
		}

		if err := tx.Where("doctor_id = ? AND day_of_week IN ?", doctorID, days).
			Delete(&models.DoctorSchedule{}).Error; err != nil {
			return err
		}

		for i := range entries {
			entries[i].DoctorID = doctorID
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorJSON(c, "Failed to update schedule", err)
	}

	return c.JSON(entries)
}

// GetDoctorSchedule returns a doctor's windows, optionally for one weekday.
func GetDoctorSchedule(c *fiber.Ctx) error {
	doctorID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid doctor ID", err)
	}

	var doctor models.Doctor
	if err := db.DB.Preload("User").First(&doctor, "id = ?", doctorID).Error; err != nil {
		return utils.ErrorJSON(c, "Doctor not found",
			fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound))
	}

	query := db.DB.Where("doctor_id = ?", doctorID)
	if day := models.DayOfWeek(c.Query("day_of_week")); day != "" {
		if !models.IsValidDay(day) {
			return utils.ErrorJSON(c, "Invalid day of week",
				fmt.Errorf("%w: invalid day of week %q", apperrors.ErrInvalidInput, day))
		}
		query = query.Where("day_of_week = ?", day)
	}

	var schedules []models.DoctorSchedule
	if err := query.Order("day_of_week asc, start_minute asc").Find(&schedules).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch schedule",
		})
	}

	return c.JSON(fiber.Map{
		"doctor": fiber.Map{
			"id":   doctor.ID,
			"name": doctor.User.Name,
		},
		"schedules": schedules,
	})
}

// DeleteDoctorSchedule removes all windows, or one weekday's when
// ?day_of_week= is given.
func DeleteDoctorSchedule(c *fiber.Ctx) error {
	doctorID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid doctor ID", err)
	}

	var doctor models.Doctor
	if err := db.DB.First(&doctor, "id = ?", doctorID).Error; err != nil {
		return utils.ErrorJSON(c, "Doctor not found",
			fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound))
	}

	query := db.DB.Where("doctor_id = ?", doctorID)
	message := "All schedules deleted successfully"
	if day := models.DayOfWeek(c.Query("day_of_week")); day != "" {
		if !models.IsValidDay(day) {
			return utils.ErrorJSON(c, "Invalid day of week",
				fmt.Errorf("%w: invalid day of week %q", apperrors.ErrInvalidInput, day))
		}
		query = query.Where("day_of_week = ?", day)
		message = fmt.Sprintf("Schedule for %s deleted successfully", day)
	}

	result := query.Delete(&models.DoctorSchedule{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete schedule",
		})
	}

	return c.JSON(fiber.Map{
		"message":       message,
		"deleted_count": result.RowsAffected,
	})
}
