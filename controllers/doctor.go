package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rohitsah12/healthFirst/apperrors"
	"github.com/Rohitsah12/healthFirst/db"
	"github.com/Rohitsah12/healthFirst/models"
	"github.com/Rohitsah12/healthFirst/utils"
)

type createDoctorRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialisation string `json:"specialisation"`
	Gender         string `json:"gender"`
}

// CreateDoctor creates the staff user and the doctor profile in one
// transaction. New doctors get a default password they must change.
func CreateDoctor(c *fiber.Ctx) error {
	var req createDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return utils.ErrorJSON(c, "Missing required fields",
			fmt.Errorf("%w: name, email and phone are required", apperrors.ErrInvalidInput))
	}

	var doctor models.Doctor
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if tx.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&existing).RowsAffected > 0 {
			return fmt.Errorf("%w: a user with this email or phone already exists", apperrors.ErrConflict)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte("Doctor@123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: string(hashed),
			Role:     models.RoleDoctor,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		doctor = models.Doctor{
			UserID:         user.ID,
			Specialisation: req.Specialisation,
			Gender:         req.Gender,
			IsActive:       true,
		}
		if err := tx.Create(&doctor).Error; err != nil {
			return err
		}
		doctor.User = user
		return nil
	})
	if err != nil {
		return utils.ErrorJSON(c, "Failed to create doctor", err)
	}

	doctor.User.Password = ""
	return c.Status(fiber.StatusCreated).JSON(doctor)
}

// GetDoctors lists doctors with pagination, search and an isActive filter.
func GetDoctors(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	search := c.Query("search")
	isActive := c.Query("is_active", "all")

	query := db.DB.Model(&models.Doctor{}).
		Joins("JOIN users ON users.id = doctors.user_id")

	if isActive != "all" {
		query = query.Where("doctors.is_active = ?", isActive == "true")
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"users.name ILIKE ? OR users.email ILIKE ? OR users.phone LIKE ? OR doctors.specialisation ILIKE ?",
			like, like, like, like,
		)
	}

	var totalCount int64
	query.Count(&totalCount)

	var doctors []models.Doctor
	err := query.Preload("User").Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week asc, start_minute asc")
	}).
		Order("doctors.created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&doctors).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
		})
	}

	for i := range doctors {
		doctors[i].User.Password = ""
	}

	totalPages := (totalCount + int64(limit) - 1) / int64(limit)
	return c.JSON(fiber.Map{
		"doctors": doctors,
		"pagination": fiber.Map{
			"current_page":  page,
			"total_pages":   totalPages,
			"total_count":   totalCount,
			"limit":         limit,
			"has_next_page": int64(page) < totalPages,
			"has_prev_page": page > 1,
		},
	})
}

// GetDoctor returns one doctor with the weekly schedule.
func GetDoctor(c *fiber.Ctx) error {
	doctorID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid doctor ID", err)
	}

	var doctor models.Doctor
	err = db.DB.Preload("User").Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
		return db.Order("day_of_week asc, start_minute asc")
	}).First(&doctor, "id = ?", doctorID).Error
	if err != nil {
		return utils.ErrorJSON(c, "Doctor not found",
			fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound))
	}

	doctor.User.Password = ""
	return c.JSON(doctor)
}

type updateDoctorRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialisation string `json:"specialisation"`
	Gender         string `json:"gender"`
	IsActive       *bool  `json:"is_active"`
}

// UpdateDoctor updates user and profile fields, guarding email/phone
// uniqueness against other users.
func UpdateDoctor(c *fiber.Ctx) error {
	doctorID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid doctor ID", err)
	}

	var req updateDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, "id = ?", doctorID).Error; err != nil {
			return fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound)
		}

		userUpdates := map[string]interface{}{}
		if req.Name != "" {
			userUpdates["name"] = req.Name
		}
		if req.Email != "" {
			var clash models.User
			if tx.Where("email = ? AND id <> ?", req.Email, doctor.UserID).First(&clash).RowsAffected > 0 {
				return fmt.Errorf("%w: email already in use by another user", apperrors.ErrConflict)
			}
			userUpdates["email"] = req.Email
		}
		if req.Phone != "" {
			var clash models.User
			if tx.Where("phone = ? AND id <> ?", req.Phone, doctor.UserID).First(&clash).RowsAffected > 0 {
				return fmt.Errorf("%w: phone already in use by another user", apperrors.ErrConflict)
			}
			userUpdates["phone"] = req.Phone
		}
		if len(userUpdates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", doctor.UserID).Updates(userUpdates).Error; err != nil {
				return err
			}
		}

		doctorUpdates := map[string]interface{}{}
		if req.Specialisation != "" {
			doctorUpdates["specialisation"] = req.Specialisation
		}
		if req.Gender != "" {
			doctorUpdates["gender"] = req.Gender
		}
		if req.IsActive != nil {
			doctorUpdates["is_active"] = *req.IsActive
		}
		if len(doctorUpdates) > 0 {
			if err := tx.Model(&doctor).Updates(doctorUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorJSON(c, "Failed to update doctor", err)
	}

	return GetDoctor(c)
}

// DeleteDoctor deactivates a doctor, or with ?permanent=true removes the
// doctor and staff user entirely. Permanent deletion is blocked while any
// visit records exist; deactivation is the safe path.
func DeleteDoctor(c *fiber.Ctx) error {
	doctorID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid doctor ID", err)
	}

	if c.Query("permanent") != "true" {
		result := db.DB.Model(&models.Doctor{}).Where("id = ?", doctorID).Update("is_active", false)
		if result.Error != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to deactivate doctor",
			})
		}
		if result.RowsAffected == 0 {
			return utils.ErrorJSON(c, "Doctor not found",
				fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound))
		}
		return c.JSON(fiber.Map{"message": "Doctor deactivated"})
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var doctor models.Doctor
		if err := tx.First(&doctor, "id = ?", doctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: doctor not found", apperrors.ErrNotFound)
			}
			return err
		}

		var visitCount int64
		if err := tx.Model(&models.Visit{}).Where("doctor_id = ?", doctorID).Count(&visitCount).Error; err != nil {
			return err
		}
		if visitCount > 0 {
			return fmt.Errorf("%w: cannot permanently delete doctor with existing visit records, deactivate instead", apperrors.ErrInvalidState)
		}

		if err := tx.Where("doctor_id = ?", doctorID).Delete(&models.DoctorSchedule{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&doctor).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", doctor.UserID).Error
	})
	if err != nil {
		return utils.ErrorJSON(c, "Failed to delete doctor", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetDoctorAvailability returns the bookable 30-minute slots for a doctor on
// a date. The result is advisory; booking re-validates the slot.
func GetDoctorAvailability(c *fiber.Ctx) error {
	doctorID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid doctor ID", err)
	}
	date, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return utils.ErrorJSON(c, "Invalid date", err)
	}

	result, err := sched.GetAvailability(doctorID, date)
	if err != nil {
		return utils.ErrorJSON(c, "Failed to fetch availability", err)
	}
	return c.JSON(result)
}

// GetDoctorsOnDate lists active doctors with a working window on the date's
// weekday.
func GetDoctorsOnDate(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date", time.Now().UTC().Format("2006-01-02")))
	if err != nil {
		return utils.ErrorJSON(c, "Invalid date", err)
	}
	day := models.DayOfWeekFor(date)

	var doctors []models.Doctor
	err = db.DB.Preload("User").
		Preload("WorkingHours", "day_of_week = ?", day).
		Joins("JOIN doctor_schedules ON doctor_schedules.doctor_id = doctors.id").
		Where("doctors.is_active = ? AND doctor_schedules.day_of_week = ?", true, day).
		Group("doctors.id").
		Find(&doctors).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch doctors",
		})
	}

	for i := range doctors {
		doctors[i].User.Password = ""
	}
	return c.JSON(doctors)
}
