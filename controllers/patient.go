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

// CreatePatient registers a patient record at the front desk.
func CreatePatient(c *fiber.Ctx) error {
	var patient models.Patient
	if err := c.BodyParser(&patient); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if patient.Name == "" || patient.Phone == "" {
		return utils.ErrorJSON(c, "Missing required fields",
			fmt.Errorf("%w: name and phone are required", apperrors.ErrInvalidInput))
	}

	var existing models.Patient
	if db.DB.Where("phone = ?", patient.Phone).First(&existing).RowsAffected > 0 {
		return utils.ErrorJSON(c, "Failed to create patient",
			fmt.Errorf("%w: a patient with this phone already exists", apperrors.ErrConflict))
	}

	if err := db.DB.Create(&patient).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create patient",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(patient)
}

// GetPatients lists patients with pagination and name/phone search.
func GetPatients(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	search := c.Query("search")

	query := db.DB.Model(&models.Patient{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	var totalCount int64
	query.Count(&totalCount)

	var patients []models.Patient
	err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&patients).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patients",
		})
	}

	totalPages := (totalCount + int64(limit) - 1) / int64(limit)
	return c.JSON(fiber.Map{
		"patients": patients,
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

// GetPatient returns one patient record.
func GetPatient(c *fiber.Ctx) error {
	patientID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid patient ID", err)
	}

	var patient models.Patient
	if err := db.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		return utils.ErrorJSON(c, "Patient not found",
			fmt.Errorf("%w: patient not found", apperrors.ErrNotFound))
	}
	return c.JSON(patient)
}

// UpdatePatient updates patient fields.
func UpdatePatient(c *fiber.Ctx) error {
	patientID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid patient ID", err)
	}

	var patient models.Patient
	if err := db.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		return utils.ErrorJSON(c, "Patient not found",
			fmt.Errorf("%w: patient not found", apperrors.ErrNotFound))
	}

	var updates models.Patient
	if err := c.BodyParser(&updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if updates.Phone != "" && updates.Phone != patient.Phone {
		var clash models.Patient
		if db.DB.Where("phone = ? AND id <> ?", updates.Phone, patientID).First(&clash).RowsAffected > 0 {
			return utils.ErrorJSON(c, "Failed to update patient",
				fmt.Errorf("%w: a patient with this phone already exists", apperrors.ErrConflict))
		}
	}

	if err := db.DB.Model(&patient).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update patient",
		})
	}
	return c.JSON(patient)
}

// DeletePatient removes a patient without visit records. Visits and their
// logs are the clinic's medical trail and block deletion.
func DeletePatient(c *fiber.Ctx) error {
	patientID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid patient ID", err)
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, "id = ?", patientID).Error; err != nil {
			return fmt.Errorf("%w: patient not found", apperrors.ErrNotFound)
		}

		var visitCount int64
		if err := tx.Model(&models.Visit{}).Where("patient_id = ?", patientID).Count(&visitCount).Error; err != nil {
			return err
		}
		if visitCount > 0 {
			return fmt.Errorf("%w: cannot delete patient with existing visit records", apperrors.ErrInvalidState)
		}
		return tx.Delete(&patient).Error
	})
	if err != nil {
		return utils.ErrorJSON(c, "Failed to delete patient", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPatientHistory returns every visit of a patient, newest first, with the
// full log trail of each.
func GetPatientHistory(c *fiber.Ctx) error {
	patientID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid patient ID", err)
	}

	var patient models.Patient
	if err := db.DB.First(&patient, "id = ?", patientID).Error; err != nil {
		return utils.ErrorJSON(c, "Patient not found",
			fmt.Errorf("%w: patient not found", apperrors.ErrNotFound))
	}

	var visits []models.Visit
	err = db.DB.Preload("Doctor.User").
		Preload("Logs", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp asc") }).
		Where("patient_id = ?", patientID).
		Order("created_at desc").
		Find(&visits).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch patient history",
		})
	}
	return c.JSON(visits)
}
