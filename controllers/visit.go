package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Rohitsah12/healthFirst/apperrors"
	"github.com/Rohitsah12/healthFirst/db"
	"github.com/Rohitsah12/healthFirst/models"
	"github.com/Rohitsah12/healthFirst/redis"
	"github.com/Rohitsah12/healthFirst/scheduler"
	"github.com/Rohitsah12/healthFirst/utils"
)

var sched *scheduler.Service

// Init wires the shared scheduler service. Call after db.Init().
func Init() {
	sched = scheduler.NewService(db.DB, scheduler.DefaultConfig())
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s", apperrors.ErrInvalidInput, name)
	}
	return id, nil
}

type bookRequest struct {
	PatientID     uuid.UUID            `json:"patient_id"`
	DoctorID      uuid.UUID            `json:"doctor_id"`
	ScheduledTime time.Time            `json:"scheduled_time"`
	Priority      models.PriorityLevel `json:"priority"`
	Notes         string               `json:"notes"`
}

// BookAppointment books a slot for a patient. The slot the client saw in the
// availability response is re-validated inside the booking transaction; a
// 409 here means the slot was taken in between and availability should be
// refreshed.
func BookAppointment(c *fiber.Ctx) error {
	var req bookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	visit, err := sched.BookAppointment(scheduler.BookingInput{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		ScheduledTime: req.ScheduledTime,
		Priority:      req.Priority,
		Notes:         req.Notes,
	})
	if err != nil {
		return utils.ErrorJSON(c, "Failed to book appointment", err)
	}

	sendBookingConfirmation(visit)

	return c.Status(fiber.StatusCreated).JSON(visit)
}

type rescheduleRequest struct {
	ScheduledTime time.Time `json:"scheduled_time"`
}

// RescheduleAppointment moves a scheduled appointment to a new slot.
func RescheduleAppointment(c *fiber.Ctx) error {
	visitID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid appointment ID", err)
	}

	var req rescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	visit, err := sched.RescheduleAppointment(visitID, req.ScheduledTime)
	if err != nil {
		return utils.ErrorJSON(c, "Failed to reschedule appointment", err)
	}
	return c.JSON(visit)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// CancelAppointment cancels a scheduled appointment; the slot frees up again.
func CancelAppointment(c *fiber.Ctx) error {
	visitID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid appointment ID", err)
	}

	var req cancelRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	visit, err := sched.CancelAppointment(visitID, req.Reason)
	if err != nil {
		return utils.ErrorJSON(c, "Failed to cancel appointment", err)
	}
	return c.JSON(visit)
}

// CheckInAppointment moves a scheduled appointment into the live queue.
func CheckInAppointment(c *fiber.Ctx) error {
	visitID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid appointment ID", err)
	}

	visit, err := sched.CheckInAppointment(visitID)
	if err != nil {
		return utils.ErrorJSON(c, "Failed to check in appointment", err)
	}

	redis.InvalidateQueue()
	return c.JSON(visit)
}

type walkInRequest struct {
	PatientID uuid.UUID            `json:"patient_id"`
	DoctorID  uuid.UUID            `json:"doctor_id"`
	Priority  models.PriorityLevel `json:"priority"`
}

// CreateWalkIn checks a patient straight into the queue.
func CreateWalkIn(c *fiber.Ctx) error {
	var req walkInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	visit, err := sched.CreateWalkIn(scheduler.WalkInInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Priority:  req.Priority,
	})
	if err != nil {
		return utils.ErrorJSON(c, "Failed to create walk-in visit", err)
	}

	redis.InvalidateQueue()
	return c.Status(fiber.StatusCreated).JSON(visit)
}

// GetVisit returns one visit with its full log trail.
func GetVisit(c *fiber.Ctx) error {
	visitID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid visit ID", err)
	}

	var visit models.Visit
	if err := db.DB.Preload("Patient").Preload("Doctor.User").Preload("Logs").
		First(&visit, "id = ?", visitID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Visit not found",
		})
	}
	return c.JSON(visit)
}

// GetAppointmentsByDate lists the non-terminal scheduled appointments of one
// day, ascending by slot.
func GetAppointmentsByDate(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date", time.Now().UTC().Format("2006-01-02")))
	if err != nil {
		return utils.ErrorJSON(c, "Invalid date", err)
	}
	dayStart, dayEnd := utils.DayBounds(date)

	var visits []models.Visit
	err = db.DB.Preload("Patient").Preload("Doctor.User").Preload("Logs").
		Where("visit_type = ? AND scheduled_time >= ? AND scheduled_time < ?",
			models.TypeScheduled, dayStart, dayEnd).
		Where("current_status NOT IN ?", []models.VisitStatus{models.StatusCompleted, models.StatusCancelled}).
		Order("scheduled_time asc").
		Find(&visits).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch appointments",
		})
	}
	return c.JSON(visits)
}

type historySummary struct {
	TotalVisits int `json:"total_visits"`
	Completed   int `json:"completed"`
	Cancelled   int `json:"cancelled"`
	WalkIn      int `json:"walk_in"`
	Urgent      int `json:"urgent"`
}

// GetVisitHistory lists all visits created on a day with summary counts.
func GetVisitHistory(c *fiber.Ctx) error {
	date, err := utils.ParseDate(c.Query("date", time.Now().UTC().Format("2006-01-02")))
	if err != nil {
		return utils.ErrorJSON(c, "Invalid date", err)
	}
	dayStart, dayEnd := utils.DayBounds(date)

	var visits []models.Visit
	err = db.DB.Preload("Patient").Preload("Doctor.User").Preload("Logs").
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Order("created_at desc").
		Find(&visits).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch visit history",
		})
	}

	summary := historySummary{TotalVisits: len(visits)}
	for _, v := range visits {
		if v.CurrentStatus == models.StatusCompleted {
			summary.Completed++
		}
		if v.CurrentStatus == models.StatusCancelled {
			summary.Cancelled++
		}
		if v.VisitType == models.TypeWalkIn {
			summary.WalkIn++
		}
		if v.Priority == models.PriorityUrgent {
			summary.Urgent++
		}
	}

	return c.JSON(fiber.Map{
		"visits":  visits,
		"summary": summary,
	})
}

func sendBookingConfirmation(visit *models.Visit) {
	if visit.Patient.Email == "" || visit.ScheduledTime == nil {
		return
	}
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your appointment has been booked.</p>
		<ul>
			<li><strong>Doctor:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
		<p>Best regards,</p>
		<p>HealthFirst Clinic</p>
	`, visit.Patient.Name, visit.Doctor.User.Name, utils.FormatClinicTime(*visit.ScheduledTime))
	if err := utils.SendEmail(visit.Patient.Email, "Appointment Confirmation", body); err != nil {
		log.Printf("Failed to send booking confirmation for visit %s: %v", visit.ID, err)
	}
}
