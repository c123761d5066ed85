package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/db"
	"github.com/Rohitsah12/healthFirst/models"
	"github.com/Rohitsah12/healthFirst/redis"
	"github.com/Rohitsah12/healthFirst/utils"
)

// GetActiveQueue returns the live queue: urgent patients first, then by
// check-in time. Served from the Redis cache between status changes.
func GetActiveQueue(c *fiber.Ctx) error {
	if cached, err := redis.Client.Get(redis.Ctx, redis.ActiveQueueKey).Result(); err == nil {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	var queue []models.Visit
	err := db.DB.Preload("Patient").Preload("Doctor.User").
		Where("current_status IN ?", models.ActiveStatuses).
		Order("priority desc").
		Order("check_in_time asc").
		Find(&queue).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch active queue",
		})
	}

	if payload, err := json.Marshal(queue); err == nil {
		redis.Client.Set(redis.Ctx, redis.ActiveQueueKey, payload, redis.QueueCacheTTL)
	}
	return c.JSON(queue)
}

type advanceRequest struct {
	Status models.VisitStatus `json:"status"`
}

// AdvanceVisitStatus moves a queued visit forward (WITH_DOCTOR or COMPLETED).
func AdvanceVisitStatus(c *fiber.Ctx) error {
	visitID, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorJSON(c, "Invalid visit ID", err)
	}

	var req advanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	visit, err := sched.AdvanceQueue(visitID, req.Status)
	if err != nil {
		return utils.ErrorJSON(c, "Failed to update visit status", err)
	}

	redis.InvalidateQueue()
	return c.JSON(visit)
}
