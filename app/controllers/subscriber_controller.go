package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/provatel/billing/app/models"
	"github.com/provatel/billing/app/repository"
)

// HandleListSubscribers returns subscribers with offset/limit pagination.
// GET /api/v1/subscribers?offset=0&limit=50
func HandleListSubscribers(c *fiber.Ctx) error {
	offset := queryInt(c, "offset", 0)
	limit := queryInt(c, "limit", 50)
	if offset < 0 || limit < 1 || limit > 200 {
		return badRequest(c, "offset must be >= 0 and limit between 1 and 200")
	}

	repo := repository.GetGlobalFactory().GetSubscriberRepository()
	subscribers, err := repo.List(offset, limit)
	if err != nil {
		return internalError(c, "Failed to list subscribers")
	}
	total, err := repo.Count()
	if err != nil {
		return internalError(c, "Failed to count subscribers")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"total":       total,
		"subscribers": subscribers,
	})
}

// HandleGetSubscriber returns one subscriber by internal ID.
// GET /api/v1/subscribers/:id
func HandleGetSubscriber(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Subscriber id must be numeric")
	}

	repo := repository.GetGlobalFactory().GetSubscriberRepository()
	subscriber, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Subscriber not found")
		}
		return internalError(c, "Failed to load subscriber")
	}
	return c.Status(fiber.StatusOK).JSON(subscriber)
}

// HandleGetSubscriberByNumber returns one subscriber by subscriber number.
// GET /api/v1/subscribers/by-number/:subscriberNo
func HandleGetSubscriberByNumber(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetSubscriberRepository()
	subscriber, err := repo.GetBySubscriberNo(c.Params("subscriberNo"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Subscriber not found")
		}
		return internalError(c, "Failed to load subscriber")
	}
	return c.Status(fiber.StatusOK).JSON(subscriber)
}

type subscriberRequest struct {
	SubscriberNo string `json:"subscriber_no"`
	FullName     string `json:"full_name"`
}

// HandleCreateSubscriber registers a new subscriber.
// POST /api/v1/subscribers
func HandleCreateSubscriber(c *fiber.Ctx) error {
	var req subscriberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	subscriber := &models.Subscriber{
		SubscriberNo: req.SubscriberNo,
		FullName:     req.FullName,
	}
	if err := subscriber.Validate(); err != nil {
		return badRequest(c, "Invalid subscriber data: "+err.Error())
	}

	repo := repository.GetGlobalFactory().GetSubscriberRepository()
	if err := repo.Create(subscriber); err != nil {
		return internalError(c, "Failed to create subscriber")
	}
	return c.Status(fiber.StatusCreated).JSON(subscriber)
}

// HandleUpdateSubscriber updates the display name of a subscriber. The
// subscriber number is immutable once assigned.
// PUT /api/v1/subscribers/:id
func HandleUpdateSubscriber(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Subscriber id must be numeric")
	}
	var req subscriberRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetSubscriberRepository()
	subscriber, err := repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "Subscriber not found")
		}
		return internalError(c, "Failed to load subscriber")
	}

	subscriber.FullName = req.FullName
	if err := subscriber.Validate(); err != nil {
		return badRequest(c, "Invalid subscriber data: "+err.Error())
	}
	if err := repo.Update(subscriber); err != nil {
		return internalError(c, "Failed to update subscriber")
	}
	return c.Status(fiber.StatusOK).JSON(subscriber)
}
