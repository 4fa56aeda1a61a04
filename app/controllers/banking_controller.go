package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/provatel/billing/internal/pkg/billing"
	"github.com/provatel/billing/internal/pkg/database"
)

// HandleQueryUnpaidBills lists all unpaid bills of a subscriber, oldest month
// first. An unknown subscriber yields an empty list.
// GET /api/v1/banking/unpaid-bills?subscriberNo=...
func HandleQueryUnpaidBills(c *fiber.Ctx) error {
	subscriberNo := c.Query("subscriberNo")
	if subscriberNo == "" {
		return badRequest(c, "Subscriber number is required.")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	bills, err := svc.GetUnpaidBills(subscriberNo)
	if err != nil {
		return internalError(c, "Failed to query unpaid bills")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"subscriber_no": subscriberNo,
		"count":         len(bills),
		"bills":         bills,
	})
}
