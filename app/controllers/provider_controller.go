package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/provatel/billing/internal/pkg/billing"
	"github.com/provatel/billing/internal/pkg/database"
)

type billQueryRequest struct {
	SubscriberNo string `validate:"required"`
	Month        string `validate:"required,len=7"`
}

type billDetailRequest struct {
	SubscriberNo string `validate:"required"`
	Month        string `validate:"required,len=7"`
	Page         int    `validate:"min=1"`
	PageSize     int    `validate:"min=1,max=100"`
}

// HandleQueryBill returns the summary of one bill for a subscriber and month.
// GET /api/v1/provider/query-bill?subscriberNo=...&month=yyyy-MM
func HandleQueryBill(c *fiber.Ctx) error {
	req := billQueryRequest{
		SubscriberNo: c.Query("subscriberNo"),
		Month:        c.Query("month"),
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "subscriberNo and month (yyyy-MM) are required")
	}
	month, err := parseBillMonth(req.Month)
	if err != nil {
		return badRequest(c, "Invalid month format. Use yyyy-MM.")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	summary, err := svc.GetBillSummary(req.SubscriberNo, month)
	if err != nil {
		return internalError(c, "Failed to query bill")
	}
	if summary == nil {
		return notFound(c, "No bill found for the given subscriber and month")
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}

// HandleQueryBillDetailed returns one page of decoded bill detail.
// GET /api/v1/provider/query-bill-detailed?subscriberNo=...&month=yyyy-MM&page=1&pageSize=10
func HandleQueryBillDetailed(c *fiber.Ctx) error {
	req := billDetailRequest{
		SubscriberNo: c.Query("subscriberNo"),
		Month:        c.Query("month"),
		Page:         queryInt(c, "page", 1),
		PageSize:     queryInt(c, "pageSize", 10),
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "subscriberNo, month (yyyy-MM), page >= 1 and pageSize 1..100 are required")
	}
	month, err := parseBillMonth(req.Month)
	if err != nil {
		return badRequest(c, "Invalid month format. Use yyyy-MM.")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	detail, err := svc.GetBillDetail(req.SubscriberNo, month, req.Page, req.PageSize)
	if err != nil {
		return internalError(c, "Failed to query bill detail")
	}
	return c.Status(fiber.StatusOK).JSON(detail)
}
