package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/provatel/billing/internal/pkg/batchimport"
	"github.com/provatel/billing/internal/pkg/billing"
	"github.com/provatel/billing/internal/pkg/database"
)

// HandlePayBill applies a full or partial payment to a bill.
// POST /api/v1/website/pay-bill?subscriberNo=...&month=yyyy-MM&amount=...
func HandlePayBill(c *fiber.Ctx) error {
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
	amount, ok := parseAmount(c.Query("amount"))
	if !ok {
		return badRequest(c, "Amount must be greater than 0.")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	result, err := svc.PayBill(req.SubscriberNo, month, amount)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrBillNotFound):
			return notFound(c, "Bill not found.")
		case errors.Is(err, billing.ErrBillSettled):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": "Bill already settled."})
		default:
			return internalError(c, "Failed to process payment")
		}
	}

	status := "Successful"
	if result.AlreadySettled {
		status = "AlreadyPaid"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Bill payment processed successfully.",
		"subscriber_no": req.SubscriberNo,
		"month":         req.Month,
		"amount_paid":   amount,
		"status":        status,
		"bill":          result.Bill,
	})
}

// HandleAddBill creates a single bill for an existing subscriber.
// POST /api/v1/website/admin/add-bill?subscriberNo=...&month=yyyy-MM&amount=...&detailsJson=...
func HandleAddBill(c *fiber.Ctx) error {
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
	amount, ok := parseAmount(c.Query("amount"))
	if !ok {
		return badRequest(c, "Amount must be greater than 0.")
	}

	var details *string
	if raw := c.Query("detailsJson"); raw != "" {
		details = &raw
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	bill, err := svc.AddBill(req.SubscriberNo, month, amount, details)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrSubscriberNotFound):
			return notFound(c, "Subscriber does not exist.")
		case errors.Is(err, billing.ErrBillExists):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "conflict", "message": "Bill already exists."})
		default:
			return internalError(c, "Failed to add bill")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Bill added successfully.",
		"subscriber_no": req.SubscriberNo,
		"month":         req.Month,
		"amount":        bill.BillTotal,
		"bill_id":       bill.ID,
	})
}

// HandleAddBillBatch ingests a CSV file of bills (multipart upload, field
// "file"). Unknown-subscriber and duplicate rows are skipped; re-uploading
// the same file ingests nothing new.
// POST /api/v1/website/admin/add-bill/batch
func HandleAddBillBatch(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "No file uploaded.")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, "Could not read uploaded file.")
	}
	defer file.Close()

	rows, err := batchimport.ParseBillRows(file)
	if err != nil {
		if errors.Is(err, batchimport.ErrNoRows) {
			return badRequest(c, "No valid bills found in the CSV file.")
		}
		return badRequest(c, "Could not parse CSV file.")
	}

	svc := billing.NewServiceFromDB(database.GetDB())
	report, err := svc.AddBillBatch(rows)
	if err != nil {
		return internalError(c, "Failed to ingest bill batch")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Batch bill creation successful.",
		"count":   report.Ingested,
	})
}
