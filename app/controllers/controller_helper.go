package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

const billMonthLayout = "2006-01"

var validate = validator.New()

// parseBillMonth parses the yyyy-MM wire format used by all bill endpoints.
func parseBillMonth(raw string) (time.Time, error) {
	return time.Parse(billMonthLayout, strings.TrimSpace(raw))
}

// parseAmount parses a decimal amount and guarantees it is strictly positive.
func parseAmount(raw string) (decimal.Decimal, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}
	return amount, true
}

// queryInt reads an integer query parameter with a default.
func queryInt(c *fiber.Ctx, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad_request", "message": message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found", "message": message})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal_server_error", "message": message})
}
