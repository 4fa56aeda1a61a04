package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/provatel/billing/app/controllers"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")

	// Mobile provider app: bill queries
	provider := v1.Group("/provider")
	provider.Get("/query-bill", controllers.HandleQueryBill)
	provider.Get("/query-bill-detailed", controllers.HandleQueryBillDetailed)

	// Banking app: unpaid bill listing
	banking := v1.Group("/banking")
	banking.Get("/unpaid-bills", controllers.HandleQueryUnpaidBills)

	// Website: payments and bill administration
	website := v1.Group("/website")
	website.Post("/pay-bill", controllers.HandlePayBill)
	website.Post("/admin/add-bill", controllers.HandleAddBill)
	website.Post("/admin/add-bill/batch", controllers.HandleAddBillBatch)

	// Subscriber administration
	subscribers := v1.Group("/subscribers")
	subscribers.Get("/", controllers.HandleListSubscribers)
	subscribers.Get("/by-number/:subscriberNo", controllers.HandleGetSubscriberByNumber)
	subscribers.Get("/:id", controllers.HandleGetSubscriber)
	subscribers.Post("/", controllers.HandleCreateSubscriber)
	subscribers.Put("/:id", controllers.HandleUpdateSubscriber)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
