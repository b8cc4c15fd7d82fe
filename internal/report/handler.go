package report

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comandareal/comanda-backend/internal/merchant"
	"github.com/comandareal/comanda-backend/internal/order"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/reports/orders", h.orderVolume)
}

// orderVolume answers either ?status= or ?window= counts; exactly one of
// the two must be given.
func (h *Handler) orderVolume(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	status := c.Query("status")
	window := c.Query("window")
	if (status == "") == (window == "") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "pass exactly one of status or window"})
	}

	if status != "" {
		count, err := h.service.CountByStatus(storeID, order.Status(status))
		if err != nil {
			if err == order.ErrInvalidStatus {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(fiber.Map{"status": status, "count": count})
	}

	count, err := h.service.CountByWindow(storeID, Window(window))
	if err != nil {
		if err == ErrInvalidWindow {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"window": window, "count": count})
}
