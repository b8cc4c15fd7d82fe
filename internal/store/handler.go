package store

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/comandareal/comanda-backend/internal/merchant"
)

// Handler delegates store operations to the store service. The public
// routes serve the customer-facing menu page; the protected ones are the
// merchant profile surface.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/stores/:slug", h.getStore)
	app.Get("/api/v1/stores/:slug/availability", h.getAvailability)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/store", h.getOwnStore)
	app.Put("/api/v1/store", h.updateOwnStore)
}

func (h *Handler) getStore(c *fiber.Ctx) error {
	st, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(st)
}

// getAvailability answers "can I order right now" for the storefront.
// Without a cep query it only reports opening hours.
func (h *Handler) getAvailability(c *fiber.Ctx) error {
	st, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	now := time.Now()
	open := st.IsOpenAt(now)
	resp := fiber.Map{
		"open":     open,
		"canOrder": open,
	}

	if cep := c.Query("cep"); cep != "" {
		delivers := st.CanDeliverTo(cep)
		resp["deliversTo"] = delivers
		resp["canOrder"] = open && delivers
	}

	return c.JSON(resp)
}

func (h *Handler) getOwnStore(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	st, err := h.service.GetByID(storeID)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(st)
}

func (h *Handler) updateOwnStore(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(Store)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.Update(storeID, *payload)
	if err != nil {
		switch err {
		case ErrNameRequired:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}
