package category

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/comandareal/comanda-backend/internal/merchant"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/stores/:id<[0-9]+>/categories", h.listByStore)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/categories", h.createCategory)
	app.Put("/api/v1/categories/:id<[0-9]+>", h.updateCategory)
	app.Delete("/api/v1/categories/:id<[0-9]+>", h.deleteCategory)
}

func (h *Handler) listByStore(c *fiber.Ctx) error {
	storeID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid store id"})
	}

	categories, err := h.service.ListByStore(storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(categories)
}

func (h *Handler) createCategory(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(Category)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.StoreID = storeID

	created, err := h.service.Create(*payload)
	if err != nil {
		if err == ErrNameRequired {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateCategory(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.ownedByStore(id, storeID); err != nil {
		return h.errResponse(c, err)
	}

	payload := new(Category)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.StoreID = storeID

	updated, err := h.service.Update(id, *payload)
	if err != nil {
		return h.errResponse(c, err)
	}
	return c.JSON(updated)
}

func (h *Handler) deleteCategory(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.ownedByStore(id, storeID); err != nil {
		return h.errResponse(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return h.errResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ownedByStore(categoryID, storeID int) error {
	cat, err := h.service.GetByID(categoryID)
	if err != nil {
		return err
	}
	if cat.StoreID != storeID {
		return ErrNotFound
	}
	return nil
}

func (h *Handler) errResponse(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "category not found"})
	case ErrNameRequired:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
