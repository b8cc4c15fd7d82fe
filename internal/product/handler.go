package product

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/comandareal/comanda-backend/internal/merchant"
)

// Handler exposes the menu products. Listing is public (the storefront
// reads it); mutations are scoped to the authenticated merchant's store.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/stores/:id<[0-9]+>/products", h.listByStore)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/products", h.createProduct)
	app.Put("/api/v1/products/:id<[0-9]+>", h.updateProduct)
	app.Delete("/api/v1/products/:id<[0-9]+>", h.deleteProduct)
}

func (h *Handler) listByStore(c *fiber.Ctx) error {
	storeID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid store id"})
	}

	if q := c.Query("categoryId"); q != "" {
		categoryID, err := strconv.Atoi(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid categoryId"})
		}
		products, err := h.service.ListByCategory(storeID, categoryID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(products)
	}

	products, err := h.service.ListByStore(storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(Product)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.StoreID = storeID

	created, err := h.service.Create(*payload)
	if err != nil {
		switch err {
		case ErrNameRequired, ErrInvalidPrice:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.ownedByStore(id, storeID); err != nil {
		return notFoundOrInternal(c, err)
	}

	payload := new(Product)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	payload.StoreID = storeID

	updated, err := h.service.Update(id, *payload)
	if err != nil {
		switch err {
		case ErrNameRequired, ErrInvalidPrice:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	if err := h.ownedByStore(id, storeID); err != nil {
		return notFoundOrInternal(c, err)
	}

	if err := h.service.Delete(id); err != nil {
		return notFoundOrInternal(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) ownedByStore(productID, storeID int) error {
	p, err := h.service.GetByID(productID)
	if err != nil {
		return err
	}
	if p.StoreID != storeID {
		return ErrNotFound
	}
	return nil
}

func notFoundOrInternal(c *fiber.Ctx, err error) error {
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
