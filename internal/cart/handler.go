package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/comandareal/comanda-backend/internal/product"
)

// Handler exposes the storefront cart. Carts belong to anonymous
// sessions, keyed by the X-Session-ID header the frontend generates.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart/items", h.addItem)
	app.Delete("/api/v1/cart/items/:productId<[0-9]+>", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addItemRequest struct {
	ProductID int `json:"productId"`
}

type cartResponse struct {
	Lines      []Line `json:"lines"`
	TotalCents int64  `json:"totalCents"`
	ItemCount  int    `json:"itemCount"`
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "X-Session-ID header is required"})
	}

	lines, err := h.service.Get(sessionID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(respond(lines))
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "X-Session-ID header is required"})
	}

	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	lines, err := h.service.Add(sessionID, payload.ProductID)
	if err != nil {
		switch err {
		case product.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		case ErrProductUnavailable:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(respond(lines))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "X-Session-ID header is required"})
	}

	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid productId"})
	}

	lines, err := h.service.Remove(sessionID, productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(respond(lines))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	sessionID, ok := sessionFromRequest(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "X-Session-ID header is required"})
	}

	if err := h.service.Clear(sessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func respond(lines []Line) cartResponse {
	return cartResponse{
		Lines:      lines,
		TotalCents: TotalCents(lines),
		ItemCount:  ItemCount(lines),
	}
}

func sessionFromRequest(c *fiber.Ctx) (string, bool) {
	sessionID := c.Get("X-Session-ID")
	return sessionID, sessionID != ""
}
