package address

import "github.com/gofiber/fiber/v2"

// Handler exposes CEP lookup for the checkout form.
type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/address/:cep", h.lookup)
}

func (h *Handler) lookup(c *fiber.Ctx) error {
	addr, err := h.client.Lookup(c.Params("cep"))
	if err != nil {
		switch err {
		case ErrInvalidCEP:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(addr)
}
