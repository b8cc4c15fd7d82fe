package order

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/comandareal/comanda-backend/internal/merchant"
	"github.com/comandareal/comanda-backend/internal/store"
)

// Handler wires checkout and the merchant order board. Checkout is
// public and gated by the store's availability; everything else requires
// the merchant JWT.
type Handler struct {
	service *Service
	stores  store.ServiceInterface
}

func NewHandler(s *Service, stores store.ServiceInterface) *Handler {
	return &Handler{service: s, stores: stores}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/stores/:slug/orders", h.createOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/orders/:id<[0-9]+>", h.getOrder)
	app.Patch("/api/v1/orders/:id<[0-9]+>/status", h.changeStatus)
}

type createOrderRequest struct {
	Items       []Item      `json:"items"`
	Customer    Customer    `json:"customer"`
	PaymentType PaymentType `json:"paymentType"`
	CEP         string      `json:"cep"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	st, err := h.stores.GetBySlug(c.Params("slug"))
	if err != nil {
		if err == store.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "store not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Customer.Name == "" || payload.Customer.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "customer name and phone are required"})
	}

	now := time.Now()
	if !st.IsOpenAt(now) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "store is closed"})
	}
	if payload.CEP != "" && !st.CanDeliverTo(payload.CEP) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "store does not deliver to this CEP"})
	}

	if st.MinimumOrderCents > 0 {
		var total int64
		for _, it := range payload.Items {
			total += it.UnitPriceCents * int64(it.Quantity)
		}
		if total < st.MinimumOrderCents {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "order is below the store minimum"})
		}
	}

	created, err := h.service.Create(st.ID, payload.Items, payload.Customer, payload.PaymentType)
	if err != nil {
		if err == ErrEmptyOrder {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if q := c.Query("status"); q != "" {
		orders, err := h.service.ListByStoreAndStatus(storeID, Status(q))
		if err != nil {
			if err == ErrInvalidStatus {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(orders)
	}

	orders, err := h.service.ListByStore(storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	ord, err := h.service.GetByID(id)
	if err != nil || ord.StoreID != storeID {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(ord)
}

type changeStatusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) changeStatus(c *fiber.Ctx) error {
	storeID, err := merchant.StoreIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid id"})
	}

	payload := new(changeStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.ChangeStatus(id, storeID, payload.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case ErrInvalidStatus, ErrInvalidTransition:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}
