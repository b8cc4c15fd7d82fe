package merchant

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	StoreName string `json:"storeName"`
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/sign-in", h.login)
	app.Post("/api/v1/sign-up", h.register)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/profile", h.getProfile)
}

func (h *Handler) login(c *fiber.Ctx) error {
	payload := new(loginRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	m, err := h.service.Authenticate(payload.Email, payload.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"merchant_id": m.ID,
		"store_id":    m.StoreID,
		"email":       m.Email,
		"exp":         time.Now().Add(72 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to generate token"})
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"merchant": sanitize(m),
		"token":    signed,
	})
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	if payload.Email == "" || payload.Password == "" || payload.StoreName == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing required fields")
	}

	created, err := h.service.Register(Merchant{
		Email:     payload.Email,
		Password:  payload.Password,
		Name:      payload.Name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}, payload.StoreName)
	if err != nil {
		if err == ErrEmailExists {
			return c.Status(fiber.StatusConflict).SendString("Email already exists")
		}
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(sanitize(created))
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	merchantID, err := MerchantIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	m, err := h.service.GetByID(merchantID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "merchant not found"})
	}

	return c.JSON(sanitize(m))
}

func sanitize(m Merchant) Merchant {
	m.Password = ""
	return m
}

// MerchantIDFromCtx reads the merchant_id claim the JWT middleware stored
// on the request.
func MerchantIDFromCtx(c *fiber.Ctx) (int, error) {
	return claimFromCtx(c, "merchant_id")
}

// StoreIDFromCtx reads the store_id claim; every protected handler uses
// it to scope queries to the caller's store.
func StoreIDFromCtx(c *fiber.Ctx) (int, error) {
	return claimFromCtx(c, "store_id")
}

func claimFromCtx(c *fiber.Ctx, key string) (int, error) {
	u := c.Locals("user")
	if u == nil {
		return 0, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	raw, ok := claims[key]
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fiber.ErrUnauthorized
		}
		return id, nil
	default:
		return 0, fiber.ErrUnauthorized
	}
}
