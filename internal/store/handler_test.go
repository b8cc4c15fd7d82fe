package store

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeStoreApp(seed []Store) *fiber.App {
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-Store-ID"); v != "" {
			claims := jwt.MapClaims{"store_id": v}
			c.Locals("user", &jwt.Token{Claims: claims})
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func alwaysOpenStore() Store {
	return Store{
		ID:                3,
		Name:              "Lanchonete Teste",
		Slug:              "lanchonete-teste",
		Status:            StatusActive,
		AcceptsDelivery:   true,
		ServedPostalCodes: []string{"36542000"},
		IntervalSchedule:  IntervalSchedule{{From: "00:00", To: "23:59"}},
	}
}

func TestGetStore_Public(t *testing.T) {
	app := makeStoreApp([]Store{alwaysOpenStore()})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/stores/lanchonete-teste", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var got Store
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Name != "Lanchonete Teste" {
		t.Fatalf("unexpected store %+v", got)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/stores/nope", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug, got %d", res.StatusCode)
	}
}

func TestGetAvailability(t *testing.T) {
	app := makeStoreApp([]Store{alwaysOpenStore()})

	decode := func(path string) map[string]any {
		res, _ := app.Test(httptest.NewRequest("GET", path, nil))
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, res.StatusCode)
		}
		var out map[string]any
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		return out
	}

	out := decode("/api/v1/stores/lanchonete-teste/availability")
	if out["open"] != true || out["canOrder"] != true {
		t.Fatalf("expected open without cep, got %v", out)
	}
	if _, ok := out["deliversTo"]; ok {
		t.Fatalf("expected no deliversTo without cep, got %v", out)
	}

	out = decode("/api/v1/stores/lanchonete-teste/availability?cep=36.542-000")
	if out["deliversTo"] != true || out["canOrder"] != true {
		t.Fatalf("expected served cep to allow ordering, got %v", out)
	}

	out = decode("/api/v1/stores/lanchonete-teste/availability?cep=30100000")
	if out["deliversTo"] != false || out["canOrder"] != false {
		t.Fatalf("expected unserved cep to block ordering, got %v", out)
	}
}

func TestOwnStore_Protected(t *testing.T) {
	app := makeStoreApp([]Store{alwaysOpenStore()})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/store", nil))
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/v1/store", nil)
	req.Header.Set("X-Store-ID", "3")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 reading own store, got %d", res.StatusCode)
	}

	var got Store
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("expected store 3, got %+v", got)
	}
}

func TestUpdateOwnStore(t *testing.T) {
	app := makeStoreApp([]Store{alwaysOpenStore()})

	body := `{"name": "Lanchonete Nova", "acceptsDelivery": false}`
	req := httptest.NewRequest("PUT", "/api/v1/store", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Store-ID", "3")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 updating store, got %d", res.StatusCode)
	}

	var got Store
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Name != "Lanchonete Nova" || got.AcceptsDelivery {
		t.Fatalf("unexpected updated store %+v", got)
	}

	req = httptest.NewRequest("PUT", "/api/v1/store", strings.NewReader(`{"name": ""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Store-ID", "3")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for empty name, got %d", res.StatusCode)
	}
}
