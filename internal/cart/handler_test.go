package cart

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/comandareal/comanda-backend/internal/product"
)

func makeCartApp() *fiber.App {
	products := product.NewInMemoryRepository([]product.Product{burger, soda})

	stores := map[string]*InMemoryStore{}
	factory := func(sessionID string) Store {
		if _, ok := stores[sessionID]; !ok {
			stores[sessionID] = NewInMemoryStore()
		}
		return stores[sessionID]
	}

	app := fiber.New()
	NewHandler(NewService(factory, product.NewService(products))).RegisterPublicRoutes(app)
	return app
}

func TestCartRoutes_RequireSession(t *testing.T) {
	app := makeCartApp()

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/cart", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without X-Session-ID, got %d", res.StatusCode)
	}

	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without X-Session-ID, got %d", res.StatusCode)
	}
}

func TestCartRoutes_Flow(t *testing.T) {
	app := makeCartApp()

	addBurger := func() {
		req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":1}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-ID", "sess-1")
		res, _ := app.Test(req)
		if res.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200 adding item, got %d", res.StatusCode)
		}
	}
	addBurger()
	addBurger()

	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 reading cart, got %d", res.StatusCode)
	}

	var out cartResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Lines) != 1 || out.Lines[0].Quantity != 2 {
		t.Fatalf("expected one merged line with quantity 2, got %+v", out.Lines)
	}
	if out.TotalCents != 2400 || out.ItemCount != 2 {
		t.Fatalf("expected total 2400 / count 2, got %d / %d", out.TotalCents, out.ItemCount)
	}

	// other sessions start empty
	req = httptest.NewRequest("GET", "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", "sess-2")
	res, _ = app.Test(req)
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Lines) != 0 {
		t.Fatalf("expected empty cart for new session, got %+v", out.Lines)
	}

	req = httptest.NewRequest("DELETE", "/api/v1/cart/items/1", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 removing item, got %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Lines) != 0 {
		t.Fatalf("expected empty cart after removal, got %+v", out.Lines)
	}

	req = httptest.NewRequest("DELETE", "/api/v1/cart", nil)
	req.Header.Set("X-Session-ID", "sess-1")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204 clearing cart, got %d", res.StatusCode)
	}
}

func TestCartRoutes_UnknownProduct(t *testing.T) {
	app := makeCartApp()

	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":99}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "sess-1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res.StatusCode)
	}
}
