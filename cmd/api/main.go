package main

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/comandareal/comanda-backend/internal/address"
	"github.com/comandareal/comanda-backend/internal/cart"
	"github.com/comandareal/comanda-backend/internal/category"
	"github.com/comandareal/comanda-backend/internal/config"
	"github.com/comandareal/comanda-backend/internal/merchant"
	"github.com/comandareal/comanda-backend/internal/metrics"
	"github.com/comandareal/comanda-backend/internal/order"
	"github.com/comandareal/comanda-backend/internal/product"
	"github.com/comandareal/comanda-backend/internal/report"
	"github.com/comandareal/comanda-backend/internal/store"
)

func main() {
	_ = godotenv.Load()
	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		logrus.Fatal("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()
	ensureSchema(db)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Session-ID",
	}))

	storeService := store.NewService(store.NewPostgresRepository(db))
	storeHandler := store.NewHandler(storeService)

	merchantService := merchant.NewService(merchant.NewPostgresRepository(db), storeCreator{storeService})
	merchantHandler := merchant.NewHandler(merchantService)

	productService := product.NewService(product.NewPostgresRepository(db))
	productHandler := product.NewHandler(productService)

	categoryService := category.NewService(category.NewPostgresRepository(db))
	categoryHandler := category.NewHandler(categoryService)

	cartService := cart.NewService(func(sessionID string) cart.Store {
		return cart.NewPostgresStore(db, sessionID)
	}, productService)
	cartHandler := cart.NewHandler(cartService)

	orderService := order.NewService(order.NewPostgresRepository(db), productService)
	orderHandler := order.NewHandler(orderService, storeService)

	reportHandler := report.NewHandler(report.NewService(report.NewPostgresRepository(db)))

	addressHandler := address.NewHandler(address.NewClient(cfg.ViaCEPBaseURL))

	// public surface: storefront, checkout, auth
	merchantHandler.RegisterPublicRoutes(app)
	storeHandler.RegisterPublicRoutes(app)
	productHandler.RegisterPublicRoutes(app)
	categoryHandler.RegisterPublicRoutes(app)
	cartHandler.RegisterPublicRoutes(app)
	orderHandler.RegisterPublicRoutes(app)
	addressHandler.RegisterPublicRoutes(app)

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	// everything below requires the merchant JWT
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	merchantHandler.RegisterProtectedRoutes(app)
	storeHandler.RegisterProtectedRoutes(app)
	productHandler.RegisterProtectedRoutes(app)
	categoryHandler.RegisterProtectedRoutes(app)
	orderHandler.RegisterProtectedRoutes(app)
	reportHandler.RegisterProtectedRoutes(app)

	logrus.WithField("addr", cfg.Addr).Info("starting server")
	if err := app.Listen(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

// storeCreator adapts the store service to the narrow interface the
// merchant registration flow needs.
type storeCreator struct {
	service *store.Service
}

func (a storeCreator) CreateStore(name string) (int, error) {
	st, err := a.service.Create(store.Store{Name: name})
	if err != nil {
		return 0, err
	}
	return st.ID, nil
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		logrus.WithError(err).Fatal("could not open database")
	}
	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("could not reach database")
	}
	return db
}

func ensureSchema(db *sql.DB) {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS stores (
            "storeID" SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            slug TEXT UNIQUE NOT NULL,
            status TEXT NOT NULL DEFAULT 'active',
            whatsapp TEXT NOT NULL DEFAULT '',
            "photoUrl" TEXT NOT NULL DEFAULT '',
            instagram TEXT NOT NULL DEFAULT '',
            address jsonb NOT NULL DEFAULT '{}',
            "paymentMethods" jsonb NOT NULL DEFAULT '{}',
            "acceptsDelivery" BOOLEAN NOT NULL DEFAULT false,
            "deliveryFeeCents" BIGINT NOT NULL DEFAULT 0,
            "minimumOrderCents" BIGINT NOT NULL DEFAULT 0,
            "servedPostalCodes" TEXT[] NOT NULL DEFAULT '{}',
            "weeklySchedule" jsonb,
            "intervalSchedule" jsonb,
            "createdAt" TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS merchants (
            "merchantID" SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password TEXT NOT NULL,
            name TEXT NOT NULL DEFAULT '',
            "storeID" INT NOT NULL,
            "createdAt" TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS categories (
            "categoryID" SERIAL PRIMARY KEY,
            "storeID" INT NOT NULL,
            name TEXT NOT NULL,
            position INT NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            "productID" SERIAL PRIMARY KEY,
            "storeID" INT NOT NULL,
            "categoryID" INT NOT NULL DEFAULT 0,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            "priceCents" BIGINT NOT NULL,
            "imageUrl" TEXT NOT NULL DEFAULT '',
            sales INT NOT NULL DEFAULT 0,
            status TEXT NOT NULL DEFAULT 'active',
            type TEXT NOT NULL DEFAULT 'main',
            "createdAt" TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            "orderID" SERIAL PRIMARY KEY,
            "storeID" INT NOT NULL,
            number BIGINT NOT NULL,
            status TEXT NOT NULL,
            items jsonb NOT NULL DEFAULT '[]',
            "totalCents" BIGINT NOT NULL DEFAULT 0,
            "customerName" TEXT NOT NULL,
            "customerPhone" TEXT NOT NULL,
            "paymentType" TEXT NOT NULL DEFAULT 'cash',
            "createdAt" TIMESTAMPTZ NOT NULL,
            "preparationStartedAt" TIMESTAMPTZ,
            "dispatchStartedAt" TIMESTAMPTZ,
            "completedAt" TIMESTAMPTZ,
            "preparationSeconds" BIGINT,
            "dispatchSeconds" BIGINT
        )`,
		`CREATE TABLE IF NOT EXISTS carts (
            "sessionID" TEXT PRIMARY KEY,
            lines jsonb NOT NULL DEFAULT '[]',
            "updatedAt" TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			logrus.WithError(err).Fatal("schema bootstrap failed")
		}
	}
}
