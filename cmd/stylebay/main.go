package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"stylebay/internal/config"
	"stylebay/internal/http/handlers"
	applog "stylebay/internal/log"
	"stylebay/internal/repos"
	"stylebay/internal/token"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// The upload directory must exist before the first multipart save.
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal(err)
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	tokens := &token.Issuer{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTExpiry,
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer generically; no internals leak to the client.
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false, "errors": "Internal Server Error",
			})
		},
	})
	// Body cap sized for product image uploads
	app.Server().MaxRequestBodySize = 10 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// The storefront is served from another origin
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/images/")
		},
	}))

	deps := handlers.NewDeps(db, cfg, tokens)

	// ---------- Routes ----------
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("StyleBay API is running")
	})

	// Images: upload plus guarded static serving
	app.Post("/upload", deps.UploadHandler.Upload)
	app.Get("/images/*", handlers.ImageServer(cfg.UploadDir))

	// Catalog
	app.Post("/addproduct", deps.ProductHandler.Add)
	app.Post("/removeproduct", deps.ProductHandler.Remove)
	app.Get("/allproducts", deps.ProductHandler.All)
	app.Get("/newcollections", deps.ProductHandler.NewCollections)
	app.Get("/popularinwomen", deps.ProductHandler.PopularInWomen)

	// Auth (login throttled)
	app.Post("/signup", deps.AuthHandler.Signup)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false, "errors": "Too many attempts. Please try again later.",
			})
		},
	}), deps.AuthHandler.Login)

	// Cart (token required)
	auth := handlers.RequireUser(tokens)
	app.Post("/addtocart", auth, deps.CartHandler.Add)
	app.Post("/removefromcart", auth, deps.CartHandler.Remove)
	app.Post("/getcart", auth, deps.CartHandler.Get)

	log.Fatal(app.Listen(":" + cfg.Port))
}
