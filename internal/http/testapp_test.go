package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"stylebay/internal/config"
	"stylebay/internal/http/handlers"
	applog "stylebay/internal/log"
	"stylebay/internal/repos"
	"stylebay/internal/token"
)

// newTestApp wires the real handlers over an in-memory store with the
// same route table main installs.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	tokens := &token.Issuer{Secret: []byte("test-secret")}
	cfg := config.Config{UploadDir: t.TempDir(), PublicBaseURL: "http://localhost:4000"}
	deps := handlers.NewDeps(db, cfg, tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false, "errors": "Internal Server Error",
			})
		},
	})
	app.Use(requestid.New())

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("StyleBay API is running") })
	app.Post("/upload", deps.UploadHandler.Upload)
	app.Get("/images/*", handlers.ImageServer(cfg.UploadDir))
	app.Post("/addproduct", deps.ProductHandler.Add)
	app.Post("/removeproduct", deps.ProductHandler.Remove)
	app.Get("/allproducts", deps.ProductHandler.All)
	app.Get("/newcollections", deps.ProductHandler.NewCollections)
	app.Get("/popularinwomen", deps.ProductHandler.PopularInWomen)
	app.Post("/signup", deps.AuthHandler.Signup)
	app.Post("/login", deps.AuthHandler.Login)

	auth := handlers.RequireUser(tokens)
	app.Post("/addtocart", auth, deps.CartHandler.Add)
	app.Post("/removefromcart", auth, deps.CartHandler.Remove)
	app.Post("/getcart", auth, deps.CartHandler.Get)
	return app
}

func jsonReq(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func bodyString(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
