package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func cartReq(t *testing.T, app *fiber.App, path, token string, itemID int64) *http.Response {
	t.Helper()
	req := jsonReq(t, "POST", path, fiber.Map{"itemId": itemID})
	if token != "" {
		req.Header.Set("auth-token", token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func getCart(t *testing.T, app *fiber.App, token string) map[string]int {
	t.Helper()
	req := jsonReq(t, "POST", "/getcart", fiber.Map{})
	req.Header.Set("auth-token", token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("getcart status %d", resp.StatusCode)
	}
	out := map[string]int{}
	decodeJSON(t, resp, &out)
	return out
}

func TestCartFlow(t *testing.T) {
	app := newTestApp(t)
	tok, _ := signupReq(t, app, "Alice", "alice@stylebay.test", "Passw0rd!")

	resp := cartReq(t, app, "/addtocart", tok, 12)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("addtocart status %d", resp.StatusCode)
	}
	if got := bodyString(t, resp); got != "Added" {
		t.Fatalf("addtocart body %q", got)
	}
	if cart := getCart(t, app, tok); cart["12"] != 1 {
		t.Fatalf("want item 12 qty 1, got %v", cart)
	}

	resp = cartReq(t, app, "/removefromcart", tok, 12)
	if got := bodyString(t, resp); got != "Removed" {
		t.Fatalf("removefromcart body %q", got)
	}
	if cart := getCart(t, app, tok); len(cart) != 0 {
		t.Fatalf("cart not empty after removal: %v", cart)
	}

	// Removing past zero leaves the cart untouched and still answers 200.
	resp = cartReq(t, app, "/removefromcart", tok, 12)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("no-op remove status %d", resp.StatusCode)
	}
	if got := bodyString(t, resp); got != "Removed" {
		t.Fatalf("no-op remove body %q", got)
	}
	if cart := getCart(t, app, tok); len(cart) != 0 {
		t.Fatalf("no-op remove changed cart: %v", cart)
	}
}

func TestCartRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp := cartReq(t, app, "/addtocart", "", 12)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("missing token: status %d", resp.StatusCode)
	}
	var out struct {
		Errors string `json:"errors"`
	}
	decodeJSON(t, resp, &out)
	if out.Errors != "Please authenticate using valid token" {
		t.Fatalf("missing-token body: %+v", out)
	}

	resp = cartReq(t, app, "/addtocart", "garbage.token.here", 12)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("invalid token: status %d", resp.StatusCode)
	}
	decodeJSON(t, resp, &out)
	if out.Errors != "Please Authenticate using a Valid Token" {
		t.Fatalf("invalid-token body: %+v", out)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	app := newTestApp(t)
	tokA, _ := signupReq(t, app, "Alice", "alice@stylebay.test", "Passw0rd!")
	tokB, _ := signupReq(t, app, "Bob", "bob@stylebay.test", "Passw0rd!")

	cartReq(t, app, "/addtocart", tokA, 5)
	if cart := getCart(t, app, tokB); len(cart) != 0 {
		t.Fatalf("bob sees alice's cart: %v", cart)
	}
	if cart := getCart(t, app, tokA); cart["5"] != 1 {
		t.Fatalf("alice's cart wrong: %v", cart)
	}
}
