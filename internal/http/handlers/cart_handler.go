package handlers

import (
	"strconv"

	applog "stylebay/internal/log"
	"stylebay/internal/services"
	"stylebay/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

type cartItemRequest struct {
	ItemID int64 `json:"itemId"`
}

func userID(c *fiber.Ctx) string {
	uid, _ := c.Locals("userID").(string)
	return uid
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !validate.ProductID(req.ItemID) {
		return failJSON(c, fiber.StatusBadRequest, "A valid itemId is required")
	}
	if err := h.Cart.Add(userID(c), strconv.FormatInt(req.ItemID, 10)); err != nil {
		applog.Error(c, "cart.add.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	applog.Info(c, "cart.add", map[string]any{"item": req.ItemID})
	return c.SendString("Added")
}

// Remove answers "Removed" whether or not the quantity changed; the
// decrement itself never goes below zero.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !validate.ProductID(req.ItemID) {
		return failJSON(c, fiber.StatusBadRequest, "A valid itemId is required")
	}
	if err := h.Cart.Remove(userID(c), strconv.FormatInt(req.ItemID, 10)); err != nil {
		applog.Error(c, "cart.remove.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	applog.Info(c, "cart.remove", map[string]any{"item": req.ItemID})
	return c.SendString("Removed")
}

func (h *CartHandler) Get(c *fiber.Ctx) error {
	cart, err := h.Cart.Get(userID(c))
	if err != nil {
		applog.Error(c, "cart.get.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(cart)
}
