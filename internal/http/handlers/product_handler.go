package handlers

import (
	applog "stylebay/internal/log"
	"stylebay/internal/services"
	"stylebay/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

type addProductRequest struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

type removeProductRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var req addProductRequest
	if err := c.BodyParser(&req); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Name == "" || req.Image == "" || req.Category == "" {
		return failJSON(c, fiber.StatusBadRequest, "name, image and category are required")
	}

	p, err := h.Catalog.AddProduct(req.Name, req.Image, req.Category, req.NewPrice, req.OldPrice)
	if err != nil {
		applog.Error(c, "catalog.add.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to add product",
		})
	}
	applog.Audit(c, "catalog.add.success", map[string]any{"id": p.ID, "name": p.Name})
	return c.JSON(fiber.Map{"success": true, "name": req.Name})
}

// Remove deletes by id and answers success either way; the storefront
// does not distinguish not-found. The echoed name is whatever the client
// sent, which may be empty.
func (h *ProductHandler) Remove(c *fiber.Ctx) error {
	var req removeProductRequest
	if err := c.BodyParser(&req); err != nil {
		return failJSON(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if !validate.ProductID(req.ID) {
		return failJSON(c, fiber.StatusBadRequest, "A valid id is required")
	}
	if err := h.Catalog.RemoveProduct(req.ID); err != nil {
		applog.Error(c, "catalog.remove.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	applog.Audit(c, "catalog.remove", map[string]any{"id": req.ID})
	return c.JSON(fiber.Map{"success": true, "name": req.Name})
}

func (h *ProductHandler) All(c *fiber.Ctx) error {
	products, err := h.Catalog.All()
	if err != nil {
		applog.Error(c, "catalog.list.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(products)
}

func (h *ProductHandler) NewCollections(c *fiber.Ctx) error {
	products, err := h.Catalog.NewCollections()
	if err != nil {
		applog.Error(c, "catalog.newcollections.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(products)
}

func (h *ProductHandler) PopularInWomen(c *fiber.Ctx) error {
	products, err := h.Catalog.PopularInWomen()
	if err != nil {
		applog.Error(c, "catalog.popularinwomen.error", err, nil)
		return failJSON(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return c.JSON(products)
}
