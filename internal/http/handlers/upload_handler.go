package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	applog "stylebay/internal/log"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler stores product images on local disk and hands back the
// public URL the catalog will reference.
type UploadHandler struct {
	Dir     string
	BaseURL string
}

// Upload accepts a single multipart file under the field name "product".
// Files are named product_{unix-ms}{ext}; collisions beyond millisecond
// granularity are not handled.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("product")
	if err != nil {
		applog.Security(c, "upload.missing_file", nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": 0, "message": "No file uploaded",
		})
	}

	ext := filepath.Ext(filepath.Base(fh.Filename))
	if strings.ContainsAny(ext, `/\`) {
		ext = ""
	}
	name := fmt.Sprintf("product_%d%s", time.Now().UnixMilli(), ext)
	if err := c.SaveFile(fh, filepath.Join(h.Dir, name)); err != nil {
		applog.Error(c, "upload.save.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": 0, "message": "Failed to store file",
		})
	}

	applog.Audit(c, "upload.success", map[string]any{"file": name, "size": fh.Size})
	return c.JSON(fiber.Map{
		"success":   1,
		"image_url": fmt.Sprintf("%s/images/%s", h.BaseURL, name),
	})
}
