package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/WaslIoT/wasl_api/internal/service"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

// maxUploadBytes caps catalog image uploads at 5 MiB.
const maxUploadBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadHandler accepts catalog image uploads from the admin console.
type UploadHandler struct {
	uploadService *service.UploadService
}

// NewUploadHandler constructs an UploadHandler.
func NewUploadHandler(uploadService *service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload handles POST /v1/admin/uploads. Multipart form with a "file" part
// and a "kind" field ("categories" or "products"); responds with the stored
// object's public URL for use as an image reference.
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := c.PostForm("kind")
	if kind != "categories" && kind != "products" {
		utils.Error(c, 400, "INVALID_KIND", "kind must be 'categories' or 'products'")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing file")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		utils.Error(c, 413, "FILE_TOO_LARGE", "Image exceeds the 5MB limit")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		utils.Error(c, 400, "INVALID_TYPE", "Only JPEG, PNG and WebP images are accepted")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read upload")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to read upload")
		return
	}

	url, err := h.uploadService.UploadCatalogImage(c.Request.Context(), kind, data, contentType)
	if err != nil {
		utils.Error(c, 502, "UPLOAD_FAILED", "Failed to store image")
		return
	}

	utils.Success(c, 201, "Image uploaded", gin.H{"url": url})
}
