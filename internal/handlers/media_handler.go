package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/avoronin/postline/backend/internal/models"
	"github.com/avoronin/postline/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// maxImageSize caps uploads at 10 MiB.
const maxImageSize = 10 << 20

// MediaHandler handles image upload and serving
type MediaHandler struct {
	mediaRepository repositories.MediaRepository
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaRepo repositories.MediaRepository) *MediaHandler {
	return &MediaHandler{mediaRepository: mediaRepo}
}

// RegisterMediaRoutes registers media-related routes. Serving is public,
// uploading requires authentication.
func (h *MediaHandler) RegisterMediaRoutes(public, protected *echo.Group) {
	public.GET("/media/:id", h.GetImage)
	protected.POST("/media", h.UploadImage)
}

// UploadImage stores a multipart image and returns its ID for use in a post
func (h *MediaHandler) UploadImage(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing 'image' file field")
	}
	if fileHeader.Size > maxImageSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Image exceeds the 10 MiB limit")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return echo.NewHTTPError(http.StatusBadRequest, "Only image uploads are accepted")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	image := &models.Image{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	}

	if err := h.mediaRepository.SaveImage(c.Request().Context(), image); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"data":    echo.Map{"image_id": image.ID.Hex()},
	})
}

// GetImage serves a stored image's bytes with its original content type
func (h *MediaHandler) GetImage(c echo.Context) error {
	image, err := h.mediaRepository.GetImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Image not found")
	}

	return c.Blob(http.StatusOK, image.ContentType, image.Data)
}
