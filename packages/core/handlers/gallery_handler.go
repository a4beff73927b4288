package handlers

import (
	"core/models"
	"core/services"
	"core/storage"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GalleryHandler struct {
	mediaService *services.MediaService
	db           *gorm.DB
}

func NewGalleryHandler(db *gorm.DB, store storage.ObjectStore) *GalleryHandler {
	return &GalleryHandler{
		mediaService: services.NewMediaService(db, store),
		db:           db,
	}
}

// GetGallery lists gallery images
// @Summary List gallery images
// @Description List gallery images in display order
// @Tags gallery
// @Produce json
// @Success 200 {array} models.GalleryImage
// @Failure 500 {object} map[string]string
// @Router /gallery [get]
func (h *GalleryHandler) GetGallery(c *gin.Context) {
	images, err := h.mediaService.ListGallery()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, images)
}

// UploadImage adds a gallery image
// @Summary Upload gallery image
// @Description Upload an image file with optional caption and order (admin only)
// @Tags gallery
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param caption formData string false "Caption"
// @Param order_index formData int false "Display order"
// @Success 201 {object} models.GalleryImage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/gallery [post]
func (h *GalleryHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded file"})
		return
	}
	defer file.Close()

	var caption *string
	if v := c.PostForm("caption"); v != "" {
		caption = &v
	}

	orderIndex := 0
	if v := c.PostForm("order_index"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			orderIndex = n
		}
	}

	image, err := h.mediaService.AddGalleryImage(
		fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"), caption, orderIndex)
	if err != nil {
		if errors.Is(err, services.ErrUploadFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, image)
}

// UpdateImage updates a gallery image's metadata
// @Summary Update gallery image
// @Description Update the caption or display order of an image (admin only)
// @Tags gallery
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param image body models.UpdateGalleryImageRequest true "Image update data"
// @Success 200 {object} models.GalleryImage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/gallery/{id} [patch]
func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	var req models.UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.mediaService.UpdateGalleryImage(uint(id), req)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, image)
}

// DeleteImage deletes a gallery image
// @Summary Delete gallery image
// @Description Delete an image and its stored file (admin only)
// @Tags gallery
// @Security BearerAuth
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/gallery/{id} [delete]
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	if err := h.mediaService.DeleteGalleryImage(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrImageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrStorageDelete):
			// Row is gone; report the stranded file rather than a failure
			c.JSON(http.StatusOK, gin.H{"message": "Image deleted, but the stored file could not be removed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
