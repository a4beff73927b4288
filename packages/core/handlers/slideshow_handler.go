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

type SlideshowHandler struct {
	mediaService *services.MediaService
	db           *gorm.DB
}

func NewSlideshowHandler(db *gorm.DB, store storage.ObjectStore) *SlideshowHandler {
	return &SlideshowHandler{
		mediaService: services.NewMediaService(db, store),
		db:           db,
	}
}

// GetSlides lists active slideshow images
// @Summary List slideshow images
// @Description List active slides in display order for the landing page
// @Tags slideshow
// @Produce json
// @Success 200 {array} models.SlideshowImage
// @Failure 500 {object} map[string]string
// @Router /slideshow [get]
func (h *SlideshowHandler) GetSlides(c *gin.Context) {
	slides, err := h.mediaService.ListSlides()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, slides)
}

// GetAllSlides lists every slide
// @Summary List all slides
// @Description List all slides, inactive ones included (admin only)
// @Tags slideshow
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.SlideshowImage
// @Failure 401 {object} map[string]string
// @Router /admin/slideshow [get]
func (h *SlideshowHandler) GetAllSlides(c *gin.Context) {
	slides, err := h.mediaService.ListAllSlides()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, slides)
}

// UploadSlide adds a slideshow image
// @Summary Upload slide
// @Description Upload a slide image with optional tagline and order (admin only)
// @Tags slideshow
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param tagline formData string false "Tagline overlay text"
// @Param order_index formData int false "Display order"
// @Success 201 {object} models.SlideshowImage
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /admin/slideshow [post]
func (h *SlideshowHandler) UploadSlide(c *gin.Context) {
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

	var tagline *string
	if v := c.PostForm("tagline"); v != "" {
		tagline = &v
	}

	orderIndex := 0
	if v := c.PostForm("order_index"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			orderIndex = n
		}
	}

	slide, err := h.mediaService.AddSlide(
		fileHeader.Filename, file, fileHeader.Header.Get("Content-Type"), tagline, orderIndex)
	if err != nil {
		if errors.Is(err, services.ErrUploadFailed) {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, slide)
}

// UpdateSlide updates a slide's metadata
// @Summary Update slide
// @Description Update the tagline, order or active flag of a slide (admin only)
// @Tags slideshow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Slide ID"
// @Param slide body models.UpdateSlideshowImageRequest true "Slide update data"
// @Success 200 {object} models.SlideshowImage
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/slideshow/{id} [patch]
func (h *SlideshowHandler) UpdateSlide(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide ID"})
		return
	}

	var req models.UpdateSlideshowImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slide, err := h.mediaService.UpdateSlide(uint(id), req)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, slide)
}

// DeleteSlide deletes a slide
// @Summary Delete slide
// @Description Delete a slide and its stored file (admin only)
// @Tags slideshow
// @Security BearerAuth
// @Produce json
// @Param id path int true "Slide ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/slideshow/{id} [delete]
func (h *SlideshowHandler) DeleteSlide(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slide ID"})
		return
	}

	if err := h.mediaService.DeleteSlide(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrImageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrStorageDelete):
			c.JSON(http.StatusOK, gin.H{"message": "Slide deleted, but the stored file could not be removed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slide deleted successfully"})
}
