package services

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"core/models"
	"core/storage"

	"gorm.io/gorm"
)

// Media operations are two-step (object store + database). These sentinels
// let handlers tell the user which half of the operation failed.
var (
	ErrUploadFailed  = errors.New("image upload failed")
	ErrStorageDelete = errors.New("stored file could not be removed")
	ErrImageNotFound = errors.New("image not found")
)

type MediaService struct {
	db    *gorm.DB
	store storage.ObjectStore
}

func NewMediaService(db *gorm.DB, store storage.ObjectStore) *MediaService {
	return &MediaService{
		db:    db,
		store: store,
	}
}

// objectPath builds a collision-free storage path for an uploaded file
func objectPath(prefix, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s/%d%s", prefix, time.Now().UnixNano(), ext)
}

// Gallery

func (s *MediaService) ListGallery() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := s.db.Order("order_index ASC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

// AddGalleryImage uploads the file first, then records the row. A failed
// insert rolls the uploaded object back so storage holds no orphans.
func (s *MediaService) AddGalleryImage(filename string, data io.Reader, contentType string, caption *string, orderIndex int) (*models.GalleryImage, error) {
	path := objectPath("gallery", filename)

	if err := s.store.Upload(path, data, contentType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	image := &models.GalleryImage{
		ImageURL:    s.store.PublicURL(path),
		StoragePath: path,
		Caption:     caption,
		OrderIndex:  orderIndex,
	}

	if err := s.db.Create(image).Error; err != nil {
		if removeErr := s.store.Remove(path); removeErr != nil {
			return nil, fmt.Errorf("%v (and %w: %v)", err, ErrStorageDelete, removeErr)
		}
		return nil, err
	}

	return image, nil
}

func (s *MediaService) UpdateGalleryImage(id uint, req models.UpdateGalleryImageRequest) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Caption != nil {
		updates["caption"] = *req.Caption
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}

	if len(updates) > 0 {
		if err := s.db.Model(&image).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &image, nil
}

// DeleteGalleryImage removes the row and its backing object
func (s *MediaService) DeleteGalleryImage(id uint) error {
	var image models.GalleryImage
	if err := s.db.First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}

	if err := s.db.Delete(&image).Error; err != nil {
		return err
	}

	if err := s.store.Remove(image.StoragePath); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageDelete, err)
	}

	return nil
}

// Slideshow

// ListSlides returns the active slides in display order (public site)
func (s *MediaService) ListSlides() ([]models.SlideshowImage, error) {
	var slides []models.SlideshowImage
	if err := s.db.Where("active = ?", true).
		Order("order_index ASC").
		Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

// ListAllSlides returns every slide for the admin panel
func (s *MediaService) ListAllSlides() ([]models.SlideshowImage, error) {
	var slides []models.SlideshowImage
	if err := s.db.Order("order_index ASC").Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

func (s *MediaService) AddSlide(filename string, data io.Reader, contentType string, tagline *string, orderIndex int) (*models.SlideshowImage, error) {
	path := objectPath("slideshow", filename)

	if err := s.store.Upload(path, data, contentType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	slide := &models.SlideshowImage{
		ImageURL:    s.store.PublicURL(path),
		StoragePath: path,
		Tagline:     tagline,
		OrderIndex:  orderIndex,
		Active:      true,
	}

	if err := s.db.Create(slide).Error; err != nil {
		if removeErr := s.store.Remove(path); removeErr != nil {
			return nil, fmt.Errorf("%v (and %w: %v)", err, ErrStorageDelete, removeErr)
		}
		return nil, err
	}

	return slide, nil
}

func (s *MediaService) UpdateSlide(id uint, req models.UpdateSlideshowImageRequest) (*models.SlideshowImage, error) {
	var slide models.SlideshowImage
	if err := s.db.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Tagline != nil {
		updates["tagline"] = *req.Tagline
	}
	if req.OrderIndex != nil {
		updates["order_index"] = *req.OrderIndex
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := s.db.Model(&slide).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &slide, nil
}

func (s *MediaService) DeleteSlide(id uint) error {
	var slide models.SlideshowImage
	if err := s.db.First(&slide, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}

	if err := s.db.Delete(&slide).Error; err != nil {
		return err
	}

	if err := s.store.Remove(slide.StoragePath); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageDelete, err)
	}

	return nil
}
