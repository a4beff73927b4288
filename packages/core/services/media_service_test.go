package services

import (
	"errors"
	"io"
	"strings"
	"testing"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records uploads in memory and can be told to fail
type fakeStore struct {
	objects    map[string][]byte
	failUpload bool
	failRemove bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (f *fakeStore) Upload(path string, data io.Reader, contentType string) error {
	if f.failUpload {
		return errors.New("upstream rejected the file")
	}
	content, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	f.objects[path] = content
	return nil
}

func (f *fakeStore) PublicURL(path string) string {
	return "https://cdn.test/" + path
}

func (f *fakeStore) Remove(path string) error {
	if f.failRemove {
		return errors.New("upstream unavailable")
	}
	delete(f.objects, path)
	return nil
}

func TestAddGalleryImage(t *testing.T) {
	store := newFakeStore()
	svc := NewMediaService(setupTestDB(t), store)

	caption := "Final table"
	image, err := svc.AddGalleryImage("final.jpg", strings.NewReader("jpegdata"), "image/jpeg", &caption, 2)
	require.NoError(t, err)

	assert.NotZero(t, image.ID)
	assert.Contains(t, image.ImageURL, "https://cdn.test/gallery/")
	assert.Len(t, store.objects, 1)

	images, err := svc.ListGallery()
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "Final table", *images[0].Caption)
}

func TestAddGalleryImage_UploadFailure(t *testing.T) {
	store := newFakeStore()
	store.failUpload = true
	svc := NewMediaService(setupTestDB(t), store)

	_, err := svc.AddGalleryImage("final.jpg", strings.NewReader("jpegdata"), "image/jpeg", nil, 0)
	assert.ErrorIs(t, err, ErrUploadFailed)

	images, err := svc.ListGallery()
	require.NoError(t, err)
	assert.Empty(t, images, "no row should exist after a failed upload")
}

func TestDeleteGalleryImage_RemovesObject(t *testing.T) {
	store := newFakeStore()
	svc := NewMediaService(setupTestDB(t), store)

	image, err := svc.AddGalleryImage("final.jpg", strings.NewReader("jpegdata"), "image/jpeg", nil, 0)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGalleryImage(image.ID))
	assert.Empty(t, store.objects)

	assert.ErrorIs(t, svc.DeleteGalleryImage(image.ID), ErrImageNotFound)
}

func TestDeleteGalleryImage_StorageFailureStillDeletesRow(t *testing.T) {
	store := newFakeStore()
	svc := NewMediaService(setupTestDB(t), store)

	image, err := svc.AddGalleryImage("final.jpg", strings.NewReader("jpegdata"), "image/jpeg", nil, 0)
	require.NoError(t, err)

	store.failRemove = true
	err = svc.DeleteGalleryImage(image.ID)
	assert.ErrorIs(t, err, ErrStorageDelete)

	images, err := svc.ListGallery()
	require.NoError(t, err)
	assert.Empty(t, images, "the row must be gone even when the file removal failed")
}

func TestSlideshowActiveFilter(t *testing.T) {
	store := newFakeStore()
	svc := NewMediaService(setupTestDB(t), store)

	tagline := "Play where champions play"
	slide, err := svc.AddSlide("hero.jpg", strings.NewReader("jpegdata"), "image/jpeg", &tagline, 0)
	require.NoError(t, err)
	assert.True(t, slide.Active, "new slides start active")

	_, err = svc.AddSlide("second.jpg", strings.NewReader("jpegdata"), "image/jpeg", nil, 1)
	require.NoError(t, err)

	inactive := false
	_, err = svc.UpdateSlide(slide.ID, models.UpdateSlideshowImageRequest{Active: &inactive})
	require.NoError(t, err)

	public, err := svc.ListSlides()
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := svc.ListAllSlides()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGalleryOrdering(t *testing.T) {
	store := newFakeStore()
	svc := NewMediaService(setupTestDB(t), store)

	_, err := svc.AddGalleryImage("b.jpg", strings.NewReader("b"), "image/jpeg", nil, 5)
	require.NoError(t, err)
	_, err = svc.AddGalleryImage("a.jpg", strings.NewReader("a"), "image/jpeg", nil, 1)
	require.NoError(t, err)

	images, err := svc.ListGallery()
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, 1, images[0].OrderIndex)
	assert.Equal(t, 5, images[1].OrderIndex)
}
