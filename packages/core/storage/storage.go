package storage

import (
	"fmt"
	"io"
	"os"

	storage_go "github.com/supabase-community/storage-go"
)

// ObjectStore is the object-storage surface the media handlers need:
// upload a file, resolve its public URL, remove it by path.
type ObjectStore interface {
	Upload(path string, data io.Reader, contentType string) error
	PublicURL(path string) string
	Remove(path string) error
}

// SupabaseStore backs ObjectStore with a Supabase storage bucket
type SupabaseStore struct {
	client *storage_go.Client
	bucket string
}

// NewSupabaseStore builds the store from SUPABASE_URL, SUPABASE_SERVICE_KEY
// and STORAGE_BUCKET (default "gallery")
func NewSupabaseStore() (*SupabaseStore, error) {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_SERVICE_KEY")
	if url == "" || key == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY are required")
	}

	bucket := os.Getenv("STORAGE_BUCKET")
	if bucket == "" {
		bucket = "gallery"
	}

	return &SupabaseStore{
		client: storage_go.NewClient(url+"/storage/v1", key, nil),
		bucket: bucket,
	}, nil
}

// DisabledStore rejects every operation. It stands in when storage
// credentials are not configured so the rest of the API still serves.
type DisabledStore struct{}

func (DisabledStore) Upload(path string, data io.Reader, contentType string) error {
	return fmt.Errorf("object storage is not configured")
}

func (DisabledStore) PublicURL(path string) string {
	return ""
}

func (DisabledStore) Remove(path string) error {
	return fmt.Errorf("object storage is not configured")
}

func (s *SupabaseStore) Upload(path string, data io.Reader, contentType string) error {
	_, err := s.client.UploadFile(s.bucket, path, data, storage_go.FileOptions{
		ContentType: &contentType,
	})
	return err
}

func (s *SupabaseStore) PublicURL(path string) string {
	return s.client.GetPublicUrl(s.bucket, path).SignedURL
}

func (s *SupabaseStore) Remove(path string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{path})
	return err
}
