package storage

import (
	"context"
	"fmt"
	"io"

	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

// SupabaseStore writes receipts to a public Supabase Storage bucket.
type SupabaseStore struct {
	client *supabase.Client
	bucket string
}

// NewSupabaseStore creates a SupabaseStore for the given bucket.
func NewSupabaseStore(client *supabase.Client, bucket string) *SupabaseStore {
	return &SupabaseStore{client: client, bucket: bucket}
}

// Store uploads the file under a generated name and returns its public URL.
func (s *SupabaseStore) Store(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	objectName := ObjectName(name)
	upsert := false
	_, err := s.client.Storage.UploadFile(s.bucket, objectName, r, storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("upload %s/%s: %w", s.bucket, objectName, err)
	}

	public := s.client.Storage.GetPublicUrl(s.bucket, objectName)
	return public.SignedURL, nil
}
