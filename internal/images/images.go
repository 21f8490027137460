// Package images persists uploaded recipe photos to publicly readable
// object storage.
package images

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// MaxUploadBytes is the largest accepted image payload. Larger uploads are
// rejected before any store write.
const MaxUploadBytes = 5 << 20

// pathPrefix is the namespace for uploaded recipe images in the bucket.
const pathPrefix = "recipe_images"

// ObjectPath returns a fresh object path for an upload by uid, embedding a
// random token so names never collide in practice.
func ObjectPath(uid string, originalName string) string {
	return fmt.Sprintf("%s/%s/%s-%s", pathPrefix, uid, uuid.NewString(), originalName)
}

// Store writes image bytes and returns a publicly fetchable URL.
type Store interface {
	// Save durably writes data at path with the given content type, makes
	// the object publicly readable, and returns its public URL. On failure
	// the object state is indeterminate; no cleanup is attempted.
	Save(ctx context.Context, path string, contentType string, data []byte) (string, error)
}

// GCS implements Store on a Cloud Storage bucket.
type GCS struct {
	storage *storage.Client
	bucket  string
}

var _ Store = (*GCS)(nil)

func NewGCS(storage *storage.Client, bucket string) *GCS {
	return &GCS{
		storage: storage,
		bucket:  bucket,
	}
}

func (g *GCS) Save(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	obj := g.storage.Bucket(g.bucket).Object(path)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("images: writing object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("images: closing writer: %w", err)
	}

	if err := obj.ACL().Set(ctx, storage.AllUsers, storage.RoleReader); err != nil {
		return "", fmt.Errorf("images: making object public: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucket, path), nil
}
