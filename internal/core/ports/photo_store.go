// internal/core/ports/photo_store.go
package ports

import (
	"context"
	"io"
)

// PhotoStore holds buy-back listing photos. Implemented by the S3 adapter.
type PhotoStore interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
