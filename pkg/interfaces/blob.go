package interfaces

import (
	"context"
	"io"
)

// BlobUpload describes a binary object handed to a BlobStore.
type BlobUpload struct {
	Folder      string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// BlobObject identifies a stored object. PublicID is the handle used to delete
// it later; URL is the address rendered to visitors.
type BlobObject struct {
	PublicID string
	URL      string
	Size     int64
}

// BlobStore persists uploaded images outside the database.
type BlobStore interface {
	Upload(ctx context.Context, upload BlobUpload) (BlobObject, error)
	Delete(ctx context.Context, publicID string) error
}
