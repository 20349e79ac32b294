package media

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	// ErrFileRequired is returned when an upload carries no body.
	ErrFileRequired = errors.New("media: image file is required")
	// ErrImageIDRequired is returned for operations addressed by an empty id.
	ErrImageIDRequired = errors.New("media: image id required")
	// ErrUnsupportedType rejects uploads that are not images.
	ErrUnsupportedType = errors.New("media: only image uploads are accepted")
)

// Image records an uploaded image and the blob handle that backs it.
type Image struct {
	bun.BaseModel `bun:"table:images,alias:img" json:"-"`

	ID            uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ImageURL      string    `bun:"image_url,notnull" json:"imageUrl"`
	ImagePublicID string    `bun:"image_public_id,notnull,unique" json:"imagePublicId"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// NotFoundError is returned when an image record does not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("media: image %s not found", e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Repository persists image records.
type Repository interface {
	Create(ctx context.Context, image *Image) (*Image, error)
	Get(ctx context.Context, id uuid.UUID) (*Image, error)
	List(ctx context.Context) ([]*Image, error)
	Update(ctx context.Context, image *Image) (*Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
