package enquiries

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists enquiries.
type Repository interface {
	Create(ctx context.Context, enquiry *Enquiry) (*Enquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*Enquiry, error)
	// List returns matching enquiries, newest first.
	List(ctx context.Context, filter Filter) ([]*Enquiry, error)
	Update(ctx context.Context, enquiry *Enquiry) (*Enquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
