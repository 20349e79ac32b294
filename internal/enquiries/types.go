package enquiries

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Enquiry is a lead captured by the contact form.
type Enquiry struct {
	bun.BaseModel `bun:"table:enquiries,alias:enq" json:"-"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	Mobile    string    `bun:"mobile" json:"mobile"`
	Email     string    `bun:"email,notnull" json:"email"`
	Message   string    `bun:"message,type:text" json:"message"`
	Checked   bool      `bun:"checked,notnull,default:false" json:"checked"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// CreateInput is the public contact form payload.
type CreateInput struct {
	Name    string `json:"name"`
	Mobile  string `json:"mobile"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Filter narrows List. Name and Email match substrings ignoring case;
// From and To bound CreatedAt inclusively.
type Filter struct {
	Name    string
	Email   string
	Checked *bool
	From    *time.Time
	To      *time.Time
}

var ErrEnquiryIDRequired = errors.New("enquiries: id required")

// NotFoundError is returned when an enquiry does not exist.
type NotFoundError struct {
	ID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("enquiries: enquiry %s not found", e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
