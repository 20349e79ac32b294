package contentstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	// ErrKeyRequired is returned when a document key is blank.
	ErrKeyRequired = errors.New("contentstore: key is required")
	// ErrInvalidValue is returned when a document value is not valid JSON.
	ErrInvalidValue = errors.New("contentstore: value must be valid JSON")
)

// Document is one keyed JSON value, e.g. "page-home" or "hero".
type Document struct {
	ID        uuid.UUID       `json:"id"`
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// IsEmpty reports whether the document carries no usable value.
func (d *Document) IsEmpty() bool {
	if d == nil {
		return true
	}
	trimmed := bytes.TrimSpace(d.Value)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Decode unmarshals the document value into target.
func (d *Document) Decode(target any) error {
	if d.IsEmpty() {
		return nil
	}
	if err := json.Unmarshal(d.Value, target); err != nil {
		return fmt.Errorf("contentstore: decode %q: %w", d.Key, err)
	}
	return nil
}

// NotFoundError reports a missing document.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("contentstore: document %q not found", e.Key)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// DocumentRecord is the persisted row. Values are stored as text so the same
// schema works for sqlite and postgres.
type DocumentRecord struct {
	bun.BaseModel `bun:"table:content_documents,alias:cd"`

	ID        uuid.UUID `bun:",pk,type:uuid"`
	Key       string    `bun:"key,notnull,unique"`
	Value     string    `bun:"value,type:text"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func (r *DocumentRecord) toDocument() *Document {
	if r == nil {
		return nil
	}
	return &Document{
		ID:        r.ID,
		Key:       r.Key,
		Value:     json.RawMessage(r.Value),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func normalizeKey(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", ErrKeyRequired
	}
	return trimmed, nil
}

func normalizeValue(value json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(trimmed) {
		return nil, ErrInvalidValue
	}
	return json.RawMessage(bytes.Clone(trimmed)), nil
}

func cloneDocument(doc *Document) *Document {
	if doc == nil {
		return nil
	}
	out := *doc
	out.Value = bytes.Clone(doc.Value)
	return &out
}
