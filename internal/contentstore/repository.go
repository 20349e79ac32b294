package contentstore

import (
	"context"
	"encoding/json"
)

// Repository persists documents by key. Put is a full upsert; callers merge.
type Repository interface {
	Get(ctx context.Context, key string) (*Document, error)
	List(ctx context.Context) ([]*Document, error)
	Put(ctx context.Context, key string, value json.RawMessage) (*Document, bool, error)
	Delete(ctx context.Context, key string) error
}
