package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-sitecms/internal/identity"
)

// NewDocumentRecordRepository builds the generic repository for document rows,
// addressed by key.
func NewDocumentRecordRepository(db *bun.DB) repository.Repository[*DocumentRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*DocumentRecord]{
		NewRecord: func() *DocumentRecord { return &DocumentRecord{} },
		GetID: func(rec *DocumentRecord) uuid.UUID {
			return rec.ID
		},
		SetID: func(rec *DocumentRecord, id uuid.UUID) {
			rec.ID = id
		},
		GetIdentifier: func() string {
			return "key"
		},
		GetIdentifierValue: func(rec *DocumentRecord) string {
			return rec.Key
		},
	})
}

// BunRepository stores documents in the content_documents table.
type BunRepository struct {
	repo repository.Repository[*DocumentRecord]
	now  func() time.Time
}

// NewBunRepository creates a repository without caching.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache wraps reads in go-repository-cache when both the
// cache service and key serializer are provided.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunRepository {
	base := NewDocumentRecordRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunRepository{
		repo: base,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *BunRepository) Get(ctx context.Context, key string) (*Document, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	rec, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return nil, mapRepositoryError(err, key)
	}
	return rec.toDocument(), nil
}

func (r *BunRepository) List(ctx context.Context) ([]*Document, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.key ASC")
	}))
	if err != nil {
		return nil, fmt.Errorf("content repository error: %w", err)
	}
	out := make([]*Document, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toDocument())
	}
	return out, nil
}

func (r *BunRepository) Put(ctx context.Context, key string, value json.RawMessage) (*Document, bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, false, err
	}
	value, err = normalizeValue(value)
	if err != nil {
		return nil, false, err
	}
	now := r.now()

	existing, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		if !errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
			return nil, false, mapRepositoryError(err, key)
		}
		created, err := r.repo.Create(ctx, &DocumentRecord{
			ID:        identity.DocumentUUID(key),
			Key:       key,
			Value:     string(value),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, false, fmt.Errorf("content repository error: %w", err)
		}
		return created.toDocument(), true, nil
	}

	existing.Value = string(value)
	existing.UpdatedAt = now
	updated, err := r.repo.Update(ctx, existing,
		repository.UpdateByID(existing.ID.String()),
		repository.UpdateColumns("value", "updated_at"),
	)
	if err != nil {
		return nil, false, fmt.Errorf("content repository error: %w", err)
	}
	return updated.toDocument(), false, nil
}

func (r *BunRepository) Delete(ctx context.Context, key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	rec, err := r.repo.GetByIdentifier(ctx, key)
	if err != nil {
		return mapRepositoryError(err, key)
	}
	return r.repo.Delete(ctx, rec)
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("content repository error: %w", err)
}
