package media

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewImageRepository builds the generic repository for image rows.
func NewImageRepository(db *bun.DB) repository.Repository[*Image] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Image]{
		NewRecord: func() *Image { return &Image{} },
		GetID: func(rec *Image) uuid.UUID {
			return rec.ID
		},
		SetID: func(rec *Image, id uuid.UUID) {
			rec.ID = id
		},
		GetIdentifier: func() string {
			return "image_public_id"
		},
		GetIdentifierValue: func(rec *Image) string {
			return rec.ImagePublicID
		},
	})
}

// BunRepository stores images in the images table.
type BunRepository struct {
	repo repository.Repository[*Image]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{repo: NewImageRepository(db)}
}

func (r *BunRepository) Create(ctx context.Context, image *Image) (*Image, error) {
	rec, err := r.repo.Create(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("image repository error: %w", err)
	}
	return rec, nil
}

func (r *BunRepository) Get(ctx context.Context, id uuid.UUID) (*Image, error) {
	rec, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id)
	}
	return rec, nil
}

func (r *BunRepository) List(ctx context.Context) ([]*Image, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.created_at DESC")
	}))
	if err != nil {
		return nil, fmt.Errorf("image repository error: %w", err)
	}
	return records, nil
}

func (r *BunRepository) Update(ctx context.Context, image *Image) (*Image, error) {
	rec, err := r.repo.Update(ctx, image,
		repository.UpdateByID(image.ID.String()),
		repository.UpdateColumns("image_url", "image_public_id", "updated_at"),
	)
	if err != nil {
		return nil, mapRepositoryError(err, image.ID)
	}
	return rec, nil
}

func (r *BunRepository) Delete(ctx context.Context, id uuid.UUID) error {
	rec, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return mapRepositoryError(err, id)
	}
	return r.repo.Delete(ctx, rec)
}

func mapRepositoryError(err error, id uuid.UUID) error {
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{ID: id}
	}
	return fmt.Errorf("image repository error: %w", err)
}

// MemoryRepository keeps image records in process.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*Image
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[uuid.UUID]*Image)}
}

func (r *MemoryRepository) Create(_ context.Context, image *Image) (*Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.ImagePublicID == image.ImagePublicID {
			return nil, fmt.Errorf("image repository error: duplicate public id %q", image.ImagePublicID)
		}
	}
	row := *image
	r.rows[row.ID] = &row
	out := row
	return &out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	out := *row
	return &out, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]*Image, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Image, 0, len(r.rows))
	for _, row := range r.rows {
		copyRow := *row
		out = append(out, &copyRow)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, image *Image) (*Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[image.ID]
	if !ok {
		return nil, &NotFoundError{ID: image.ID}
	}
	row.ImageURL = image.ImageURL
	row.ImagePublicID = image.ImagePublicID
	row.UpdatedAt = image.UpdatedAt
	out := *row
	return &out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(r.rows, id)
	return nil
}
