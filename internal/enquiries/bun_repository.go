package enquiries

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewEnquiryRepository builds the generic repository for enquiry rows.
func NewEnquiryRepository(db *bun.DB) repository.Repository[*Enquiry] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Enquiry]{
		NewRecord: func() *Enquiry { return &Enquiry{} },
		GetID: func(rec *Enquiry) uuid.UUID {
			return rec.ID
		},
		SetID: func(rec *Enquiry, id uuid.UUID) {
			rec.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(rec *Enquiry) string {
			return rec.ID.String()
		},
	})
}

// BunRepository stores enquiries in the enquiries table.
type BunRepository struct {
	repo repository.Repository[*Enquiry]
}

func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{repo: NewEnquiryRepository(db)}
}

func (r *BunRepository) Create(ctx context.Context, enquiry *Enquiry) (*Enquiry, error) {
	rec, err := r.repo.Create(ctx, enquiry)
	if err != nil {
		return nil, fmt.Errorf("enquiry repository error: %w", err)
	}
	return rec, nil
}

func (r *BunRepository) Get(ctx context.Context, id uuid.UUID) (*Enquiry, error) {
	rec, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id)
	}
	return rec, nil
}

func (r *BunRepository) List(ctx context.Context, filter Filter) ([]*Enquiry, error) {
	records, _, err := r.repo.List(ctx, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		if name := strings.ToLower(strings.TrimSpace(filter.Name)); name != "" {
			q = q.Where("LOWER(?TableAlias.name) LIKE ?", "%"+name+"%")
		}
		if email := strings.ToLower(strings.TrimSpace(filter.Email)); email != "" {
			q = q.Where("LOWER(?TableAlias.email) LIKE ?", "%"+email+"%")
		}
		if filter.Checked != nil {
			q = q.Where("?TableAlias.checked = ?", *filter.Checked)
		}
		if filter.From != nil {
			q = q.Where("?TableAlias.created_at >= ?", *filter.From)
		}
		if filter.To != nil {
			q = q.Where("?TableAlias.created_at <= ?", *filter.To)
		}
		return q.OrderExpr("?TableAlias.created_at DESC")
	}))
	if err != nil {
		return nil, fmt.Errorf("enquiry repository error: %w", err)
	}
	return records, nil
}

func (r *BunRepository) Update(ctx context.Context, enquiry *Enquiry) (*Enquiry, error) {
	rec, err := r.repo.Update(ctx, enquiry,
		repository.UpdateByID(enquiry.ID.String()),
		repository.UpdateColumns("checked", "updated_at"),
	)
	if err != nil {
		return nil, mapRepositoryError(err, enquiry.ID)
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
	return fmt.Errorf("enquiry repository error: %w", err)
}
