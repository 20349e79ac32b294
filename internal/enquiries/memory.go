package enquiries

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps enquiries in process.
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]*Enquiry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[uuid.UUID]*Enquiry)}
}

func (r *MemoryRepository) Create(_ context.Context, enquiry *Enquiry) (*Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row := *enquiry
	r.rows[row.ID] = &row
	out := row
	return &out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id uuid.UUID) (*Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	out := *row
	return &out, nil
}

func (r *MemoryRepository) List(_ context.Context, filter Filter) ([]*Enquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name := strings.ToLower(strings.TrimSpace(filter.Name))
	email := strings.ToLower(strings.TrimSpace(filter.Email))

	var out []*Enquiry
	for _, row := range r.rows {
		if name != "" && !strings.Contains(strings.ToLower(row.Name), name) {
			continue
		}
		if email != "" && !strings.Contains(strings.ToLower(row.Email), email) {
			continue
		}
		if filter.Checked != nil && row.Checked != *filter.Checked {
			continue
		}
		if filter.From != nil && row.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && row.CreatedAt.After(*filter.To) {
			continue
		}
		copyRow := *row
		out = append(out, &copyRow)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, enquiry *Enquiry) (*Enquiry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[enquiry.ID]
	if !ok {
		return nil, &NotFoundError{ID: enquiry.ID}
	}
	row.Checked = enquiry.Checked
	row.UpdatedAt = enquiry.UpdatedAt
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
