package contentstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-sitecms/internal/identity"
)

// MemoryRepository keeps documents in process. Used by tests and the memory
// storage provider.
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]*Document
	now  func() time.Time
}

// NewMemoryRepository returns an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		docs: make(map[string]*Document),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepository) Get(_ context.Context, key string) (*Document, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	doc, ok := r.docs[key]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Key: key}
	}
	return cloneDocument(doc), nil
}

func (r *MemoryRepository) List(context.Context) ([]*Document, error) {
	r.mu.RLock()
	out := make([]*Document, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, cloneDocument(doc))
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (r *MemoryRepository) Put(_ context.Context, key string, value json.RawMessage) (*Document, bool, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, false, err
	}
	value, err = normalizeValue(value)
	if err != nil {
		return nil, false, err
	}

	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.docs[key]
	doc := &Document{
		ID:        identity.DocumentUUID(key),
		Key:       key,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ok {
		doc.ID = existing.ID
		doc.CreatedAt = existing.CreatedAt
	}
	r.docs[key] = doc
	return cloneDocument(doc), !ok, nil
}

func (r *MemoryRepository) Delete(_ context.Context, key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[key]; !ok {
		return &NotFoundError{Key: key}
	}
	delete(r.docs, key)
	return nil
}
