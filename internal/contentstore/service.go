package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// Validator checks a value before it is written under key.
type Validator func(key string, value json.RawMessage) error

// Service is the Content Store used by the rest of the module.
type Service interface {
	Get(ctx context.Context, key string) (*Document, error)
	// Lookup decodes the document at key into target. It reports false when
	// the document is missing or null.
	Lookup(ctx context.Context, key string, target any) (bool, error)
	List(ctx context.Context) ([]*Document, error)
	Put(ctx context.Context, key string, value json.RawMessage) (*Document, error)
	PutValue(ctx context.Context, key string, value any) (*Document, error)
	Delete(ctx context.Context, key string) error
	Subscribe(ctx context.Context) <-chan ChangeEvent
}

// ServiceOption configures the service.
type ServiceOption func(*service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		s.logger = logging.Ensure(logger)
	}
}

// WithValidator installs a write validator.
func WithValidator(v Validator) ServiceOption {
	return func(s *service) {
		s.validate = v
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithSubscriberBuffer sets the per subscriber channel size.
func WithSubscriberBuffer(n int) ServiceOption {
	return func(s *service) {
		s.buffer = n
	}
}

type service struct {
	repo        Repository
	logger      interfaces.Logger
	validate    Validator
	now         func() time.Time
	buffer      int
	broadcaster *changeBroadcaster
}

// NewService wraps repo with validation, logging and change events.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:        repo,
		logger:      logging.NoOp(),
		now:         func() time.Time { return time.Now().UTC() },
		buffer:      16,
		broadcaster: newChangeBroadcaster(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Get(ctx context.Context, key string) (*Document, error) {
	return s.repo.Get(ctx, key)
}

func (s *service) Lookup(ctx context.Context, key string, target any) (bool, error) {
	doc, err := s.repo.Get(ctx, key)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if doc.IsEmpty() {
		return false, nil
	}
	if err := doc.Decode(target); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) List(ctx context.Context) ([]*Document, error) {
	return s.repo.List(ctx)
}

func (s *service) Put(ctx context.Context, key string, value json.RawMessage) (*Document, error) {
	key, err := normalizeKey(key)
	if err != nil {
		return nil, err
	}
	value, err = normalizeValue(value)
	if err != nil {
		return nil, err
	}
	if s.validate != nil {
		if err := s.validate(key, value); err != nil {
			return nil, err
		}
	}

	doc, created, err := s.repo.Put(ctx, key, value)
	if err != nil {
		s.logger.Error("content.put.failed", "key", key, "error", err)
		return nil, err
	}

	change := ChangeUpdated
	if created {
		change = ChangeCreated
	}
	s.logger.Info("content.put", "key", key, "change", string(change))
	s.broadcaster.Broadcast(ChangeEvent{Type: change, Key: key, Value: doc.Value, At: s.now()})
	return doc, nil
}

func (s *service) PutValue(ctx context.Context, key string, value any) (*Document, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("contentstore: encode %q: %w", key, err)
	}
	return s.Put(ctx, key, raw)
}

func (s *service) Delete(ctx context.Context, key string) error {
	key, err := normalizeKey(key)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}
	s.logger.Info("content.delete", "key", key)
	s.broadcaster.Broadcast(ChangeEvent{Type: ChangeDeleted, Key: key, At: s.now()})
	return nil
}

func (s *service) Subscribe(ctx context.Context) <-chan ChangeEvent {
	return s.broadcaster.Subscribe(ctx, s.buffer)
}
