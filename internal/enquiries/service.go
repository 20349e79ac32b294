package enquiries

import (
	"context"
	"encoding/csv"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// CSVHeader is the first row of every export.
var CSVHeader = []string{"Date/Time", "Name", "Mobile", "Email", "Message"}

// CSVDateLayout renders created_at as dd/mm/yyyy HH:MM.
const CSVDateLayout = "02/01/2006 15:04"

// Service manages contact form enquiries.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*Enquiry, error)
	Get(ctx context.Context, id uuid.UUID) (*Enquiry, error)
	List(ctx context.Context, filter Filter) ([]*Enquiry, error)
	SetChecked(ctx context.Context, id uuid.UUID, checked bool) (*Enquiry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExportCSV(ctx context.Context, w io.Writer, filter Filter) (int, error)
}

// ServiceOption configures the service.
type ServiceOption func(*service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		s.logger = logging.Ensure(logger)
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(gen func() uuid.UUID) ServiceOption {
	return func(s *service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLocation sets the zone used for export timestamps. Defaults to UTC.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *service) {
		if loc != nil {
			s.location = loc
		}
	}
}

type service struct {
	repo     Repository
	logger   interfaces.Logger
	now      func() time.Time
	newID    func() uuid.UUID
	location *time.Location
	policy   *bluemonday.Policy
}

// NewService wires repo with validation and sanitising.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:     repo,
		logger:   logging.NoOp(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.New,
		location: time.UTC,
		policy:   bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Enquiry, error) {
	input = s.sanitize(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := s.now()
	record, err := s.repo.Create(ctx, &Enquiry{
		ID:        s.newID(),
		Name:      input.Name,
		Mobile:    input.Mobile,
		Email:     input.Email,
		Message:   input.Message,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("enquiries.create_failed", "error", err)
		return nil, err
	}
	s.logger.Info("enquiries.created", "enquiry_id", record.ID)
	return record, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Enquiry, error) {
	if id == uuid.Nil {
		return nil, ErrEnquiryIDRequired
	}
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Enquiry, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) SetChecked(ctx context.Context, id uuid.UUID, checked bool) (*Enquiry, error) {
	if id == uuid.Nil {
		return nil, ErrEnquiryIDRequired
	}
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Checked = checked
	record.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("enquiries.checked", "enquiry_id", id, "checked", checked)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrEnquiryIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("enquiries.deleted", "enquiry_id", id)
	return nil
}

// ExportCSV writes the filtered enquiries as CSV and returns the row count.
func (s *service) ExportCSV(ctx context.Context, w io.Writer, filter Filter) (int, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return 0, fmt.Errorf("enquiries: write csv header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.CreatedAt.In(s.location).Format(CSVDateLayout),
			rec.Name,
			rec.Mobile,
			rec.Email,
			rec.Message,
		}
		if err := cw.Write(row); err != nil {
			return 0, fmt.Errorf("enquiries: write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("enquiries: flush csv: %w", err)
	}
	s.logger.Debug("enquiries.exported", "rows", len(records))
	return len(records), nil
}

func (s *service) sanitize(input CreateInput) CreateInput {
	// Tags are stripped; entities are decoded again so values stay plain text.
	clean := func(v string) string {
		return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(v)))
	}
	return CreateInput{
		Name:    clean(input.Name),
		Mobile:  clean(input.Mobile),
		Email:   clean(input.Email),
		Message: clean(input.Message),
	}
}

func validateInput(input CreateInput) error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&input.Email, validation.Required, is.Email),
		validation.Field(&input.Mobile, validation.Length(0, 40)),
	)
}
