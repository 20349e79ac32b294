package media

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"github.com/goliatone/go-sitecms/internal/logging"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/google/uuid"
)

// DefaultFolder is the blob folder uploads land in.
const DefaultFolder = "suffix_uploads"

// File is an incoming upload.
type File struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Service manages uploaded images.
type Service interface {
	Create(ctx context.Context, file File) (*Image, error)
	Get(ctx context.Context, id uuid.UUID) (*Image, error)
	List(ctx context.Context) ([]*Image, error)
	Replace(ctx context.Context, id uuid.UUID, file File) (*Image, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceOption configures the service.
type ServiceOption func(*service)

// WithLogger sets the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		s.logger = logging.Ensure(logger)
	}
}

// WithFolder overrides the blob folder.
func WithFolder(folder string) ServiceOption {
	return func(s *service) {
		if folder = strings.TrimSpace(folder); folder != "" {
			s.folder = folder
		}
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

type service struct {
	repo   Repository
	blobs  interfaces.BlobStore
	logger interfaces.Logger
	folder string
	now    func() time.Time
}

// NewService pairs the image repository with a blob store.
func NewService(repo Repository, blobs interfaces.BlobStore, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		blobs:  blobs,
		logger: logging.NoOp(),
		folder: DefaultFolder,
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Create(ctx context.Context, file File) (*Image, error) {
	obj, err := s.upload(ctx, file)
	if err != nil {
		return nil, err
	}
	now := s.now()
	rec, err := s.repo.Create(ctx, &Image{
		ID:            uuid.New(),
		ImageURL:      obj.URL,
		ImagePublicID: obj.PublicID,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		s.discard(ctx, obj.PublicID)
		return nil, err
	}
	s.logger.Info("media.image.created", "image_id", rec.ID, "public_id", rec.ImagePublicID)
	return rec, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Image, error) {
	if id == uuid.Nil {
		return nil, ErrImageIDRequired
	}
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Image, error) {
	return s.repo.List(ctx)
}

// Replace uploads the new file first, then points the record at it and
// drops the old blob.
func (s *service) Replace(ctx context.Context, id uuid.UUID, file File) (*Image, error) {
	if id == uuid.Nil {
		return nil, ErrImageIDRequired
	}
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	obj, err := s.upload(ctx, file)
	if err != nil {
		return nil, err
	}

	oldPublicID := rec.ImagePublicID
	rec.ImageURL = obj.URL
	rec.ImagePublicID = obj.PublicID
	rec.UpdatedAt = s.now()
	updated, err := s.repo.Update(ctx, rec)
	if err != nil {
		s.discard(ctx, obj.PublicID)
		return nil, err
	}
	s.discard(ctx, oldPublicID)
	s.logger.Info("media.image.replaced", "image_id", id, "public_id", updated.ImagePublicID)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrImageIDRequired
	}
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.discard(ctx, rec.ImagePublicID)
	s.logger.Info("media.image.deleted", "image_id", id)
	return nil
}

func (s *service) upload(ctx context.Context, file File) (interfaces.BlobObject, error) {
	if file.Body == nil {
		return interfaces.BlobObject{}, ErrFileRequired
	}
	contentType := detectContentType(file)
	if !strings.HasPrefix(contentType, "image/") {
		return interfaces.BlobObject{}, ErrUnsupportedType
	}
	obj, err := s.blobs.Upload(ctx, interfaces.BlobUpload{
		Folder:      s.folder,
		Filename:    file.Filename,
		ContentType: contentType,
		Size:        file.Size,
		Body:        file.Body,
	})
	if err != nil {
		s.logger.Error("media.upload_failed", "filename", file.Filename, "error", err)
		return interfaces.BlobObject{}, err
	}
	return obj, nil
}

// discard removes a blob; failures are logged and otherwise ignored.
func (s *service) discard(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.blobs.Delete(ctx, publicID); err != nil {
		s.logger.Warn("media.blob.delete_failed", "public_id", publicID, "error", err)
	}
}

func detectContentType(file File) string {
	if ct := strings.TrimSpace(file.ContentType); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			return mt
		}
	}
	return mime.TypeByExtension(strings.ToLower(path.Ext(file.Filename)))
}
