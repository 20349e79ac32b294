package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

// GCSBlobStore writes uploads to a Cloud Storage bucket.
type GCSBlobStore struct {
	client        *gcs.Client
	bucket        string
	publicBaseURL string
}

// NewGCSBlobStore wraps client for bucket. When publicBaseURL is empty the
// storage.googleapis.com address is used.
func NewGCSBlobStore(client *gcs.Client, bucket, publicBaseURL string) (*GCSBlobStore, error) {
	if client == nil {
		return nil, errors.New("media gcs: client is required")
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, errors.New("media gcs: bucket is required")
	}
	base := strings.TrimRight(strings.TrimSpace(publicBaseURL), "/")
	if base == "" {
		base = "https://storage.googleapis.com/" + bucket
	}
	return &GCSBlobStore{client: client, bucket: bucket, publicBaseURL: base}, nil
}

var _ interfaces.BlobStore = (*GCSBlobStore)(nil)

func (s *GCSBlobStore) Upload(ctx context.Context, upload interfaces.BlobUpload) (interfaces.BlobObject, error) {
	if upload.Body == nil {
		return interfaces.BlobObject{}, ErrFileRequired
	}
	name := ObjectName(upload.Folder, upload.Filename)

	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = upload.ContentType
	w.CacheControl = "public, max-age=31536000"
	size, err := io.Copy(w, upload.Body)
	if err != nil {
		_ = w.Close()
		return interfaces.BlobObject{}, fmt.Errorf("media gcs: write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return interfaces.BlobObject{}, fmt.Errorf("media gcs: finalize %s: %w", name, err)
	}

	return interfaces.BlobObject{
		PublicID: name,
		URL:      s.publicBaseURL + "/" + escapeObjectPath(name),
		Size:     size,
	}, nil
}

func (s *GCSBlobStore) Delete(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return ErrBlobNotFound
	}
	err := s.client.Bucket(s.bucket).Object(publicID).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrBlobNotFound
	}
	return err
}

func escapeObjectPath(name string) string {
	parts := strings.Split(name, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
