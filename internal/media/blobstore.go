package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/goliatone/go-sitecms/pkg/interfaces"
	"github.com/oklog/ulid/v2"
)

// ErrBlobNotFound is returned when deleting an unknown object.
var ErrBlobNotFound = errors.New("media: blob not found")

// ObjectName places a fresh ULID under folder, keeping the upload's extension.
func ObjectName(folder, filename string) string {
	name := strings.ToLower(ulid.Make().String())
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		name += ext
	}
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return name
	}
	return folder + "/" + name
}

// MemoryBlobStore keeps uploaded bytes in process. URLs are built from BaseURL.
type MemoryBlobStore struct {
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryBlobStore(baseURL string) *MemoryBlobStore {
	return &MemoryBlobStore{BaseURL: strings.TrimRight(baseURL, "/"), objects: make(map[string][]byte)}
}

var _ interfaces.BlobStore = (*MemoryBlobStore)(nil)

func (s *MemoryBlobStore) Upload(ctx context.Context, upload interfaces.BlobUpload) (interfaces.BlobObject, error) {
	if upload.Body == nil {
		return interfaces.BlobObject{}, ErrFileRequired
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, upload.Body); err != nil {
		return interfaces.BlobObject{}, fmt.Errorf("media: read upload: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return interfaces.BlobObject{}, err
	}

	name := ObjectName(upload.Folder, upload.Filename)
	s.mu.Lock()
	s.objects[name] = buf.Bytes()
	s.mu.Unlock()

	return interfaces.BlobObject{
		PublicID: name,
		URL:      s.BaseURL + "/" + name,
		Size:     int64(buf.Len()),
	}, nil
}

func (s *MemoryBlobStore) Delete(_ context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[publicID]; !ok {
		return ErrBlobNotFound
	}
	delete(s.objects, publicID)
	return nil
}

// Has reports whether an object is stored under publicID.
func (s *MemoryBlobStore) Has(publicID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[publicID]
	return ok
}

// Len returns the number of stored objects.
func (s *MemoryBlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
