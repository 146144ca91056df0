package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/assetbox/service/internal/storage"
)

// listLimit caps the number of assets returned by List.
const listLimit = 100

// Service contains business logic for asset management. All object I/O goes
// through the media storage backend; the service never touches the static
// area.
type Service struct {
	repo  *Repository
	media *storage.Prefixed
}

// NewService creates a new asset Service.
func NewService(repo *Repository, media *storage.Prefixed) *Service {
	return &Service{repo: repo, media: media}
}

// Upload stores the file content in the media area and records it in the
// database. declaredType comes from the multipart header and is used only
// when content sniffing is inconclusive.
func (s *Service) Upload(ctx context.Context, originalName string, reader io.Reader, size int64, declaredType string) (*Asset, error) {
	contentType, body, err := sniffContentType(reader, declaredType)
	if err != nil {
		return nil, fmt.Errorf("detect content type: %w", err)
	}

	key := objectKey(originalName)
	if err := s.media.Save(ctx, key, body, size, contentType); err != nil {
		return nil, fmt.Errorf("save %q: %w", key, err)
	}

	a, err := s.repo.Create(ctx, key, originalName, contentType, size)
	if err != nil {
		// The object is already in the bucket; remove it so a failed insert
		// does not leave an orphan behind.
		_ = s.media.Delete(ctx, key)
		return nil, err
	}
	a.URL = s.media.URL(a.ObjectKey)
	return a, nil
}

// Get returns asset metadata with its public URL.
func (s *Service) Get(ctx context.Context, id string) (*Asset, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.URL = s.media.URL(a.ObjectKey)
	return a, nil
}

// List returns the most recent assets with their public URLs.
func (s *Service) List(ctx context.Context) ([]*Asset, error) {
	assets, err := s.repo.List(ctx, listLimit)
	if err != nil {
		return nil, err
	}
	for _, a := range assets {
		a.URL = s.media.URL(a.ObjectKey)
	}
	return assets, nil
}

// Open returns the asset metadata and a reader over its content. The caller
// must close the reader.
func (s *Service) Open(ctx context.Context, id string) (*Asset, io.ReadCloser, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.media.Open(ctx, a.ObjectKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open %q: %w", a.ObjectKey, err)
	}
	return a, rc, nil
}

// Delete removes the object from the bucket and then the database record.
func (s *Service) Delete(ctx context.Context, id string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.media.Delete(ctx, a.ObjectKey); err != nil {
		return fmt.Errorf("delete %q: %w", a.ObjectKey, err)
	}
	return s.repo.Delete(ctx, id)
}

// IsNotFound returns true when the error indicates an asset was not found.
func (s *Service) IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// objectKey generates a collision-free key for an upload, keeping the
// original extension so URLs stay recognizable.
func objectKey(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + ext
}

// sniffContentType detects the MIME type from the first bytes of reader and
// returns a new reader that replays them. The declared type is used when the
// content is indistinguishable from a raw byte stream.
func sniffContentType(reader io.Reader, declaredType string) (string, io.Reader, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(reader, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, err
	}
	head = head[:n]

	detected := mimetype.Detect(head).String()
	if strings.HasPrefix(detected, "application/octet-stream") && declaredType != "" {
		detected = declaredType
	}
	return detected, io.MultiReader(bytes.NewReader(head), reader), nil
}
