package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/villaserena/villa-api/internal/pkg/storage"
)

// allowedTypes are the content types accepted for booking documents
var allowedTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

// Service handles document business logic
type Service struct {
	repo     Repository
	storage  storage.Storage
	maxBytes int64
}

// NewService creates document service
func NewService(repo Repository, store storage.Storage, maxBytes int64) *Service {
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &Service{repo: repo, storage: store, maxBytes: maxBytes}
}

// Upload validates, stores and records a document for a booking
func (s *Service) Upload(ctx context.Context, bookingID uuid.UUID, filename string, reader io.Reader) (*Document, error) {
	buf, contentType, err := s.validateAndBuffer(reader)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	key := fmt.Sprintf("docs/%s/%s%s", bookingID.String(), id.String(), allowedTypes[contentType])

	if err := s.storage.Put(ctx, key, buf, contentType); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	d := &Document{
		ID:           id,
		BookingID:    bookingID,
		OriginalName: filepath.Base(filename),
		StorageKey:   key,
		ContentType:  contentType,
		Size:         int64(buf.Len()),
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		_ = s.storage.Delete(ctx, key)
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}

	return d, nil
}

// ListByBooking returns a booking's documents, newest first
func (s *Service) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*Document, error) {
	return s.repo.ListByBooking(ctx, bookingID)
}

// Open returns the document metadata and a reader over its content
func (s *Service) Open(ctx context.Context, id uuid.UUID) (*Document, io.ReadCloser, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if d == nil {
		return nil, nil, ErrDocumentNotFound
	}

	rc, err := s.storage.Get(ctx, d.StorageKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}
	return d, rc, nil
}

// Delete removes both the file and the metadata row
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrDocumentNotFound
	}

	if err := s.storage.Delete(ctx, d.StorageKey); err != nil {
		return fmt.Errorf("failed to delete document file: %w", err)
	}
	return s.repo.Delete(ctx, id)
}

// validateAndBuffer reads the upload into memory, enforcing the size
// cap and sniffing the content type from the actual bytes.
func (s *Service) validateAndBuffer(reader io.Reader) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	n, err := io.Copy(buf, io.LimitReader(reader, s.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload: %w", err)
	}
	if n == 0 {
		return nil, "", ErrEmptyFile
	}
	if n > s.maxBytes {
		return nil, "", ErrFileTooLarge
	}

	contentType := http.DetectContentType(buf.Bytes())
	if _, ok := allowedTypes[contentType]; !ok {
		return nil, "", ErrUnsupportedType
	}
	return buf, contentType, nil
}
