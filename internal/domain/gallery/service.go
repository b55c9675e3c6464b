package gallery

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/villaserena/villa-api/internal/pkg/imaging"
	"github.com/villaserena/villa-api/internal/pkg/storage"
)

// Service handles gallery business logic
type Service struct {
	repo      Repository
	storage   storage.Storage
	processor *imaging.Processor
}

// NewService creates gallery service
func NewService(repo Repository, store storage.Storage, processor *imaging.Processor) *Service {
	return &Service{repo: repo, storage: store, processor: processor}
}

// Upload processes an uploaded image and stores both variants
func (s *Service) Upload(ctx context.Context, caption string, reader io.Reader) (*Photo, error) {
	processed, err := s.processor.Process(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	id := uuid.New()
	ext := extensionFor(processed.ContentType)
	key := fmt.Sprintf("gallery/%s%s", id.String(), ext)
	thumbKey := fmt.Sprintf("gallery/thumbs/%s%s", id.String(), ext)

	if err := s.storage.Put(ctx, key, bytes.NewReader(processed.Original), processed.ContentType); err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}
	if err := s.storage.Put(ctx, thumbKey, bytes.NewReader(processed.Thumbnail), processed.ContentType); err != nil {
		_ = s.storage.Delete(ctx, key)
		return nil, fmt.Errorf("failed to store thumbnail: %w", err)
	}

	p := &Photo{
		ID:          id,
		Caption:     sql.NullString{String: caption, Valid: caption != ""},
		StorageKey:  key,
		ThumbKey:    thumbKey,
		ContentType: processed.ContentType,
		Width:       processed.Width,
		Height:      processed.Height,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.storage.Delete(ctx, key)
		_ = s.storage.Delete(ctx, thumbKey)
		return nil, fmt.Errorf("failed to create photo record: %w", err)
	}

	return p, nil
}

// List returns all photos in display order
func (s *Service) List(ctx context.Context) ([]*Photo, error) {
	return s.repo.List(ctx)
}

// UpdateCaption replaces a photo's caption
func (s *Service) UpdateCaption(ctx context.Context, id uuid.UUID, caption string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPhotoNotFound
	}
	return s.repo.UpdateCaption(ctx, id, sql.NullString{String: caption, Valid: caption != ""})
}

// UpdateSortOrder moves a photo within the gallery
func (s *Service) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPhotoNotFound
	}
	return s.repo.UpdateSortOrder(ctx, id, sortOrder)
}

// Delete removes the photo, its thumbnail and the metadata row
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPhotoNotFound
	}

	if err := s.storage.Delete(ctx, p.StorageKey); err != nil {
		return fmt.Errorf("failed to delete photo file: %w", err)
	}
	_ = s.storage.Delete(ctx, p.ThumbKey)
	return s.repo.Delete(ctx, id)
}

// URL returns the public URL of the stored original
func (s *Service) URL(p *Photo) string {
	return s.storage.GetURL(p.StorageKey)
}

// ThumbURL returns the public URL of the thumbnail
func (s *Service) ThumbURL(p *Photo) string {
	return s.storage.GetURL(p.ThumbKey)
}

func extensionFor(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}
