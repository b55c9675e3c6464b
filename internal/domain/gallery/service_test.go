package gallery

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"image"
	"image/jpeg"
	"io"
	"testing"

	"github.com/google/uuid"

	"github.com/villaserena/villa-api/internal/pkg/imaging"
)

type fakeRepo struct {
	photos map[uuid.UUID]*Photo
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{photos: make(map[uuid.UUID]*Photo)}
}

func (f *fakeRepo) Create(ctx context.Context, p *Photo) error {
	f.photos[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Photo, error) {
	return f.photos[id], nil
}

func (f *fakeRepo) List(ctx context.Context) ([]*Photo, error) {
	var out []*Photo
	for _, p := range f.photos {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) UpdateCaption(ctx context.Context, id uuid.UUID, caption sql.NullString) error {
	f.photos[id].Caption = caption
	return nil
}

func (f *fakeRepo) UpdateSortOrder(ctx context.Context, id uuid.UUID, sortOrder int) error {
	f.photos[id].SortOrder = sortOrder
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.photos, id)
	return nil
}

type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (f *fakeStorage) Put(ctx context.Context, key string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.files[key] = data
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.files[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.files, key)
	return nil
}

func (f *fakeStorage) GetURL(key string) string {
	return "http://storage.local/" + key
}

func jpegPayload(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("jpeg.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func newTestService() (*Service, *fakeRepo, *fakeStorage) {
	repo := newFakeRepo()
	store := newFakeStorage()
	svc := NewService(repo, store, imaging.NewProcessor(imaging.DefaultConfig()))
	return svc, repo, store
}

func TestUploadPhoto(t *testing.T) {
	svc, _, store := newTestService()

	p, err := svc.Upload(context.Background(), "Pool at sunset", bytes.NewReader(jpegPayload(t, 800, 600)))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if p.Width != 800 || p.Height != 600 {
		t.Errorf("dimensions = %dx%d, want 800x600", p.Width, p.Height)
	}
	if !p.Caption.Valid || p.Caption.String != "Pool at sunset" {
		t.Errorf("caption = %v, want Pool at sunset", p.Caption)
	}
	if _, ok := store.files[p.StorageKey]; !ok {
		t.Error("original not stored")
	}
	if _, ok := store.files[p.ThumbKey]; !ok {
		t.Error("thumbnail not stored")
	}
}

func TestUploadNotAnImage(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.Upload(context.Background(), "", bytes.NewReader([]byte("plain text"))); !errors.Is(err, ErrInvalidImage) {
		t.Errorf("Upload() error = %v, want ErrInvalidImage", err)
	}
}

func TestDeletePhotoRemovesBothVariants(t *testing.T) {
	svc, _, store := newTestService()

	p, err := svc.Upload(context.Background(), "", bytes.NewReader(jpegPayload(t, 400, 300)))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(store.files) != 0 {
		t.Errorf("storage still has %d files after delete", len(store.files))
	}
	if err := svc.Delete(context.Background(), p.ID); !errors.Is(err, ErrPhotoNotFound) {
		t.Errorf("second Delete() error = %v, want ErrPhotoNotFound", err)
	}
}

func TestUpdateSortOrder(t *testing.T) {
	svc, repo, _ := newTestService()

	p, err := svc.Upload(context.Background(), "", bytes.NewReader(jpegPayload(t, 400, 300)))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := svc.UpdateSortOrder(context.Background(), p.ID, 3); err != nil {
		t.Fatalf("UpdateSortOrder() error = %v", err)
	}
	if repo.photos[p.ID].SortOrder != 3 {
		t.Errorf("sort order = %d, want 3", repo.photos[p.ID].SortOrder)
	}

	if err := svc.UpdateSortOrder(context.Background(), uuid.New(), 1); !errors.Is(err, ErrPhotoNotFound) {
		t.Errorf("UpdateSortOrder() error = %v, want ErrPhotoNotFound", err)
	}
}
