package document

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	docs map[uuid.UUID]*Document
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: make(map[uuid.UUID]*Document)}
}

func (f *fakeRepo) Create(ctx context.Context, d *Document) error {
	f.docs[d.ID] = d
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	return f.docs[id], nil
}

func (f *fakeRepo) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*Document, error) {
	var out []*Document
	for _, d := range f.docs {
		if d.BookingID == bookingID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.docs, id)
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

// pdfPayload returns bytes that http.DetectContentType reports as a PDF
func pdfPayload() []byte {
	return append([]byte("%PDF-1.4\n"), bytes.Repeat([]byte("x"), 64)...)
}

func TestUploadDocument(t *testing.T) {
	repo := newFakeRepo()
	store := newFakeStorage()
	svc := NewService(repo, store, 1<<20)

	bookingID := uuid.New()
	d, err := svc.Upload(context.Background(), bookingID, "contract.pdf", bytes.NewReader(pdfPayload()))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if d.ContentType != "application/pdf" {
		t.Errorf("content type = %s, want application/pdf", d.ContentType)
	}
	if d.BookingID != bookingID {
		t.Errorf("booking ID = %s, want %s", d.BookingID, bookingID)
	}
	if !strings.HasPrefix(d.StorageKey, "docs/"+bookingID.String()+"/") {
		t.Errorf("storage key = %s, want docs/%s/ prefix", d.StorageKey, bookingID)
	}
	if _, ok := store.files[d.StorageKey]; !ok {
		t.Error("file not stored under storage key")
	}
}

func TestUploadEmptyFile(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeStorage(), 1<<20)

	if _, err := svc.Upload(context.Background(), uuid.New(), "empty.pdf", bytes.NewReader(nil)); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("Upload() error = %v, want ErrEmptyFile", err)
	}
}

func TestUploadTooLarge(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeStorage(), 16)

	payload := pdfPayload()
	if _, err := svc.Upload(context.Background(), uuid.New(), "big.pdf", bytes.NewReader(payload)); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Upload() error = %v, want ErrFileTooLarge", err)
	}
}

func TestUploadUnsupportedType(t *testing.T) {
	svc := NewService(newFakeRepo(), newFakeStorage(), 1<<20)

	payload := []byte("MZ\x90\x00" + strings.Repeat("\x00", 64))
	if _, err := svc.Upload(context.Background(), uuid.New(), "app.exe", bytes.NewReader(payload)); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Upload() error = %v, want ErrUnsupportedType", err)
	}
}

func TestOpenDocument(t *testing.T) {
	repo := newFakeRepo()
	store := newFakeStorage()
	svc := NewService(repo, store, 1<<20)

	payload := pdfPayload()
	d, err := svc.Upload(context.Background(), uuid.New(), "contract.pdf", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	got, rc, err := svc.Open(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	if got.OriginalName != "contract.pdf" {
		t.Errorf("original name = %s, want contract.pdf", got.OriginalName)
	}
	data, _ := io.ReadAll(rc)
	if !bytes.Equal(data, payload) {
		t.Error("downloaded content differs from upload")
	}
}

func TestDeleteDocument(t *testing.T) {
	repo := newFakeRepo()
	store := newFakeStorage()
	svc := NewService(repo, store, 1<<20)

	d, err := svc.Upload(context.Background(), uuid.New(), "contract.pdf", bytes.NewReader(pdfPayload()))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := svc.Delete(context.Background(), d.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := store.files[d.StorageKey]; ok {
		t.Error("file still in storage after delete")
	}
	if err := svc.Delete(context.Background(), d.ID); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("second Delete() error = %v, want ErrDocumentNotFound", err)
	}
}
