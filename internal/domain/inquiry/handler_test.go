package inquiry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestContact(t *testing.T) {
	h := NewHandler(nil, "+34 600 123 456")

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	h.Contact(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Contact() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Success bool            `json:"success"`
		Data    ContactResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Error("Contact() success = false, want true")
	}
	if body.Data.Phone != "+34 600 123 456" {
		t.Errorf("phone = %q, want %q", body.Data.Phone, "+34 600 123 456")
	}
	if !strings.HasPrefix(body.Data.WhatsAppLink, "https://wa.me/34600123456?text=") {
		t.Errorf("whatsapp link = %q, want wa.me link for 34600123456", body.Data.WhatsAppLink)
	}
}

func TestContactNoPhoneConfigured(t *testing.T) {
	h := NewHandler(nil, "")

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	rec := httptest.NewRecorder()
	h.Contact(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Contact() status = %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Data ContactResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.WhatsAppLink != "" {
		t.Errorf("whatsapp link = %q, want empty when no phone configured", body.Data.WhatsAppLink)
	}
}
