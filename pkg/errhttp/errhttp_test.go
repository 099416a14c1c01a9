package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/itemflow/pkg/httpx"
	itemdomain "github.com/ghuser/itemflow/services/item/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"ErrItemNotFound", itemdomain.ErrItemNotFound, http.StatusNotFound},
		{"ErrDuplicateEmail", itemdomain.ErrDuplicateEmail, http.StatusConflict},
		{"ErrInvalidItem", itemdomain.ErrInvalidItem, http.StatusBadRequest},
		{"ErrEmailNotDeliverable", itemdomain.ErrEmailNotDeliverable, http.StatusBadRequest},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", itemdomain.ErrItemNotFound), http.StatusNotFound},
		{"wrapped ErrDuplicateEmail", fmt.Errorf("save item: %w", itemdomain.ErrDuplicateEmail), http.StatusConflict},
		{"wrapped ErrInvalidItem", fmt.Errorf("%w: name is required", itemdomain.ErrInvalidItem), http.StatusBadRequest},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/items", http.NoBody)
			WriteError(w, r, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
		})
	}
}

func TestWriteError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/api/items/abc", http.NoBody)
	WriteError(w, r, itemdomain.ErrItemNotFound)

	var body httpx.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body.Status != http.StatusNotFound {
		t.Errorf("unexpected status field: %d", body.Status)
	}
	if body.Error != "Not Found" {
		t.Errorf("unexpected error label: %q", body.Error)
	}
	if len(body.Messages) != 1 || body.Messages[0] != itemdomain.ErrItemNotFound.Error() {
		t.Errorf("unexpected messages: %v", body.Messages)
	}
	if body.Path != "/api/items/abc" {
		t.Errorf("unexpected path: %q", body.Path)
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/items", http.NoBody)
	WriteError(w, r, itemdomain.ErrItemNotFound)

	ct := w.Header().Get("Content-Type")
	if ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected Content-Type: %q", ct)
	}
}
