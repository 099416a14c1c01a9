package httpx_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ghuser/itemflow/pkg/httpx"
)

func TestJSON_setsHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("unexpected Content-Type: %q", ct)
	}
	if xct := w.Header().Get("X-Content-Type-Options"); xct != "nosniff" {
		t.Errorf("expected nosniff, got %q", xct)
	}
}

func TestJSON_encodesBody(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSON(w, http.StatusCreated, map[string]string{"id": "abc"})

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body["id"] != "abc" {
		t.Errorf("unexpected body: %v", body)
	}
	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestJSONError_envelope(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/items/42", http.NoBody)
	httpx.JSONError(w, r, http.StatusNotFound, "item not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	var body httpx.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Status != http.StatusNotFound {
		t.Errorf("unexpected status field: %d", body.Status)
	}
	if body.Error != "Not Found" {
		t.Errorf("unexpected error label: %q", body.Error)
	}
	if len(body.Messages) != 1 || body.Messages[0] != "item not found" {
		t.Errorf("unexpected messages: %v", body.Messages)
	}
	if body.Path != "/api/items/42" {
		t.Errorf("unexpected path: %q", body.Path)
	}
	if body.Timestamp.IsZero() || time.Since(body.Timestamp) > time.Minute {
		t.Errorf("unexpected timestamp: %v", body.Timestamp)
	}
}

func TestJSONError_nilRequest(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, nil, http.StatusInternalServerError, "boom")

	var body httpx.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Path != "" {
		t.Errorf("expected empty path, got %q", body.Path)
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("pq: connection refused")

	if got := httpx.SafeError(err, http.StatusInternalServerError, true); got != "Internal Server Error" {
		t.Errorf("production 5xx should be generic, got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusInternalServerError, false); got != err.Error() {
		t.Errorf("development should expose message, got %q", got)
	}
	if got := httpx.SafeError(err, http.StatusBadRequest, true); got != err.Error() {
		t.Errorf("4xx should expose message, got %q", got)
	}
}
