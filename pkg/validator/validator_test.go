package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/itemflow/pkg/validator"
)

type sampleStruct struct {
	ID     string `validate:"required,uuid"`
	Name   string `validate:"required,min=1,max=10"`
	Status string `validate:"omitempty,oneof=NEW PROCESSED CANCELLED"`
	Email  string `validate:"omitempty,email"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{
		ID:   "550e8400-e29b-41d4-a716-446655440000",
		Name: "hello",
	}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ID"] != "This field is required" {
		t.Errorf("unexpected ID message: %q", m["ID"])
	}
	if m["Name"] != "This field is required" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_uuid(t *testing.T) {
	s := sampleStruct{ID: "not-a-uuid", Name: "ok"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["ID"] != "Must be a valid UUID" {
		t.Errorf("unexpected ID message: %q", m["ID"])
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleStruct{ID: "550e8400-e29b-41d4-a716-446655440000", Name: "12345678901"} // 11 chars > max=10
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Name"] != "Maximum length is 10" {
		t.Errorf("unexpected Name message: %q", m["Name"])
	}
}

func TestFormatValidationErrors_oneof(t *testing.T) {
	s := sampleStruct{ID: "550e8400-e29b-41d4-a716-446655440000", Name: "ok", Status: "DONE"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Status"] != "Must be one of: NEW, PROCESSED, CANCELLED" {
		t.Errorf("unexpected Status message: %q", m["Status"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

func TestValidationMessages_sorted(t *testing.T) {
	s := sampleStruct{}
	err := pkgvalidator.Validate(&s)
	msgs := pkgvalidator.ValidationMessages(err)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d: %v", len(msgs), msgs)
	}
	if !strings.HasPrefix(msgs[0], "ID:") || !strings.HasPrefix(msgs[1], "Name:") {
		t.Errorf("expected sorted field-prefixed messages, got %v", msgs)
	}
}

// --- ValidateRequest ---

type itemReq struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Status string `json:"status" validate:"required,oneof=NEW PROCESSED CANCELLED"`
	Email  string `json:"email"  validate:"required"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"widget","status":"NEW","email":"owner@example.org"}`
	r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "widget" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid JSON") {
		t.Errorf("expected 'invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"name":"widget","status":"NEW"}`
	r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for missing email")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "email: This field is required") {
		t.Errorf("expected email message in body, got: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"path":"/items"`) {
		t.Errorf("expected request path in envelope, got: %s", w.Body.String())
	}
}

func TestValidateRequest_invalidStatus(t *testing.T) {
	body := `{"name":"widget","status":"DONE","email":"owner@example.org"}`
	r := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for invalid status")
	}
	if !strings.Contains(w.Body.String(), "Must be one of: NEW, PROCESSED, CANCELLED") {
		t.Errorf("expected oneof error in body, got: %s", w.Body.String())
	}
}
