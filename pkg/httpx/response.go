package httpx

import (
	"encoding/json"
	"net/http"
	"time"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the envelope returned on every error response.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`    // HTTP reason phrase
	Messages  []string  `json:"messages"` // human-readable details
	Path      string    `json:"path"`     // request URI that triggered the error
}

// JSONError writes the standard error envelope for the given request.
// The error label is derived from the status code's reason phrase.
func JSONError(w http.ResponseWriter, r *http.Request, status int, messages ...string) {
	path := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
	}
	JSON(w, status, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Messages:  messages,
		Path:      path,
	})
}

// SafeError returns the error message for client responses.
// In production (isProduction=true), internal server errors (5xx) are replaced
// with a generic message to avoid leaking implementation details.
func SafeError(err error, status int, isProduction bool) string {
	if isProduction && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
