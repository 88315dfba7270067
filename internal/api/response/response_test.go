package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/todokata/todokata/internal/domain"
)

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"not found", domain.NewTodoNotFoundError("1"), http.StatusNotFound, "TODO_NOT_FOUND"},
		{"validation", domain.NewValidationError([]string{"title is required"}), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"media type", domain.NewUnsupportedMediaTypeError("text/plain"), http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
		{"internal", domain.NewInternalError(nil), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Error(rr, tt.err)

			if rr.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected Content-Type application/json, got %s", ct)
			}

			var resp ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Error.Code != tt.wantBody {
				t.Errorf("expected code %s, got %s", tt.wantBody, resp.Error.Code)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	rr := httptest.NewRecorder()
	Empty(rr)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
	if body := rr.Body.String(); body != "{}\n" {
		t.Errorf("expected empty object, got %q", body)
	}
}
