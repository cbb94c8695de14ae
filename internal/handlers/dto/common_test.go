package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/handlers/middleware"
)

func newTestContext(path string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c
}

func TestNewErrorResponse_JSON(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		expectedType string
	}{
		{"usa a base configurada", "https://api.academia.test", "https://api.academia.test" + domainerrors.ProblemTypeNotFound},
		{"sem base cai no localhost", "", "http://localhost:8080" + domainerrors.ProblemTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext("/api/v1/students/9")
			if tt.baseURL != "" {
				c.Set(middleware.BaseURLContextKey, tt.baseURL)
			}

			resp := NewErrorResponse(c, domainerrors.ProblemTypeNotFound, "Not Found", http.StatusNotFound, "Student not found")
			raw, err := json.Marshal(resp)
			if err != nil {
				t.Fatalf("esperava JSON válido, obteve erro: %v", err)
			}

			var body map[string]any
			if err := json.Unmarshal(raw, &body); err != nil {
				t.Fatalf("esperava objeto JSON, obteve erro: %v", err)
			}
			expected := map[string]any{
				"type":     tt.expectedType,
				"title":    "Not Found",
				"status":   float64(http.StatusNotFound),
				"detail":   "Student not found",
				"instance": "/api/v1/students/9",
			}
			for field, want := range expected {
				if body[field] != want {
					t.Errorf("esperava %s = %v, obteve %v", field, want, body[field])
				}
			}
			if _, ok := body["errors"]; ok {
				t.Error("esperava errors omitido quando vazio")
			}
		})
	}
}

func TestValidationErrorResponseI18n(t *testing.T) {
	c := newTestContext("/api/v1/users")
	fields := []ValidationError{{Field: "email", Message: "email is required", Tag: "required"}}

	resp := ValidationErrorResponseI18n(c, fields)
	if resp.Status != http.StatusBadRequest {
		t.Errorf("esperava status 400, obteve %d", resp.Status)
	}
	if resp.Title != "error.validation.title" {
		t.Errorf("esperava a chave como título sem catálogo, obteve '%s'", resp.Title)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("esperava JSON válido, obteve erro: %v", err)
	}
	var decoded ErrorResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("esperava decodificar ErrorResponse, obteve erro: %v", err)
	}
	if decoded.Problem == nil || decoded.Status != http.StatusBadRequest {
		t.Fatalf("esperava problem com status 400, obteve %+v", decoded.Problem)
	}
	if len(decoded.Errors) != 1 || decoded.Errors[0].Field != "email" {
		t.Errorf("esperava erro no campo email, obteve %+v", decoded.Errors)
	}
}
