package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/rafabene/academia-backend/internal/handlers/dto"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/api/v1/", Language: "pt-BR", Timeout: time.Second})
}

func TestLoadConfig(t *testing.T) {
	t.Run("valores padrão", func(t *testing.T) {
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cfg.BaseURL != "http://localhost:8080/api/v1" {
			t.Errorf("esperava URL padrão, obteve '%s'", cfg.BaseURL)
		}
		if cfg.Timeout != 10*time.Second || cfg.CacheTTL != 5*time.Minute {
			t.Errorf("esperava timeouts padrão, obteve %v e %v", cfg.Timeout, cfg.CacheTTL)
		}
	})

	t.Run("lê variáveis de ambiente", func(t *testing.T) {
		t.Setenv("ACADEMIA_API_URL", "https://api.academia.test/api/v1")
		t.Setenv("ACADEMIA_API_TIMEOUT", "3s")
		t.Setenv("ACADEMIA_CACHE_REDIS_URL", "redis://localhost:6379/1")
		cfg, err := LoadConfig()
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cfg.BaseURL != "https://api.academia.test/api/v1" || cfg.Timeout != 3*time.Second {
			t.Errorf("obteve %+v", cfg)
		}
		if cfg.CacheRedisURL != "redis://localhost:6379/1" {
			t.Errorf("esperava URL do redis, obteve '%s'", cfg.CacheRedisURL)
		}
	})

	t.Run("erro com duração inválida", func(t *testing.T) {
		t.Setenv("ACADEMIA_API_TIMEOUT", "depressa")
		if _, err := LoadConfig(); err == nil {
			t.Error("esperava erro, obteve nil")
		}
	})
}

func TestClient_Login(t *testing.T) {
	var gotAuth []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/v1/auth/login":
			var req dto.LoginRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if req.Email != "admin@academia.com" {
				t.Errorf("esperava email no corpo, obteve '%s'", req.Email)
			}
			_ = json.NewEncoder(w).Encode(dto.AuthResponse{Token: "tok-123", TokenType: "Bearer"})
		case "/api/v1/instructors":
			_ = json.NewEncoder(w).Encode(dto.ListResponse[dto.InstructorResponse]{Data: []dto.InstructorResponse{{ID: 1}}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	if _, err := c.Login(context.Background(), dto.LoginRequest{Email: "admin@academia.com", Password: "segredo"}); err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}
	items, err := c.Instructors().List(context.Background(), nil)
	if err != nil {
		t.Fatalf("esperava sucesso, obteve erro: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("esperava 1 instrutor, obteve %d", len(items))
	}
	if gotAuth[0] != "" || gotAuth[1] != "Bearer tok-123" {
		t.Errorf("esperava token só após o login, obteve %v", gotAuth)
	}
}

func TestResource_Requests(t *testing.T) {
	type call struct {
		method string
		path   string
		query  string
		lang   string
	}
	var calls []call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("Accept-Language")})
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			if r.URL.Path == "/api/v1/treinos" {
				_ = json.NewEncoder(w).Encode(dto.ListResponse[dto.TreinoResponse]{Data: []dto.TreinoResponse{{ID: "abc"}}})
				return
			}
			_ = json.NewEncoder(w).Encode(dto.TreinoResponse{ID: "abc"})
		default:
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(dto.NotificationResponse{ID: 9, Read: true})
		}
	})
	ctx := context.Background()

	if _, err := c.Treinos().List(ctx, url.Values{"aluno_id": {"3"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Treinos().Get(ctx, "abc"); err != nil {
		t.Fatal(err)
	}
	n, err := c.Notifications().Update(ctx, "9", MarkAsRead{})
	if err != nil {
		t.Fatal(err)
	}
	if !n.Read {
		t.Error("esperava notificação lida")
	}
	if err := c.Payments().Delete(ctx, "4"); err != nil {
		t.Fatal(err)
	}

	expected := []call{
		{http.MethodGet, "/api/v1/treinos", "aluno_id=3", "pt-BR"},
		{http.MethodGet, "/api/v1/treinos/abc", "", "pt-BR"},
		{http.MethodPatch, "/api/v1/notifications/9/read", "", "pt-BR"},
		{http.MethodDelete, "/api/v1/payments/4", "", "pt-BR"},
	}
	if len(calls) != len(expected) {
		t.Fatalf("esperava %d chamadas, obteve %d", len(expected), len(calls))
	}
	for i, want := range expected {
		if calls[i] != want {
			t.Errorf("chamada %d: esperava %+v, obteve %+v", i, want, calls[i])
		}
	}
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedDetail string
		expectedErrors int
	}{
		{
			name:           "problema com lista de campos",
			status:         http.StatusBadRequest,
			body:           `{"type":"https://api.academia.test/problems/validation-error","title":"Erro de Validação","status":400,"detail":"Falha na validação","errors":[{"field":"email","message":"email é obrigatório"}]}`,
			expectedDetail: "Falha na validação",
			expectedErrors: 1,
		},
		{
			name:           "não autorizado",
			status:         http.StatusUnauthorized,
			body:           `{"title":"Não autorizado","status":401,"detail":"Token inválido"}`,
			expectedDetail: "Token inválido",
		},
		{
			name:           "corpo que não é JSON",
			status:         http.StatusBadGateway,
			body:           `<html>bad gateway</html>`,
			expectedDetail: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.Instructors().Create(context.Background(), dto.CreateInstructorRequest{UserID: 1})
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("esperava *APIError, obteve %v", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("esperava status %d, obteve %d", tt.status, apiErr.Status)
			}
			if apiErr.Detail != tt.expectedDetail {
				t.Errorf("esperava detalhe '%s', obteve '%s'", tt.expectedDetail, apiErr.Detail)
			}
			if len(apiErr.Errors) != tt.expectedErrors {
				t.Errorf("esperava %d erros de campo, obteve %d", tt.expectedErrors, len(apiErr.Errors))
			}
		})
	}
}
