package handler

import (
	"net/http"
	"testing"

	"github.com/tripforge/tripforge/internal/handler/dto"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22hunter",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", rec.Code, rec.Body.String())
	}
	reg := decodeJSON[dto.AuthResponse](t, rec)
	if reg.Token == "" || reg.UserID == "" {
		t.Fatalf("incomplete auth response: %+v", reg)
	}

	rec = env.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "hunter22hunter",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	login := decodeJSON[dto.AuthResponse](t, rec)
	if login.UserID != reg.UserID {
		t.Errorf("login user %q, registered %q", login.UserID, reg.UserID)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"missing fields", dto.RegisterRequest{}},
		{"bad email", dto.RegisterRequest{Name: "A", Email: "not-an-email", Password: "hunter22hunter"}},
		{"short password", dto.RegisterRequest{Name: "A", Email: "a@b.c", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/register", tt.req)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if resp.Code != "VALIDATION_ERROR" || len(resp.Fields) == 0 {
				t.Errorf("unexpected error payload: %+v", resp)
			}
		})
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	env := newTestEnv(t)

	req := dto.RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "hunter22hunter"}
	if rec := env.do(t, http.MethodPost, "/api/auth/register", req); rec.Code != http.StatusCreated {
		t.Fatalf("first register status = %d", rec.Code)
	}

	rec := env.do(t, http.MethodPost, "/api/auth/register", req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register status = %d, want 400", rec.Code)
	}
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Code != "EMAIL_TAKEN" {
		t.Errorf("code = %q, want EMAIL_TAKEN", resp.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)

	if rec := env.do(t, http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22hunter",
	}); rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}

	for name, req := range map[string]dto.LoginRequest{
		"wrong password": {Email: "ada@example.com", Password: "wrong-password"},
		"unknown email":  {Email: "ghost@example.com", Password: "whatever-pass"},
	} {
		t.Run(name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/login", req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
			resp := decodeJSON[dto.ErrorResponse](t, rec)
			if resp.Code != "INVALID_CREDENTIALS" {
				t.Errorf("code = %q, want INVALID_CREDENTIALS", resp.Code)
			}
		})
	}
}

func TestLoginMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
