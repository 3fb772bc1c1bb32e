package authclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/edumetry/staffdesk-backend/internal/authclient"
)

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]string
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if payload["employee_id"] != "E1001" || payload["password"] != "secret" {
			t.Fatalf("credentials not forwarded: %v", payload)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "opaque-token",
			"user": map[string]string{
				"employee_id": "E1001",
				"email":       "asha@example.edu",
				"name":        "Asha Verma",
				"department":  "Physics",
				"role":        "HOD",
			},
		})
	}))
	defer srv.Close()

	client := authclient.New(srv.URL, time.Second, zerolog.Nop())
	result, err := client.Login(context.Background(), "E1001", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token != "opaque-token" || result.User.Role != "HOD" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestLoginRejectedSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Employee ID or password is incorrect"})
	}))
	defer srv.Close()

	client := authclient.New(srv.URL, time.Second, zerolog.Nop())
	_, err := client.Login(context.Background(), "E1001", "wrong")

	var upstream *authclient.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", upstream.StatusCode)
	}
	if upstream.Message != "Employee ID or password is incorrect" {
		t.Fatalf("upstream message not relayed: %q", upstream.Message)
	}
}

func TestLoginRejectedWithoutBodyGetsDefaultMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := authclient.New(srv.URL, time.Second, zerolog.Nop())
	_, err := client.Login(context.Background(), "E1001", "secret")

	var upstream *authclient.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.Message == "" {
		t.Fatalf("expected a fallback message")
	}
}

func TestLoginTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Refuse connections.

	client := authclient.New(srv.URL, time.Second, zerolog.Nop())
	_, err := client.Login(context.Background(), "E1001", "secret")
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var upstream *authclient.UpstreamError
	if errors.As(err, &upstream) {
		t.Fatalf("transport failure must not be an UpstreamError")
	}
}
