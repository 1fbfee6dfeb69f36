package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestDoJSON_Non2xxReturnsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	var out map[string]any
	err := client.getJSON(context.Background(), server.URL+"/fail", "", &out)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDoJSON_SingleAttempt(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/flaky", "", &out); err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Fatalf("expected exactly 1 attempt, got %d", attempts)
	}
}

func TestDoJSON_SetsRequestHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Fatalf("unexpected auth header: %q", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Fatal("expected a request id header")
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Fatalf("unexpected accept header: %q", r.Header.Get("Accept"))
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/me", "tok-1", &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestDoJSON_EmptyBodyIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	var out map[string]any
	if err := client.getJSON(context.Background(), server.URL+"/empty", "", &out); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestIsNotFound(t *testing.T) {
	err := &APIError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}
	if !IsNotFound(err) {
		t.Fatal("expected IsNotFound to be true")
	}
	if IsNotFound(context.Canceled) {
		t.Fatal("expected IsNotFound to be false for unrelated error")
	}
}

func TestIsUnauthorized(t *testing.T) {
	err := &APIError{StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized"}
	if !IsUnauthorized(err) {
		t.Fatal("expected IsUnauthorized to be true")
	}
	if IsUnauthorized(&APIError{StatusCode: http.StatusForbidden}) {
		t.Fatal("expected IsUnauthorized to be false for 403")
	}
}
