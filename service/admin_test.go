package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCreateFilm_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/films" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			t.Fatalf("unexpected auth header: %q", r.Header.Get("Authorization"))
		}
		var input FilmInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if input.Title != "Solaris" || input.DurationMinutes != 167 {
			t.Fatalf("unexpected body: %+v", input)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "m1", "title": "Solaris"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	film, err := client.CreateFilm(context.Background(), "tok-1", FilmInput{
		Title:           "Solaris",
		Genre:           "Sci-Fi",
		DurationMinutes: 167,
		AgeRating:       "12+",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if film.Id != "m1" {
		t.Fatalf("unexpected film: %+v", film)
	}
}

func TestCreateFilm_RequiresTitle(t *testing.T) {
	client := NewClient(nil, "http://example.invalid")
	if _, err := client.CreateFilm(context.Background(), "tok-1", FilmInput{}); err == nil {
		t.Fatal("expected error for missing title")
	}
}

func TestUpdateSeatCategory_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/seat-categories/c1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var input CategoryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if input.PriceCents != 45000 {
			t.Fatalf("unexpected body: %+v", input)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "c1", "name": "VIP", "priceCents": 45000}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	category, err := client.UpdateSeatCategory(context.Background(), "tok-1", "c1", CategoryInput{
		Name:       "VIP",
		PriceCents: 45000,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if category.PriceCents != 45000 {
		t.Fatalf("unexpected category: %+v", category)
	}
}

func TestSeatCategories_Paging(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/seat-categories" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("page") != "0" || query.Get("size") != "20" {
			t.Fatalf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"id": "c1", "name": "Standard", "priceCents": 30000}]}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	categories, err := client.SeatCategories(context.Background(), DefaultPage, AdminCategoryPageSize)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Standard" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestCreateSession_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/sessions" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var input SessionInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if input.FilmId != "m1" || input.HallId != "h1" {
			t.Fatalf("unexpected body: %+v", input)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "s1", "filmId": "m1", "hallId": "h1", "startAt": "2025-01-01T10:00:00Z"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	session, err := client.CreateSession(context.Background(), "tok-1", SessionInput{
		FilmId:  "m1",
		HallId:  "h1",
		StartAt: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if session.Id != "s1" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestDeleteSession_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/sessions/s1" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL)

	if err := client.DeleteSession(context.Background(), "tok-1", "s1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
