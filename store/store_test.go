package store

import (
	"testing"

	"kinobilet-cli/model"
)

func setTestConfigDir(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", root)
	t.Setenv("XDG_CACHE_HOME", root)
}

func TestAuth_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	auth, err := LoadAuth()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if auth.Token != "" {
		t.Fatalf("expected empty token, got %q", auth.Token)
	}

	if err := SaveAuth(StoredAuth{Token: "tok-1", Email: "user@example.com"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	auth, err = LoadAuth()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if auth.Token != "tok-1" || auth.Email != "user@example.com" {
		t.Fatalf("unexpected auth: %+v", auth)
	}
	if auth.SavedAt.IsZero() {
		t.Fatal("expected SavedAt to be set")
	}

	if err := ClearAuth(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	auth, err = LoadAuth()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if auth.Token != "" {
		t.Fatalf("expected token cleared, got %q", auth.Token)
	}
}

func TestSaveAuth_RequiresToken(t *testing.T) {
	setTestConfigDir(t)

	if err := SaveAuth(StoredAuth{Email: "user@example.com"}); err == nil {
		t.Fatal("expected error for empty token")
	}
}

func TestClearAuth_MissingFileIsFine(t *testing.T) {
	setTestConfigDir(t)

	if err := ClearAuth(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestRememberFilm_DedupesAndCaps(t *testing.T) {
	setTestConfigDir(t)

	for i := 0; i < 12; i++ {
		film := model.Film{Id: string(rune('a' + i)), Title: "Film " + string(rune('A'+i))}
		if err := RememberFilm(film); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	if err := RememberFilm(model.Film{Id: "z", Title: "Latest"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := RememberFilm(model.Film{Id: "z", Title: "Latest"}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	recents, err := LoadRecentFilms()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(recents) == 0 || len(recents) > maxRecentFilms {
		t.Fatalf("unexpected history length: %d", len(recents))
	}
	if recents[0].ID != "z" {
		t.Fatalf("expected latest film first, got %+v", recents[0])
	}
	seen := map[string]bool{}
	for _, recent := range recents {
		if seen[recent.ID] {
			t.Fatalf("duplicate entry: %+v", recent)
		}
		seen[recent.ID] = true
	}
}

func TestFilmCache_RoundTrip(t *testing.T) {
	setTestConfigDir(t)

	films, fresh, err := LoadFilmCache()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if fresh || len(films) != 0 {
		t.Fatalf("expected empty stale cache, got fresh=%v films=%d", fresh, len(films))
	}

	want := []model.Film{{Id: "m1", Title: "Film One"}}
	if err := SaveFilmCache(want); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	films, fresh, err = LoadFilmCache()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !fresh {
		t.Fatal("expected fresh cache")
	}
	if len(films) != 1 || films[0].Id != "m1" {
		t.Fatalf("unexpected cache contents: %+v", films)
	}
}
