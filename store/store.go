package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"kinobilet-cli/model"
)

const (
	filmCacheTTL   = 10 * time.Minute
	maxRecentFilms = 8
)

type cacheEnvelope[T any] struct {
	UpdatedAt time.Time `json:"updated_at"`
	Data      T         `json:"data"`
}

// StoredAuth is the persisted replacement for the browser token storage
// the web client used. Operations never read it ambiently; callers load
// it once and pass the token explicitly.
type StoredAuth struct {
	Token   string    `json:"token"`
	Email   string    `json:"email"`
	SavedAt time.Time `json:"saved_at"`
}

type RecentFilm struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type filmHistory struct {
	Films []RecentFilm `json:"films"`
}

func SaveAuth(auth StoredAuth) error {
	if strings.TrimSpace(auth.Token) == "" {
		return errors.New("token is required")
	}
	path, err := configPath("auth.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	auth.SavedAt = time.Now()
	payload, err := json.MarshalIndent(auth, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}

// LoadAuth returns the persisted credentials, if any. A missing file is
// not an error; the zero value means "not logged in".
func LoadAuth() (StoredAuth, error) {
	path, err := configPath("auth.json")
	if err != nil {
		return StoredAuth{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return StoredAuth{}, nil
		}
		return StoredAuth{}, err
	}
	var auth StoredAuth
	if err := json.Unmarshal(data, &auth); err != nil {
		return StoredAuth{}, errors.New("invalid auth file format")
	}
	return auth, nil
}

func ClearAuth() error {
	path, err := configPath("auth.json")
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func LoadFilmCache() ([]model.Film, bool, error) {
	path, err := cachePath("films.json")
	if err != nil {
		return nil, false, err
	}
	cache, err := loadCache[[]model.Film](path)
	if err != nil {
		return nil, false, err
	}
	return cache.Data, time.Since(cache.UpdatedAt) <= filmCacheTTL, nil
}

func SaveFilmCache(films []model.Film) error {
	path, err := cachePath("films.json")
	if err != nil {
		return err
	}
	return saveCache(path, films)
}

func LoadRecentFilms() ([]RecentFilm, error) {
	path, err := configPath("history.json")
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var history filmHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid film history format")
	}
	return history.Films, nil
}

func RememberFilm(film model.Film) error {
	history, _ := LoadRecentFilms()
	next := []RecentFilm{{ID: film.Id, Title: film.Title}}

	for _, existing := range history {
		if existing.ID == film.Id && existing.ID != "" {
			continue
		}
		if existing.Title != "" && strings.EqualFold(existing.Title, film.Title) {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentFilms {
			break
		}
	}

	path, err := configPath("history.json")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(filmHistory{Films: next}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func loadCache[T any](path string) (cacheEnvelope[T], error) {
	var cache cacheEnvelope[T]
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cache, nil
		}
		return cache, err
	}
	if err := json.Unmarshal(data, &cache); err != nil {
		return cache, err
	}
	return cache, nil
}

func saveCache[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cache := cacheEnvelope[T]{
		UpdatedAt: time.Now(),
		Data:      data,
	}
	payload, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kinobilet-cli", name), nil
}

func cachePath(name string) (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "kinobilet-cli", name), nil
}
