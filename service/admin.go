package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"kinobilet-cli/model"
)

// Admin CRUD surface. All mutating calls are bearer-authed; the server
// enforces the ADMIN role.

const (
	AdminFilmPageSize     = 20
	AdminCategoryPageSize = 20
	AdminSessionPageSize  = 50
)

type FilmInput struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Genre           string `json:"genre"`
	DurationMinutes int    `json:"durationMinutes"`
	AgeRating       string `json:"ageRating"`
	ImageUrl        string `json:"imageUrl,omitempty"`
}

type CategoryInput struct {
	Name       string `json:"name"`
	PriceCents int    `json:"priceCents"`
}

type HallInput struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
}

type SessionInput struct {
	FilmId  string    `json:"filmId"`
	HallId  string    `json:"hallId"`
	StartAt time.Time `json:"startAt"`
}

func (c *Client) CreateFilm(ctx context.Context, token string, input FilmInput) (model.Film, error) {
	if input.Title == "" {
		return model.Film{}, errors.New("film title is required")
	}
	var film model.Film
	err := c.postJSON(ctx, fmt.Sprintf("%s/films", c.baseURL), token, input, &film)
	return film, err
}

func (c *Client) UpdateFilm(ctx context.Context, token string, filmId string, input FilmInput) (model.Film, error) {
	if filmId == "" {
		return model.Film{}, errors.New("film id is required")
	}
	var film model.Film
	err := c.putJSON(ctx, fmt.Sprintf("%s/films/%s", c.baseURL, url.PathEscape(filmId)), token, input, &film)
	return film, err
}

func (c *Client) DeleteFilm(ctx context.Context, token string, filmId string) error {
	if filmId == "" {
		return errors.New("film id is required")
	}
	return c.deleteJSON(ctx, fmt.Sprintf("%s/films/%s", c.baseURL, url.PathEscape(filmId)), token)
}

func (c *Client) SeatCategories(ctx context.Context, page int, size int) ([]model.SeatCategory, error) {
	endpoint := fmt.Sprintf("%s/seat-categories?%s", c.baseURL, pageQuery(page, size).Encode())
	var result model.Page[model.SeatCategory]
	if err := c.getJSON(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) CreateSeatCategory(ctx context.Context, token string, input CategoryInput) (model.SeatCategory, error) {
	if input.Name == "" {
		return model.SeatCategory{}, errors.New("category name is required")
	}
	var category model.SeatCategory
	err := c.postJSON(ctx, fmt.Sprintf("%s/seat-categories", c.baseURL), token, input, &category)
	return category, err
}

func (c *Client) UpdateSeatCategory(ctx context.Context, token string, categoryId string, input CategoryInput) (model.SeatCategory, error) {
	if categoryId == "" {
		return model.SeatCategory{}, errors.New("category id is required")
	}
	var category model.SeatCategory
	err := c.putJSON(ctx, fmt.Sprintf("%s/seat-categories/%s", c.baseURL, url.PathEscape(categoryId)), token, input, &category)
	return category, err
}

func (c *Client) DeleteSeatCategory(ctx context.Context, token string, categoryId string) error {
	if categoryId == "" {
		return errors.New("category id is required")
	}
	return c.deleteJSON(ctx, fmt.Sprintf("%s/seat-categories/%s", c.baseURL, url.PathEscape(categoryId)), token)
}

func (c *Client) Halls(ctx context.Context) ([]model.Hall, error) {
	var result model.Page[model.Hall]
	if err := c.getJSON(ctx, fmt.Sprintf("%s/halls", c.baseURL), "", &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) CreateHall(ctx context.Context, token string, input HallInput) (model.Hall, error) {
	if input.Name == "" {
		return model.Hall{}, errors.New("hall name is required")
	}
	var hall model.Hall
	err := c.postJSON(ctx, fmt.Sprintf("%s/halls", c.baseURL), token, input, &hall)
	return hall, err
}

func (c *Client) AllSessions(ctx context.Context, page int, size int) ([]model.Session, error) {
	endpoint := fmt.Sprintf("%s/sessions?%s", c.baseURL, pageQuery(page, size).Encode())
	var result model.Page[model.Session]
	if err := c.getJSON(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) CreateSession(ctx context.Context, token string, input SessionInput) (model.Session, error) {
	if input.FilmId == "" || input.HallId == "" {
		return model.Session{}, errors.New("film id and hall id are required")
	}
	var session model.Session
	err := c.postJSON(ctx, fmt.Sprintf("%s/sessions", c.baseURL), token, input, &session)
	return session, err
}

func (c *Client) DeleteSession(ctx context.Context, token string, sessionId string) error {
	if sessionId == "" {
		return errors.New("session id is required")
	}
	return c.deleteJSON(ctx, fmt.Sprintf("%s/sessions/%s", c.baseURL, url.PathEscape(sessionId)), token)
}
