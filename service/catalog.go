package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"kinobilet-cli/model"
)

const (
	// DefaultPage is the first page index the API recognizes.
	DefaultPage = 0

	SessionPageSize = 50
	FilmPageSize    = 20
)

// Films fetches one page of the film catalog.
func (c *Client) Films(ctx context.Context, page int, size int) ([]model.Film, error) {
	endpoint := fmt.Sprintf("%s/films?%s", c.baseURL, pageQuery(page, size).Encode())

	var result model.Page[model.Film]
	if err := c.getJSON(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Sessions fetches the sessions scheduled for a film.
func (c *Client) Sessions(ctx context.Context, filmId string) ([]model.Session, error) {
	if filmId == "" {
		return nil, errors.New("film id is required")
	}
	query := pageQuery(DefaultPage, SessionPageSize)
	query.Set("filmId", filmId)
	endpoint := fmt.Sprintf("%s/sessions?%s", c.baseURL, query.Encode())

	var result model.Page[model.Session]
	if err := c.getJSON(ctx, endpoint, "", &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// HallPlan fetches the fixed seat layout of a hall.
func (c *Client) HallPlan(ctx context.Context, hallId string) (model.HallPlan, error) {
	if hallId == "" {
		return model.HallPlan{}, errors.New("hall id is required")
	}
	endpoint := fmt.Sprintf("%s/halls/%s/plan", c.baseURL, url.PathEscape(hallId))

	var plan model.HallPlan
	if err := c.getJSON(ctx, endpoint, "", &plan); err != nil {
		return model.HallPlan{}, err
	}
	return plan, nil
}

// SessionTickets fetches the current per-seat ticket records of a session.
func (c *Client) SessionTickets(ctx context.Context, sessionId string) ([]model.Ticket, error) {
	if sessionId == "" {
		return nil, errors.New("session id is required")
	}
	endpoint := fmt.Sprintf("%s/sessions/%s/tickets", c.baseURL, url.PathEscape(sessionId))

	var tickets []model.Ticket
	if err := c.getJSON(ctx, endpoint, "", &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

func pageQuery(page int, size int) url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))
	return query
}
