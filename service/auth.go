package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kinobilet-cli/model"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return "", errors.New("email and password are required")
	}
	endpoint := fmt.Sprintf("%s/auth/login", c.baseURL)

	var auth model.AuthResponse
	if err := c.postJSON(ctx, endpoint, "", creds, &auth); err != nil {
		return "", err
	}
	if auth.AccessToken == "" {
		return "", errors.New("login response carried no token")
	}
	return auth.AccessToken, nil
}

// Register creates an account and returns its access token.
func (c *Client) Register(ctx context.Context, reg Registration) (string, error) {
	if strings.TrimSpace(reg.Email) == "" || reg.Password == "" {
		return "", errors.New("email and password are required")
	}
	endpoint := fmt.Sprintf("%s/auth/register", c.baseURL)

	var auth model.AuthResponse
	if err := c.postJSON(ctx, endpoint, "", reg, &auth); err != nil {
		return "", err
	}
	if auth.AccessToken == "" {
		return "", errors.New("register response carried no token")
	}
	return auth.AccessToken, nil
}

// CurrentUser fetches the profile behind a token.
func (c *Client) CurrentUser(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, errors.New("auth token is required")
	}
	endpoint := fmt.Sprintf("%s/users/me", c.baseURL)

	var user model.User
	if err := c.getJSON(ctx, endpoint, token, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}
