package api

import (
	"context"
	"errors"
	"net/http"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone,omitempty"`
	Password  string   `json:"password"`
	UserType  UserType `json:"userType"`
}

// Login exchanges credentials for a session. loginId is an email or phone.
func (c *Client) Login(ctx context.Context, loginID, password string) (*AuthResponse, error) {
	if loginID == "" || password == "" {
		return nil, errors.New("login: loginId and password are required")
	}
	var out AuthResponse
	body := map[string]string{"loginId": loginID, "password": password}
	if err := c.Do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates an account and returns the fresh session.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the account behind the attached token.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.Do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// UpdateProfile saves profile fields server-side and returns the merged user.
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]any) (*User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.Do(ctx, http.MethodPut, "/users/profile", nil, fields, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
