package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bettybooth/bettybooth/internal/client/models"
)

// CurrentSessionID addresses the session attached to the request token.
const CurrentSessionID = "current"

// Identity is the contract the session manager needs from the identity
// backend. Sessions are opaque backend records; the client never inspects
// the secret beyond storing and replaying it.
type Identity interface {
	CreateAccount(ctx context.Context, email, password, name string) (*models.User, error)
	CreateSession(ctx context.Context, email, password string) (*models.Session, error)
	GetSession(ctx context.Context, id string) (*models.Session, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteSessions(ctx context.Context) error
	GetAccount(ctx context.Context) (*models.User, error)
}

type createAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (c *Client) CreateAccount(ctx context.Context, email, password, name string) (*models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPost, "/account", createAccountRequest{
		Email:    email,
		Password: password,
		Name:     name,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type createSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateSession signs in with email/password. The returned session secret is
// installed on the client so subsequent requests are authenticated.
func (c *Client) CreateSession(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodPost, "/account/sessions", createSessionRequest{
		Email:    email,
		Password: password,
	}, &s); err != nil {
		return nil, err
	}
	if s.Secret != "" {
		c.SetSession(s.Secret)
	}
	return &s, nil
}

// GetSession fetches a session by id; use CurrentSessionID to revalidate the
// session belonging to the installed token.
func (c *Client) GetSession(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	if err := c.do(ctx, http.MethodGet, "/account/sessions/"+url.PathEscape(id), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/account/sessions/"+url.PathEscape(id), nil, nil)
}

// DeleteSessions ends every session of the authenticated account. Used before
// sign-in to avoid piling up concurrent sessions for the same user.
func (c *Client) DeleteSessions(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/account/sessions", nil, nil)
}

func (c *Client) GetAccount(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/account", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
