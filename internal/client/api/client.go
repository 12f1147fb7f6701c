// Package api is the HTTP client for the contacts server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
	"github.com/dmitrijs2005/contactkeeper/internal/common"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/users", "", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth", "", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Me returns the user the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth", token, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListContacts(ctx context.Context, token string) ([]models.Contact, error) {
	var out []models.Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateContact(ctx context.Context, token string, in models.ContactFields) (*models.Contact, error) {
	var out models.Contact
	if err := c.do(ctx, http.MethodPost, "/api/contacts", token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateContact(ctx context.Context, token, id string, in models.ContactFields) (*models.Contact, error) {
	var out models.Contact
	if err := c.do(ctx, http.MethodPut, "/api/contacts/"+url.PathEscape(id), token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact returns the server's confirmation message.
func (c *Client) DeleteContact(ctx context.Context, token, id string) (string, error) {
	var out msgResponse
	if err := c.do(ctx, http.MethodDelete, "/api/contacts/"+url.PathEscape(id), token, nil, &out); err != nil {
		return "", err
	}
	return out.Msg, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthTokenHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		return NewError(resp.StatusCode, eb.message())
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
