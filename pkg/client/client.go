// Package client is a typed HTTP client for the job board admin API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const adminRole = "admin"

// ErrNotSignedIn is returned by protected calls made with an empty session.
var ErrNotSignedIn = errors.New("not signed in")

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	StatusCode int
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Fields     []FieldError `json:"errors"`
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Client talks to one API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client, e.g. to set transport options.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a client for baseURL, e.g. "http://localhost:5001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Signin authenticates and stores the token in session. Non-admin accounts are refused.
func (c *Client) Signin(ctx context.Context, session *Session, email, password string) (User, error) {
	return c.authenticate(ctx, session, "/signin", nil, map[string]string{"email": email, "password": password})
}

// AdminSignup registers an administrator and signs it in. inviteCode may be empty.
func (c *Client) AdminSignup(ctx context.Context, session *Session, name, email, password, inviteCode string) (User, error) {
	var header http.Header
	if inviteCode != "" {
		header = http.Header{"X-Admin-Invite": []string{inviteCode}}
	}
	return c.authenticate(ctx, session, "/admin/signup", header, map[string]string{
		"name": name, "email": email, "password": password,
	})
}

func (c *Client) authenticate(ctx context.Context, session *Session, path string, header http.Header, body any) (User, error) {
	var resp authResponse
	if err := c.do(ctx, nil, http.MethodPost, path, header, body, &resp); err != nil {
		return User{}, err
	}
	if resp.User.Role != adminRole {
		return User{}, &APIError{StatusCode: http.StatusForbidden, Code: "FORBIDDEN", Message: "Access denied: Admin only"}
	}
	session.set(resp.Token, resp.User, resp.ExpiresAt)
	return resp.User, nil
}

// Dashboard fetches the overview counters and recent jobs.
func (c *Client) Dashboard(ctx context.Context, session *Session) (Dashboard, error) {
	var out Dashboard
	err := c.do(ctx, session, http.MethodGet, "/dashboard", nil, nil, &out)
	return out, err
}

// ListCompanies returns companies matching q (all when empty).
func (c *Client) ListCompanies(ctx context.Context, session *Session, q string) ([]Company, error) {
	var out listResponse[Company]
	err := c.do(ctx, session, http.MethodGet, withQuery("/companies", url.Values{"q": {q}}), nil, nil, &out)
	return out.Items, err
}

// CreateCompany creates a company.
func (c *Client) CreateCompany(ctx context.Context, session *Session, in CompanyInput) (Company, error) {
	var out Company
	err := c.do(ctx, session, http.MethodPost, "/companies", nil, in, &out)
	return out, err
}

// ListJobs returns jobs matching the query.
func (c *Client) ListJobs(ctx context.Context, session *Session, q JobQuery) ([]Job, error) {
	var out listResponse[Job]
	path := withQuery("/jobs", url.Values{"q": {q.Query}, "status": {q.Status}, "companyId": {q.CompanyID}})
	err := c.do(ctx, session, http.MethodGet, path, nil, nil, &out)
	return out.Items, err
}

// ListUsers returns users matching q.
func (c *Client) ListUsers(ctx context.Context, session *Session, q string) ([]User, error) {
	var out listResponse[User]
	err := c.do(ctx, session, http.MethodGet, withQuery("/users", url.Values{"q": {q}}), nil, nil, &out)
	return out.Items, err
}

// SetUserBlocked blocks or unblocks a user.
func (c *Client) SetUserBlocked(ctx context.Context, session *Session, userID string, blocked bool) (User, error) {
	var out User
	path := "/users/" + url.PathEscape(userID) + "/status"
	err := c.do(ctx, session, http.MethodPatch, path, nil, map[string]bool{"blocked": blocked}, &out)
	return out, err
}

// do sends the request. A non-nil session marks the call as protected.
func (c *Client) do(ctx context.Context, session *Session, method, path string, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != nil {
		token := session.Token()
		if token == "" {
			return ErrNotSignedIn
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		if resp.StatusCode == http.StatusUnauthorized && session != nil {
			session.Clear()
		}
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func withQuery(path string, values url.Values) string {
	for k, v := range values {
		if len(v) == 0 || v[0] == "" {
			values.Del(k)
		}
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
