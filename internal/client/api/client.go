// Package api is the typed REST client for the blog platform. It
// decodes only the documented response envelope and fails loudly on
// any other shape.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the blog platform REST API. The bearer token is
// pulled from a supplier func on every request so the session object
// stays the single owner of the credential.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
}

// New creates a Client for baseURL. tokenFn may return an empty string
// for unauthenticated requests; it must not be nil.
func New(baseURL string, tokenFn func() string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		token:   tokenFn,
	}
}

// User is the profile shape returned by the auth endpoints.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Blog is the wire shape of a blog document.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Status    string    `json:"status"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SaveBlogInput is the request body for draft and publish calls. ID is
// empty when creating a new blog.
type SaveBlogInput struct {
	ID      string   `json:"id,omitempty"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// StatusError is a non-2xx response with the server's message.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
}

// envelope mirrors the documented response shape. Success is a pointer
// so a missing field is distinguishable from false.
type envelope struct {
	Success *bool           `json:"success"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if env.Success == nil {
		return nil, fmt.Errorf("malformed response envelope: missing success field")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Message: env.Message}
	}
	if !*env.Success {
		return nil, fmt.Errorf("malformed response: success=false with status %d", resp.StatusCode)
	}

	return &env, nil
}

func decodeUser(env *envelope) (User, error) {
	if env.User == nil {
		return User{}, fmt.Errorf("malformed response envelope: missing user field")
	}
	var user User
	if err := json.Unmarshal(env.User, &user); err != nil {
		return User{}, fmt.Errorf("failed to decode user: %w", err)
	}
	return user, nil
}

func decodeBlog(env *envelope) (Blog, error) {
	if env.Data == nil {
		return Blog{}, fmt.Errorf("malformed response envelope: missing data field")
	}
	var blog Blog
	if err := json.Unmarshal(env.Data, &blog); err != nil {
		return Blog{}, fmt.Errorf("failed to decode blog: %w", err)
	}
	return blog, nil
}

// Register creates an account and returns the session token with the
// profile.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, User, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", User{}, err
	}
	if env.Token == "" {
		return "", User{}, fmt.Errorf("malformed response envelope: missing token field")
	}
	user, err := decodeUser(env)
	if err != nil {
		return "", User{}, err
	}
	return env.Token, user, nil
}

// Login exchanges credentials for a session token and the profile.
func (c *Client) Login(ctx context.Context, email, password string) (string, User, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", User{}, err
	}
	if env.Token == "" {
		return "", User{}, fmt.Errorf("malformed response envelope: missing token field")
	}
	user, err := decodeUser(env)
	if err != nil {
		return "", User{}, err
	}
	return env.Token, user, nil
}

// Me returns the profile behind the current token.
func (c *Client) Me(ctx context.Context) (User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return User{}, err
	}
	return decodeUser(env)
}

// ListBlogs returns every blog, newest update first.
func (c *Client) ListBlogs(ctx context.Context) ([]Blog, error) {
	env, err := c.do(ctx, http.MethodGet, "/blogs", nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("malformed response envelope: missing data field")
	}
	var blogs []Blog
	if err := json.Unmarshal(env.Data, &blogs); err != nil {
		return nil, fmt.Errorf("failed to decode blogs: %w", err)
	}
	return blogs, nil
}

// GetBlog returns a single blog by identifier.
func (c *Client) GetBlog(ctx context.Context, id string) (Blog, error) {
	env, err := c.do(ctx, http.MethodGet, "/blogs/"+id, nil)
	if err != nil {
		return Blog{}, err
	}
	return decodeBlog(env)
}

// SaveDraft creates or updates a draft and returns the stored blog.
func (c *Client) SaveDraft(ctx context.Context, in SaveBlogInput) (Blog, error) {
	env, err := c.do(ctx, http.MethodPost, "/blogs/draft", in)
	if err != nil {
		return Blog{}, err
	}
	return decodeBlog(env)
}

// Publish creates or updates a blog with status published.
func (c *Client) Publish(ctx context.Context, in SaveBlogInput) (Blog, error) {
	env, err := c.do(ctx, http.MethodPost, "/blogs/publish", in)
	if err != nil {
		return Blog{}, err
	}
	return decodeBlog(env)
}

// DeleteBlog permanently removes a blog owned by the caller.
func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/blogs/"+id, nil)
	return err
}
