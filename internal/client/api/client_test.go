package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noToken() string { return "" }

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "user@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"token":   "token123",
			"user":    map[string]any{"id": "64a1b2c3d4e5f60718293a4b", "username": "user"},
		})
	}))
	defer server.Close()

	c := New(server.URL, noToken)

	token, user, err := c.Login(context.Background(), "user@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, "user", user.Username)
}

func TestClient_Login_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "invalid credentials"})
	}))
	defer server.Close()

	c := New(server.URL, noToken)

	_, _, err := c.Login(context.Background(), "user@example.com", "wrong")
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
	assert.Equal(t, "invalid credentials", statusErr.Message)
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "user": map[string]any{"id": "x"}})
	}))
	defer server.Close()

	c := New(server.URL, func() string { return "mytoken" })

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer mytoken", gotAuth)
}

func TestClient_NoHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "count": 0, "data": []any{}})
	}))
	defer server.Close()

	c := New(server.URL, noToken)

	_, err := c.ListBlogs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_ListBlogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"count":   2,
			"data": []map[string]any{
				{"id": "a", "title": "first"},
				{"id": "b", "title": "second"},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, noToken)

	blogs, err := c.ListBlogs(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, "first", blogs[0].Title)
}

func TestClient_SaveDraft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/blogs/draft", r.URL.Path)

		var in SaveBlogInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		require.Equal(t, "Draft", in.Title)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": "64a1b2c3d4e5f60718293a4b", "title": in.Title, "status": "draft"},
		})
	}))
	defer server.Close()

	c := New(server.URL, noToken)

	blog, err := c.SaveDraft(context.Background(), SaveBlogInput{Title: "Draft", Content: "text"})
	require.NoError(t, err)
	assert.Equal(t, "64a1b2c3d4e5f60718293a4b", blog.ID)
	assert.Equal(t, "draft", blog.Status)
}

func TestClient_MalformedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	defer server.Close()

	c := New(server.URL, noToken)

	_, err := c.ListBlogs(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing success field")
}

func TestClient_DeleteBlog(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
	}))
	defer server.Close()

	c := New(server.URL, noToken)

	require.NoError(t, c.DeleteBlog(context.Background(), "64a1b2c3d4e5f60718293a4b"))
}
