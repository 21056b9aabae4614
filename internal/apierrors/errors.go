// Package apierrors defines caller-facing errors carrying an HTTP
// status code alongside the message returned to the client.
package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is an error with a fixed HTTP status and a client-safe
// message.
type APIError struct {
	HTTPCode int
	Message  string
}

func (e *APIError) Error() string {
	return e.Message
}

// New creates an APIError with an arbitrary status and message.
func New(code int, message string) *APIError {
	return &APIError{HTTPCode: code, Message: message}
}

// NewErrEmailTaken reports a registration attempt with an email that is
// already in use.
func NewErrEmailTaken(email string) *APIError {
	return New(http.StatusBadRequest, fmt.Sprintf("email %s is already registered", email))
}

// NewErrUsernameTaken reports a registration attempt with a username
// that is already in use.
func NewErrUsernameTaken(username string) *APIError {
	return New(http.StatusBadRequest, fmt.Sprintf("username %s is already taken", username))
}

// NewErrUserExists covers the race where a duplicate slips past the
// pre-checks and the insert hits the unique constraint.
func NewErrUserExists() *APIError {
	return New(http.StatusBadRequest, "user with this email or username already exists")
}

// NewErrInvalidCredentials reports a failed login. The message does not
// reveal whether the email or the password was wrong.
func NewErrInvalidCredentials() *APIError {
	return New(http.StatusUnauthorized, "invalid credentials")
}

// NewErrUserNotFound reports that the authenticated user no longer
// exists.
func NewErrUserNotFound() *APIError {
	return New(http.StatusUnauthorized, "user not found")
}

// NewErrInvalidBlogID reports an identifier that is not 24 hex
// characters.
func NewErrInvalidBlogID() *APIError {
	return New(http.StatusBadRequest, "Invalid blog ID format")
}

// NewErrBlogNotFound reports a well-formed identifier with no matching
// blog.
func NewErrBlogNotFound() *APIError {
	return New(http.StatusNotFound, "Blog not found")
}

// NewErrNotBlogOwner reports a mutation attempt by a caller that does
// not own the blog. verb is "edit" or "delete".
func NewErrNotBlogOwner(verb string) *APIError {
	return New(http.StatusForbidden, fmt.Sprintf("You are not authorized to %s this blog", verb))
}
