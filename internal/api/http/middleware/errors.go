package middleware

import "errors"

var (
	errMissingAuthHeader   = errors.New("authorization header is required")
	errMalformedAuthHeader = errors.New("authorization header must be a bearer token")
)
