package api

import (
	"errors"
	"fmt"
)

// Error taxonomy for every backend interaction. All API failures surface as
// one of these four; nothing escapes as a raw transport error.

// AuthError means the backend rejected the credential (401 or bad login).
// The session is invalidated before this is returned.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "please log in"
	}
	return e.Message
}

// NotFoundError marks a 404. Callers listing collections treat it as an
// empty result, not a failure.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Path)
}

// ValidationError is raised locally, before any network call. Fields maps
// field name to a user-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// RequestError covers everything else: network failures (StatusCode 0) and
// non-401/404 server rejections. Previous client state is preserved so a
// manual retry is safe.
type RequestError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (%d %s)", e.StatusCode, e.Code)
}

func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}

func IsValidation(err error) (map[string]string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
