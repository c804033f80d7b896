package storesdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoCachedSession is returned by ResumeSession when the cache is
	// absent, empty, or unreadable.
	ErrNoCachedSession = errors.New("storesdk: no cached session")

	// ErrNotAuthenticated is returned by Session methods after logout.
	ErrNotAuthenticated = errors.New("storesdk: not authenticated")
)

// APIError is the server's error envelope: an HTTP status code plus the
// short error string from the response body.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("storefront api: %d %s", e.StatusCode, e.Message)
}

// IsAuthError reports whether err is a 401 or 403 API response, meaning
// the caller's credentials are missing, invalid, or expired and the only
// recovery is to re-authenticate.
func IsAuthError(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}

// parseErrorResponse converts a non-2xx HTTP response into a typed
// *APIError. Returns nil for success responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		apiErr.StatusCode = resp.StatusCode
		return &apiErr
	}

	// Fallback: create a generic error from the status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
