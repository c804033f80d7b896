package storesdk

import (
	"context"
	"net/http"
)

// UpdateProfile updates the authenticated user's name, phone and avatar
// and returns the stored profile. The identity comes from the bearer
// token; the server ignores any identity fields in the body.
func (s *Session) UpdateProfile(ctx context.Context, req ProfileUpdateRequest) (User, error) {
	body, err := jsonBody(req)
	if err != nil {
		return User{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/user/profile", body)
	if err != nil {
		return User{}, err
	}

	var profile profileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return User{}, err
	}

	// Keep the cached identity in step with the server's copy
	s.mu.Lock()
	s.user = profile.User
	s.mu.Unlock()
	s.persist()

	return profile.User, nil
}

// ListUsers retrieves the public projection of every account.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/users", nil)
	if err != nil {
		return nil, err
	}

	var users []User
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}

	return users, nil
}
