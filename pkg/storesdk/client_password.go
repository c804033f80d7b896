package storesdk

import (
	"context"
	"net/http"
)

// ForgotPassword requests a password reset link for the given email.
// The server responds identically whether or not the address has an
// account, so success here never confirms account existence.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body, err := jsonBody(map[string]string{"email": email})
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/forgot-password", body)
	if err != nil {
		return err
	}

	var msg messageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

// ResetPassword sets a new password using a token from the emailed
// reset link. Tokens are single-use and expire one hour after issue.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body, err := jsonBody(map[string]string{"password": newPassword})
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/reset-password/"+token, body)
	if err != nil {
		return err
	}

	var msg messageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}
