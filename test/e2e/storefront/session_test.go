package storefront_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sumansi/storefront/pkg/storesdk"
)

func TestSessionLifecycle(t *testing.T) {
	client, box := setupStorefront(t, 0)
	session := signupAna(t, client)

	t.Run("signup sends a welcome email", func(t *testing.T) {
		msg := box.wait(t, testEmail, "Welcome")
		require.Contains(t, msg.HTML, testName)
	})

	t.Run("duplicate signup is rejected", func(t *testing.T) {
		_, err := client.Signup(t.Context(), storesdk.SignupRequest{
			Name: "Imposter", Email: testEmail, Phone: "0400000001", Password: "other-pass",
		})
		var apiErr *storesdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Equal(t, "Email already exists", apiErr.Message)
	})

	t.Run("profile update round trips through the bearer token", func(t *testing.T) {
		user, err := session.UpdateProfile(t.Context(), storesdk.ProfileUpdateRequest{
			Name: "Ana Silva", Phone: "0400999999", Avatar: "ana.png",
		})
		require.NoError(t, err)
		require.Equal(t, "Ana Silva", user.Name)
		require.Equal(t, "0400999999", user.Phone)
		require.Equal(t, testEmail, user.Email)
	})

	t.Run("users listing never exposes credentials", func(t *testing.T) {
		users, err := session.ListUsers(t.Context())
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.NotEmpty(t, users[0].UserID)
	})

	t.Run("refresh is repeatable against the same cookie", func(t *testing.T) {
		require.NoError(t, session.Refresh(t.Context()))
		require.NoError(t, session.Refresh(t.Context()))
		require.True(t, session.Authenticated())
	})

	t.Run("logout then login restores access", func(t *testing.T) {
		session.Logout()
		require.False(t, session.Authenticated())

		again, err := client.Login(t.Context(), testEmail, testPassword)
		require.NoError(t, err)
		require.Equal(t, testEmail, again.User().Email)

		_, err = again.ListUsers(t.Context())
		require.NoError(t, err)
	})

	t.Run("login with a wrong password gives the generic error", func(t *testing.T) {
		_, err := client.Login(t.Context(), testEmail, "not-the-password")
		var apiErr *storesdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "Invalid credentials", apiErr.Message)
	})
}

func TestTrackerKeepsSessionAlive(t *testing.T) {
	// Short-lived access tokens so the tracker has to work for a living
	client, _ := setupStorefront(t, 2*time.Second)
	session := signupAna(t, client)

	renewed := make(chan struct{}, 1)
	tracker := storesdk.NewTracker(session)
	tracker.WarnBefore = 1900 * time.Millisecond
	tracker.OnRenewed = func() { renewed <- struct{}{} }
	tracker.Start()
	defer tracker.Stop()

	select {
	case <-renewed:
	case <-time.After(3 * time.Second):
		t.Fatal("tracker never renewed against the live service")
	}

	// The renewed token is accepted by the authorization guard
	_, err := session.ListUsers(t.Context())
	require.NoError(t, err)
	require.True(t, session.Authenticated())
}

func TestResumedSessionStillVerifiedServerSide(t *testing.T) {
	client, _ := setupStorefront(t, 0)

	cache := storesdk.NewCache(t.TempDir() + "/session.json")
	client.Cache = cache
	signupAna(t, client)

	// A fresh client process rehydrates from the cache and the server
	// still accepts the cached access token on its own merits.
	restartedClient := storesdk.NewClient(client.BaseURL)
	restartedClient.Cache = cache

	restarted, err := restartedClient.ResumeSession()
	require.NoError(t, err)

	users, err := restarted.ListUsers(t.Context())
	require.NoError(t, err)
	require.Len(t, users, 1)
}
