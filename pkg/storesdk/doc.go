/*
Package storesdk provides a client SDK for the storefront API.

# Overview

The package is organized around two main types:

  - Client: unauthenticated operations (signup, login, catalog reads,
    password reset, health) and the entry point for creating Sessions
  - Session: authenticated operations with automatic access token refresh

Create a Client to browse the catalog and authenticate:

	client := storesdk.NewClient("https://shop.example.com")

	products, err := client.ListProducts(ctx)

	session, err := client.Login(ctx, "ana@example.com", "password")

The Client's HTTP client carries a cookie jar, so the refresh token set
by signup/login travels automatically on refresh calls. The access token
is held in memory on the Session and attached as a bearer credential to
authenticated requests.

# Automatic Token Refresh

Access tokens are short-lived. Session methods call getValidToken
internally, which checks the token's expiry (with a 30-second buffer)
and silently calls the refresh endpoint when it has run out. A failed
refresh means the refresh token itself has expired; the caller must
re-authenticate.

# Session Tracking

Tracker layers proactive renewal on top of a Session. It decodes the
access token's expiry locally, schedules a one-shot warning timer for
one minute before expiry, and either renews silently or surfaces the
OnExpiring callback so an interactive client can prompt the user. Any
renewal failure is a hard logout; there is no retry loop.

	tracker := storesdk.NewTracker(session)
	tracker.OnSessionEnd = func() { fmt.Println("session expired, log in again") }
	tracker.Start()
	defer tracker.Stop()

# Durable Session State

Cache persists the public identity and access token to disk so a
restarted client can rehydrate without a network round trip:

	client.Cache = storesdk.NewCache(path)
	session, err := client.ResumeSession()

The cached state is advisory only. The refresh cookie is not persisted,
so a resumed session whose access token has expired cannot refresh and
degrades to logged out.

# Error Handling

Server errors decode into *APIError carrying the HTTP status and the
short error string from the response body. IsAuthError reports whether
an error means the caller should re-authenticate.
*/
package storesdk
