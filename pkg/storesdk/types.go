package storesdk

import "time"

// User is the public-safe projection of an account. Password hashes and
// reset tokens never appear in API responses.
type User struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// SignupRequest is the payload for registering a new account. All four
// fields are required.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ProfileUpdateRequest carries the mutable profile fields. Name is
// required; phone and avatar replace the stored values as given.
type ProfileUpdateRequest struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Avatar string `json:"avatar"`
}

// Product is a catalog entry. Price is in minor currency units.
type Product struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category,omitempty"`
	Sizes       []string  `json:"sizes,omitempty"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// CartItem is one line in the authenticated user's cart.
type CartItem struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Size      string    `json:"size,omitempty"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// WishlistEntry marks a product the authenticated user has wished.
type WishlistEntry struct {
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

// WishlistStatus is the result of toggling a product's wished state.
type WishlistStatus struct {
	ProductID string `json:"productId"`
	Wished    bool   `json:"wished"`
}

// Announcement is a storefront banner message.
type Announcement struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnnouncementInput is the payload for creating or updating an
// announcement. A nil Active defaults to true on the server.
type AnnouncementInput struct {
	Text   string `json:"text"`
	Active *bool  `json:"active,omitempty"`
}

// HealthResponse is the body of the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// authResponse is the body of successful signup and login calls. The
// refresh token never appears here; it travels only as a cookie.
type authResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type profileResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type productResponse struct {
	Message string  `json:"message"`
	Product Product `json:"product"`
}
