package domain

import "time"

// WishlistEntry marks a product as wished by a user. Toggling removes an
// existing entry.
type WishlistEntry struct {
	UserID    string    `json:"-"`
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}
