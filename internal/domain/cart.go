package domain

import "time"

// CartItem is one line of a user's cart. Items are keyed per user; the
// cart itself has no record of its own.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	ProductID string    `json:"productId"`
	Size      string    `json:"size,omitempty"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}
