package domain

import "time"

// Announcement is a storefront banner message managed from the admin panel.
type Announcement struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}
