package domain

import "time"

// Product is a catalog entry. The image is a URL into the external media
// host; this service never stores image bytes.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"` // minor currency units
	Image       string    `json:"image"`
	Category    string    `json:"category,omitempty"`
	Sizes       []string  `json:"sizes,omitempty"`
	InStock     bool      `json:"inStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
