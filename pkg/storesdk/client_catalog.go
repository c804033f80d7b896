package storesdk

import (
	"context"
	"net/http"
)

// ListProducts retrieves the full product catalog. No authentication
// required.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/products", nil)
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := decodeJSON(resp, &products, http.StatusOK); err != nil {
		return nil, err
	}

	return products, nil
}

// GetProduct retrieves a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (Product, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/products/"+id, nil)
	if err != nil {
		return Product{}, err
	}

	var product Product
	if err := decodeJSON(resp, &product, http.StatusOK); err != nil {
		return Product{}, err
	}

	return product, nil
}

// ListAnnouncements retrieves all storefront announcements.
func (c *Client) ListAnnouncements(ctx context.Context) ([]Announcement, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/announcements", nil)
	if err != nil {
		return nil, err
	}

	var announcements []Announcement
	if err := decodeJSON(resp, &announcements, http.StatusOK); err != nil {
		return nil, err
	}

	return announcements, nil
}
