package storesdk

import (
	"context"
	"net/http"
)

// Catalog and announcement writes. Reads are unauthenticated and live
// on the Client.

// CreateProduct adds a product to the catalog. A client-supplied ID is
// honored; otherwise the server generates one.
func (s *Session) CreateProduct(ctx context.Context, product Product) (Product, error) {
	body, err := jsonBody(product)
	if err != nil {
		return Product{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/products", body)
	if err != nil {
		return Product{}, err
	}

	var created productResponse
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return Product{}, err
	}

	return created.Product, nil
}

// UpdateProduct replaces a product's fields.
func (s *Session) UpdateProduct(ctx context.Context, id string, product Product) (Product, error) {
	body, err := jsonBody(product)
	if err != nil {
		return Product{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/products/"+id, body)
	if err != nil {
		return Product{}, err
	}

	var updated productResponse
	if err := decodeJSON(resp, &updated, http.StatusOK); err != nil {
		return Product{}, err
	}

	return updated.Product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *Session) DeleteProduct(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/products/"+id, nil)
	if err != nil {
		return err
	}

	var msg messageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}

// CreateAnnouncement publishes a storefront announcement.
func (s *Session) CreateAnnouncement(ctx context.Context, input AnnouncementInput) (Announcement, error) {
	body, err := jsonBody(input)
	if err != nil {
		return Announcement{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/announcements", body)
	if err != nil {
		return Announcement{}, err
	}

	var created Announcement
	if err := decodeJSON(resp, &created, http.StatusCreated); err != nil {
		return Announcement{}, err
	}

	return created, nil
}

// UpdateAnnouncement replaces an announcement's text and active flag.
func (s *Session) UpdateAnnouncement(ctx context.Context, id string, input AnnouncementInput) (Announcement, error) {
	body, err := jsonBody(input)
	if err != nil {
		return Announcement{}, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/announcements/"+id, body)
	if err != nil {
		return Announcement{}, err
	}

	var updated Announcement
	if err := decodeJSON(resp, &updated, http.StatusOK); err != nil {
		return Announcement{}, err
	}

	return updated, nil
}

// DeleteAnnouncement removes an announcement.
func (s *Session) DeleteAnnouncement(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/announcements/"+id, nil)
	if err != nil {
		return err
	}

	var msg messageResponse
	return decodeJSON(resp, &msg, http.StatusOK)
}
