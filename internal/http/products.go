package http

import (
	"errors"
	"net/http"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// ProductsHandler serves the /api/products routes.
type ProductsHandler struct {
	ProductService *service.ProductService
}

type productResponse struct {
	Message string         `json:"message"`
	Product domain.Product `json:"product"`
}

// HandleList godoc
//
//	@Summary	List the product catalog
//	@Tags		Products
//	@Produce	json
//	@Success	200	{array}		domain.Product
//	@Failure	500	{object}	map[string]string	"error"
//	@Router		/api/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.ListProducts(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("listing products failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	httpx.WriteJSON(w, http.StatusOK, products)
}

// HandleGet godoc
//
//	@Summary	Fetch a single product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		string	true	"Product id"
//	@Success	200	{object}	domain.Product
//	@Failure	404	{object}	map[string]string	"error"
//	@Router		/api/products/{id} [get].
func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	product, err := h.ProductService.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		slogx.FromContext(r.Context()).Error("fetching product failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, product)
}

// HandleCreate godoc
//
//	@Summary	Create a product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.Product	true	"Product"
//	@Success	201		{object}	productResponse
//	@Failure	400		{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.Product
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.ProductService.CreateProduct(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Product name and image are required")
		case errors.Is(err, service.ErrProductExists):
			httpx.WriteError(w, http.StatusBadRequest, "Product ID already exists")
		default:
			slogx.FromContext(r.Context()).Error("creating product failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to save product")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, productResponse{Message: "Product created", Product: product})
}

// HandleUpdate godoc
//
//	@Summary	Update a product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Product id"
//	@Param		body	body		domain.Product	true	"Product"
//	@Success	200		{object}	productResponse
//	@Failure	404		{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/products/{id} [put].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req domain.Product
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.ID = r.PathValue("id")

	product, err := h.ProductService.UpdateProduct(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Product name is required")
		case errors.Is(err, service.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
		default:
			slogx.FromContext(r.Context()).Error("updating product failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to update product")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, productResponse{Message: "Product updated", Product: product})
}

// HandleDelete godoc
//
//	@Summary	Delete a product
//	@Tags		Products
//	@Produce	json
//	@Param		id	path		string				true	"Product id"
//	@Success	200	{object}	map[string]string	"message"
//	@Failure	404	{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/products/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ProductService.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		slogx.FromContext(r.Context()).Error("deleting product failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
