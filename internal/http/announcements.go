package http

import (
	"errors"
	"net/http"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/pkg/httpx"
	"github.com/sumansi/storefront/pkg/slogx"
)

// AnnouncementsHandler serves the /api/announcements routes.
type AnnouncementsHandler struct {
	AnnouncementService *service.AnnouncementService
}

type announcementRequest struct {
	Text   string `json:"text"`
	Active *bool  `json:"active"`
}

func (req announcementRequest) isActive() bool {
	// New banners default to active unless explicitly disabled.
	return req.Active == nil || *req.Active
}

// HandleList godoc
//
//	@Summary	List announcements
//	@Tags		Announcements
//	@Produce	json
//	@Success	200	{array}		domain.Announcement
//	@Failure	500	{object}	map[string]string	"error"
//	@Router		/api/announcements [get].
func (h *AnnouncementsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.AnnouncementService.ListAnnouncements(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("listing announcements failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch announcements")
		return
	}
	if announcements == nil {
		announcements = []domain.Announcement{}
	}
	httpx.WriteJSON(w, http.StatusOK, announcements)
}

// HandleCreate godoc
//
//	@Summary	Publish an announcement
//	@Tags		Announcements
//	@Accept		json
//	@Produce	json
//	@Param		body	body		announcementRequest	true	"Announcement"
//	@Success	201		{object}	domain.Announcement
//	@Failure	400		{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/announcements [post].
func (h *AnnouncementsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.AnnouncementService.CreateAnnouncement(r.Context(), req.Text, req.isActive())
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			httpx.WriteError(w, http.StatusBadRequest, "Announcement text required")
			return
		}
		slogx.FromContext(r.Context()).Error("creating announcement failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, a)
}

// HandleUpdate godoc
//
//	@Summary	Update an announcement
//	@Tags		Announcements
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Announcement id"
//	@Param		body	body		announcementRequest	true	"Announcement"
//	@Success	200		{object}	domain.Announcement
//	@Failure	404		{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/announcements/{id} [put].
func (h *AnnouncementsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	a, err := h.AnnouncementService.UpdateAnnouncement(r.Context(), r.PathValue("id"), req.Text, req.isActive())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			httpx.WriteError(w, http.StatusBadRequest, "Announcement text required")
		case errors.Is(err, service.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Announcement not found")
		default:
			slogx.FromContext(r.Context()).Error("updating announcement failed", "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, a)
}

// HandleDelete godoc
//
//	@Summary	Delete an announcement
//	@Tags		Announcements
//	@Produce	json
//	@Param		id	path		string				true	"Announcement id"
//	@Success	200	{object}	map[string]string	"message"
//	@Failure	404	{object}	map[string]string	"error"
//	@Security	BearerAuth
//	@Router		/api/announcements/{id} [delete].
func (h *AnnouncementsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.AnnouncementService.DeleteAnnouncement(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Announcement not found")
			return
		}
		slogx.FromContext(r.Context()).Error("deleting announcement failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Announcement deleted"})
}
